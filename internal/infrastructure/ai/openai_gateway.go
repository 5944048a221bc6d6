package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrEmptyResponse   = errors.New("empty response from generation provider")
	ErrInvalidResponse = errors.New("generation response is not valid JSON")
	ErrMissingItems    = errors.New("generation response has no items field")
)

// MockPreviewImageURL is returned by the image generator in mock mode.
const MockPreviewImageURL = "https://placehold.co/1024x1024/png?text=Interior+Preview"

// openAIClient is the subset of the go-openai client the gateway calls.
type openAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIGateway generates bills of quantities and preview images.
//
// Without a usable API key (or with AI mock enabled) it runs in mock mode and
// returns fixed, deterministic output instead of calling the provider.
type OpenAIGateway struct {
	client     openAIClient
	model      string
	imageModel string
	mockMode   bool
}

var (
	_ interfaces.IBOQGenerator   = (*OpenAIGateway)(nil)
	_ interfaces.IImageGenerator = (*OpenAIGateway)(nil)
)

func NewOpenAIGateway(cfg config.AIConfig) *OpenAIGateway {
	if cfg.Mock || IsPlaceholderKey(cfg.APIKey) {
		log.Printf("[ai][gateway] mock mode enabled")
		return &OpenAIGateway{mockMode: true}
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	log.Printf("[ai][gateway] OpenAI client initialized model=%s image_model=%s", cfg.Model, cfg.ImageModel)
	return &OpenAIGateway{
		client:     openai.NewClientWithConfig(oc),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}
}

// IsPlaceholderKey reports whether key is missing or one of the sample values
// shipped in example env files.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || key == "your-openai-api-key" || strings.HasPrefix(key, "sk-placeholder")
}

// MockMode reports whether the gateway answers without calling the provider.
func (g *OpenAIGateway) MockMode() bool { return g.mockMode }

func (g *OpenAIGateway) GenerateBOQ(ctx context.Context, req entities.BOQRequest) (entities.BOQ, error) {
	area := req.AreaOrDefault()
	if g.mockMode {
		log.Printf("[ai][gateway] mock boq area=%.2f style=%q", area, req.Style)
		return MockBOQ(area), nil
	}

	log.Printf("[ai][gateway] boq start model=%s area=%.2f style=%q", g.model, area, req.Style)
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: boqSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BOQPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.2,
	})
	if err != nil {
		log.Printf("[ai][gateway] boq request failed err=%v", err)
		return entities.BOQ{}, err
	}
	if len(resp.Choices) == 0 {
		return entities.BOQ{}, ErrEmptyResponse
	}

	boq, err := ParseBOQ(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[ai][gateway] boq parse failed err=%v", err)
		return entities.BOQ{}, err
	}
	log.Printf("[ai][gateway] boq success items=%d", len(boq.Items))
	return boq, nil
}

func (g *OpenAIGateway) GeneratePreviewImage(ctx context.Context, prompt string) (string, error) {
	if g.mockMode {
		log.Printf("[ai][gateway] mock image prompt_len=%d", len(prompt))
		return MockPreviewImageURL, nil
	}

	log.Printf("[ai][gateway] image start model=%s prompt_len=%d", g.imageModel, len(prompt))
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		log.Printf("[ai][gateway] image request failed err=%v", err)
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyResponse
	}
	return resp.Data[0].URL, nil
}

// MockBOQ is the fixed four-line bill of quantities used in mock mode.
func MockBOQ(area float64) entities.BOQ {
	if area <= 0 {
		area = entities.DefaultBOQArea
	}
	return entities.BOQ{
		Items: []entities.BOQItem{
			{Category: "Flooring", ItemType: "Engineered Wood", Quantity: area, Unit: "sqft"},
			{Category: "Wall", ItemType: "Premium Emulsion", Quantity: area * 3, Unit: "sqft"},
			{Category: "Furniture", ItemType: "Sofa Set", Quantity: 1, Unit: "unit"},
			{Category: "Lighting", ItemType: "Chandelier", Quantity: 1, Unit: "unit"},
		},
		Rationale: "Standard package estimated from floor area.",
	}
}

const boqSystemPrompt = "You are an interior design cost estimator. " +
	"Reply with strict JSON only: {\"items\":[{\"category\":string,\"itemType\":string,\"quantity\":number,\"unit\":string}]," +
	"\"rationale\":string,\"roi\":object,\"designDNA\":object}."

// BOQPrompt describes the project to the text model.
func BOQPrompt(req entities.BOQRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a bill of quantities for a %s project.\n", orNA(req.ProjectType))
	fmt.Fprintf(&b, "Space: %s\n", orNA(req.SpaceType))
	fmt.Fprintf(&b, "Style: %s\n", orNA(req.Style))
	fmt.Fprintf(&b, "Colors: %s\n", orNA(strings.Join(req.Colors, ", ")))
	fmt.Fprintf(&b, "Materials: flooring=%s; walls=%s; furniture=%s; lighting=%s\n",
		orNA(req.Materials.Flooring), orNA(req.Materials.Walls), orNA(req.Materials.Furniture), orNA(req.Materials.Lighting))
	fmt.Fprintf(&b, "Area: %.2f sqft\n", req.AreaOrDefault())
	b.WriteString("Use categories such as Flooring, Wall, Ceiling, Furniture, Lighting. Quantities must be non-negative numbers.")
	return b.String()
}

// ParseBOQ decodes a provider answer. Markdown code fences are tolerated.
func ParseBOQ(content string) (entities.BOQ, error) {
	content = stripFences(content)
	if content == "" {
		return entities.BOQ{}, ErrEmptyResponse
	}

	var raw struct {
		Items     *[]entities.BOQItem `json:"items"`
		Rationale string              `json:"rationale"`
		ROI       any                 `json:"roi"`
		DesignDNA any                 `json:"designDNA"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return entities.BOQ{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if raw.Items == nil {
		return entities.BOQ{}, ErrMissingItems
	}
	return entities.BOQ{
		Items:     *raw.Items,
		Rationale: raw.Rationale,
		ROI:       raw.ROI,
		DesignDNA: raw.DesignDNA,
	}, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func orNA(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "not specified"
	}
	return s
}
