package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	chatReq  openai.ChatCompletionRequest
	chatResp openai.ChatCompletionResponse
	chatErr  error
	imgResp  openai.ImageResponse
	imgErr   error
}

func (s *stubClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.chatReq = req
	return s.chatResp, s.chatErr
}

func (s *stubClient) CreateImage(_ context.Context, _ openai.ImageRequest) (openai.ImageResponse, error) {
	return s.imgResp, s.imgErr
}

func chatAnswer(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
	}
}

func TestNewOpenAIGateway_MockSelection(t *testing.T) {
	for _, key := range []string{"", "  ", "your-openai-api-key", "sk-placeholder-123"} {
		require.True(t, NewOpenAIGateway(config.AIConfig{APIKey: key}).MockMode(), "key %q", key)
	}
	require.True(t, NewOpenAIGateway(config.AIConfig{APIKey: "sk-live", Mock: true}).MockMode())
	require.False(t, NewOpenAIGateway(config.AIConfig{APIKey: "sk-live", Model: "gpt-4o-mini"}).MockMode())
}

func TestGenerateBOQ_Mock(t *testing.T) {
	g := NewOpenAIGateway(config.AIConfig{})

	boq, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{Style: "Modern", Area: 200})
	require.NoError(t, err)
	require.Equal(t, []entities.BOQItem{
		{Category: "Flooring", ItemType: "Engineered Wood", Quantity: 200, Unit: "sqft"},
		{Category: "Wall", ItemType: "Premium Emulsion", Quantity: 600, Unit: "sqft"},
		{Category: "Furniture", ItemType: "Sofa Set", Quantity: 1, Unit: "unit"},
		{Category: "Lighting", ItemType: "Chandelier", Quantity: 1, Unit: "unit"},
	}, boq.Items)

	boq, err = g.GenerateBOQ(context.Background(), entities.BOQRequest{Area: -5})
	require.NoError(t, err)
	require.Equal(t, 200.0, boq.Items[0].Quantity)
}

func TestGenerateBOQ_Provider(t *testing.T) {
	t.Run("parses items and extras", func(t *testing.T) {
		stub := &stubClient{chatResp: chatAnswer(`{"items":[{"category":"Flooring","itemType":"Oak","quantity":120,"unit":"sqft"}],"rationale":"warm","roi":{"years":3}}`)}
		g := &OpenAIGateway{client: stub, model: "gpt-4o-mini"}

		boq, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{Style: "Rustic", SpaceType: "Den", Area: 120, Colors: []string{"brown"}})
		require.NoError(t, err)
		require.Len(t, boq.Items, 1)
		require.Equal(t, "Oak", boq.Items[0].ItemType)
		require.Equal(t, "warm", boq.Rationale)
		require.NotNil(t, boq.ROI)

		require.Equal(t, "gpt-4o-mini", stub.chatReq.Model)
		require.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, stub.chatReq.ResponseFormat.Type)
		user := stub.chatReq.Messages[1].Content
		require.Contains(t, user, "Style: Rustic")
		require.Contains(t, user, "Colors: brown")
		require.Contains(t, user, "Area: 120.00 sqft")
	})

	t.Run("missing items", func(t *testing.T) {
		g := &OpenAIGateway{client: &stubClient{chatResp: chatAnswer(`{"rationale":"x"}`)}}
		_, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{})
		require.ErrorIs(t, err, ErrMissingItems)
	})

	t.Run("invalid json", func(t *testing.T) {
		g := &OpenAIGateway{client: &stubClient{chatResp: chatAnswer(`not json`)}}
		_, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{})
		require.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("no choices", func(t *testing.T) {
		g := &OpenAIGateway{client: &stubClient{}}
		_, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{})
		require.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("provider error passes through", func(t *testing.T) {
		g := &OpenAIGateway{client: &stubClient{chatErr: errors.New("rate limited")}}
		_, err := g.GenerateBOQ(context.Background(), entities.BOQRequest{})
		require.EqualError(t, err, "rate limited")
	})
}

func TestParseBOQ_Fences(t *testing.T) {
	boq, err := ParseBOQ("```json\n{\"items\":[]}\n```")
	require.NoError(t, err)
	require.Empty(t, boq.Items)
}

func TestGeneratePreviewImage(t *testing.T) {
	url, err := NewOpenAIGateway(config.AIConfig{}).GeneratePreviewImage(context.Background(), "a room")
	require.NoError(t, err)
	require.Equal(t, MockPreviewImageURL, url)

	g := &OpenAIGateway{client: &stubClient{imgResp: openai.ImageResponse{Data: []openai.ImageResponseDataInner{{URL: "https://cdn/img.png"}}}}}
	url, err = g.GeneratePreviewImage(context.Background(), "a room")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://cdn/"))

	g = &OpenAIGateway{client: &stubClient{}}
	_, err = g.GeneratePreviewImage(context.Background(), "a room")
	require.ErrorIs(t, err, ErrEmptyResponse)
}
