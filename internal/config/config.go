package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration. Load applies defaults, then the YAML
// file named by APP_CONFIG_PATH, then environment variables.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	AI        AIConfig        `yaml:"ai"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Issuer    IssuerConfig    `yaml:"issuer"`
	Quote     QuoteConfig     `yaml:"quote"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SeedCatalog    bool     `yaml:"seed_catalog"`
}

// StoreConfig selects the document store. Driver is "dynamodb" or "mongo".
type StoreConfig struct {
	Driver           string `yaml:"driver"`
	Region           string `yaml:"region"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	QuotesTable      string `yaml:"quotes_table"`
	ProjectsTable    string `yaml:"projects_table"`
	CostConfigsTable string `yaml:"cost_configs_table"`
	MongoURI         string `yaml:"mongo_uri"`
	MongoDatabase    string `yaml:"mongo_database"`
	CreateTables     bool   `yaml:"create_tables"`
}

type AIConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	ImageModel string `yaml:"image_model"`
	Mock       bool   `yaml:"mock"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

// Enabled reports whether enough is set to send email.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	From       string `yaml:"from"`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != ""
}

// ArtifactsConfig selects where rendered documents go. Backend is "local",
// "s3" or "gcs". A zero Retention disables the sweep.
type ArtifactsConfig struct {
	Backend         string        `yaml:"backend"`
	Dir             string        `yaml:"dir"`
	Bucket          string        `yaml:"bucket"`
	Endpoint        string        `yaml:"endpoint"`
	Region          string        `yaml:"region"`
	PublicBaseURL   string        `yaml:"public_base_url"`
	CredentialsFile string        `yaml:"credentials_file"`
	Retention       time.Duration `yaml:"retention"`
	SweepCron       string        `yaml:"sweep_cron"`
}

type IssuerConfig struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Currency string `yaml:"currency"`
}

type QuoteConfig struct {
	ValidityDays int `yaml:"validity_days"`
}

// Validity is the quote validity window.
func (c QuoteConfig) Validity() time.Duration {
	return time.Duration(c.ValidityDays) * 24 * time.Hour
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			SeedCatalog:    true,
		},
		Store: StoreConfig{
			Driver:           "dynamodb",
			Region:           "us-east-1",
			QuotesTable:      "quotes",
			ProjectsTable:    "projects",
			CostConfigsTable: "cost_configs",
			MongoURI:         "mongodb://localhost:27017",
			MongoDatabase:    "interiorquote",
		},
		AI: AIConfig{
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		SMTP: SMTPConfig{
			Port:     587,
			FromName: "Interior Quotes",
		},
		Artifacts: ArtifactsConfig{
			Backend:   "local",
			Dir:       "./artifacts",
			SweepCron: "@daily",
		},
		Issuer: IssuerConfig{
			Name:     "Interior Design Studio",
			Currency: "INR",
		},
		Quote: QuoteConfig{ValidityDays: 30},
	}
}

func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("APP_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString("PORT", &cfg.Server.Port)
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	setString("STORE_DRIVER", &cfg.Store.Driver)
	setString("AWS_REGION", &cfg.Store.Region)
	setString("DYNAMODB_ENDPOINT", &cfg.Store.DynamoDBEndpoint)
	setString("QUOTES_TABLE", &cfg.Store.QuotesTable)
	setString("PROJECTS_TABLE", &cfg.Store.ProjectsTable)
	setString("COST_CONFIGS_TABLE", &cfg.Store.CostConfigsTable)
	setString("MONGODB_URI", &cfg.Store.MongoURI)
	setString("MONGODB_DATABASE", &cfg.Store.MongoDatabase)

	setString("OPENAI_API_KEY", &cfg.AI.APIKey)
	setString("OPENAI_BASE_URL", &cfg.AI.BaseURL)
	setString("OPENAI_MODEL", &cfg.AI.Model)
	setString("OPENAI_IMAGE_MODEL", &cfg.AI.ImageModel)

	setString("SMTP_HOST", &cfg.SMTP.Host)
	setString("SMTP_USER", &cfg.SMTP.Username)
	setString("SMTP_PASS", &cfg.SMTP.Password)
	setString("SMTP_FROM", &cfg.SMTP.From)
	setString("SMTP_FROM_NAME", &cfg.SMTP.FromName)

	setString("TWILIO_ACCOUNT_SID", &cfg.Twilio.AccountSID)
	setString("TWILIO_AUTH_TOKEN", &cfg.Twilio.AuthToken)
	setString("TWILIO_FROM_NUMBER", &cfg.Twilio.From)

	setString("ARTIFACTS_BACKEND", &cfg.Artifacts.Backend)
	setString("ARTIFACTS_DIR", &cfg.Artifacts.Dir)
	setString("ARTIFACTS_BUCKET", &cfg.Artifacts.Bucket)
	setString("ARTIFACTS_ENDPOINT", &cfg.Artifacts.Endpoint)
	setString("ARTIFACTS_REGION", &cfg.Artifacts.Region)
	setString("ARTIFACTS_PUBLIC_BASE_URL", &cfg.Artifacts.PublicBaseURL)
	setString("GOOGLE_APPLICATION_CREDENTIALS", &cfg.Artifacts.CredentialsFile)
	setString("ARTIFACTS_SWEEP_CRON", &cfg.Artifacts.SweepCron)

	setString("ISSUER_NAME", &cfg.Issuer.Name)
	setString("ISSUER_ADDRESS", &cfg.Issuer.Address)
	setString("ISSUER_EMAIL", &cfg.Issuer.Email)
	setString("ISSUER_PHONE", &cfg.Issuer.Phone)
	setString("QUOTE_CURRENCY", &cfg.Issuer.Currency)

	for _, fn := range []func() error{
		func() error { return setInt("SMTP_PORT", &cfg.SMTP.Port) },
		func() error { return setInt("QUOTE_VALIDITY_DAYS", &cfg.Quote.ValidityDays) },
		func() error { return setBool("AI_MOCK", &cfg.AI.Mock) },
		func() error { return setBool("SEED_CATALOG", &cfg.Server.SeedCatalog) },
		func() error { return setBool("CREATE_TABLES", &cfg.Store.CreateTables) },
		func() error { return setDuration("ARTIFACTS_RETENTION", &cfg.Artifacts.Retention) },
	} {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case "dynamodb", "mongo":
	default:
		return fmt.Errorf("invalid store driver %q", c.Store.Driver)
	}
	switch c.Artifacts.Backend {
	case "local":
	case "s3", "gcs":
		if c.Artifacts.Bucket == "" {
			return fmt.Errorf("artifacts backend %s requires a bucket", c.Artifacts.Backend)
		}
	default:
		return fmt.Errorf("invalid artifacts backend %q", c.Artifacts.Backend)
	}
	if c.Quote.ValidityDays <= 0 {
		return fmt.Errorf("invalid quote validity days %d", c.Quote.ValidityDays)
	}
	if c.Artifacts.Retention < 0 {
		return fmt.Errorf("invalid artifacts retention %s", c.Artifacts.Retention)
	}
	return nil
}

func setString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

// setBool accepts the usual switch spellings (1/true/yes/on, 0/false/no/off).
func setBool(key string, dst *bool) error {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return nil
	case "1", "true", "yes", "on", "mock":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	default:
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	return nil
}

func setDuration(key string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
