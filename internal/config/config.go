package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/proposal-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Public base URL, used for proposal links in customer emails
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Database configuration. When DATABASE_URL is empty the service runs
	// with the in-memory proposal store.
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// How long generated proposals stay retrievable in the in-memory store
	ProposalTTL time.Duration `env:"PROPOSAL_TTL" envDefault:"24h"`

	// External service configurations
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`
	NotifyCfg       NotifyConfig       `envPrefix:"NOTIFY_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConnectorConfig configures the chat-completions provider
type LLMConnectorConfig struct {
	HTTPClientConfig
	CompletionsEndpoint string               `env:"COMPLETIONS_ENDPOINT" envDefault:"/v1/chat/completions"`
	Model               string               `env:"MODEL" envDefault:"gpt-4"`
	Temperature         float64              `env:"TEMPERATURE" envDefault:"0.7"`
	Retry               pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// NotifyConfig configures the sales-notification channels. Every channel is
// optional: an empty key field silently disables that channel.
type NotifyConfig struct {
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	ChatWebhookURL string `env:"CHAT_WEBHOOK_URL"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
	// Bot API endpoint pattern, overridable for self-hosted bot API servers
	TelegramAPIEndpoint string `env:"TELEGRAM_API_ENDPOINT"`

	CRMCfg  CRMConnectorConfig `envPrefix:"CRM_"`
	SMTPCfg SMTPConfig         `envPrefix:"SMTP_"`

	Retry pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// CRMConnectorConfig configures the bearer-token CRM webhook
type CRMConnectorConfig struct {
	HTTPClientConfig
	SourceTag string               `env:"SOURCE_TAG" envDefault:"AI活用ニーズ調査"`
	Retry     pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// SMTPConfig configures outbound mail. Host empty disables both email channels;
// SalesEmail empty additionally disables the internal notification.
type SMTPConfig struct {
	Host       string `env:"HOST"`
	Port       int    `env:"PORT" envDefault:"587"`
	User       string `env:"USER"`
	Password   string `env:"PASSWORD"`
	From       string `env:"FROM"`
	SalesEmail string `env:"SALES_EMAIL"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if !cfg.EnableMocks && cfg.LLMConnectorCfg.Url == "" {
		return fmt.Errorf("LLM_SERVICE_URL must be set when mocks are disabled")
	}

	if cfg.LLMConnectorCfg.Temperature < 0 || cfg.LLMConnectorCfg.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %g", cfg.LLMConnectorCfg.Temperature)
	}

	if cfg.ProposalTTL < time.Minute {
		return fmt.Errorf("PROPOSAL_TTL must be at least 1m, got %s", cfg.ProposalTTL)
	}

	if cfg.DatabaseURL != "" {
		if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
			return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
		}
		if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
		}
	}

	if cfg.NotifyCfg.TelegramBotToken != "" && cfg.NotifyCfg.TelegramChatID == 0 {
		return fmt.Errorf("NOTIFY_TELEGRAM_CHAT_ID must be set when NOTIFY_TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
