package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Graph    GraphConfig
	AI       AIConfig
	AdRoom   AdRoomConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret          string
	TokenEncryptionKey string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromNumber   string
	WebAppURI          string
}

// GraphConfig holds the social graph API settings and its outbound request ceiling
type GraphConfig struct {
	BaseURL           string
	Version           string
	RequestsPerSecond float64
	Burst             int
	MaxConcurrent     int
	HTTPTimeout       time.Duration
}

// AIConfig holds content generation settings
type AIConfig struct {
	Provider       string // gemini or openai
	Model          string
	GoogleAIAPIKey string
	OpenAIAPIKey   string
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// AdRoomConfig holds the autonomous agent's schedules, thresholds and credit costs
type AdRoomConfig struct {
	BotInterval           time.Duration
	PostSchedulerInterval time.Duration
	MonitorInterval       time.Duration
	InsightsInterval      time.Duration
	ReachThreshold        float64
	CorrectiveDelay       time.Duration
	PostSpacing           time.Duration
	CorrectiveCreditCost  float64
	ProposalCreditCost    float64
	PaidPostCreditCost    float64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenEncryptionKey, err = requireEnv("TOKEN_ENCRYPTION_KEY"); err != nil {
		return nil, err
	}

	// Services configuration. Alerts are optional, a missing key disables the channel.
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "adroom@villanovarealty.com")
	cfg.Services.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Services.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Services.TwilioFromNumber = os.Getenv("TWILIO_FROM_NUMBER")
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Graph API configuration
	cfg.Graph.BaseURL = getEnvWithDefault("GRAPH_API_BASE_URL", "https://graph.facebook.com")
	cfg.Graph.Version = getEnvWithDefault("GRAPH_API_VERSION", "v19.0")
	if cfg.Graph.RequestsPerSecond, err = getFloatWithDefault("GRAPH_REQUESTS_PER_SECOND", 5); err != nil {
		return nil, err
	}
	if cfg.Graph.Burst, err = getIntWithDefault("GRAPH_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.Graph.MaxConcurrent, err = getIntWithDefault("GRAPH_MAX_CONCURRENT", 4); err != nil {
		return nil, err
	}
	if cfg.Graph.HTTPTimeout, err = getDurationWithDefault("GRAPH_HTTP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	// AI configuration
	cfg.AI.Provider = getEnvWithDefault("AI_PROVIDER", "gemini")
	cfg.AI.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.AI.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.GoogleAIAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_AI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
		cfg.AI.Model = getEnvWithDefault("AI_MODEL", "gemini-1.5-flash")
	case "openai":
		if cfg.AI.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
		cfg.AI.Model = getEnvWithDefault("AI_MODEL", "gpt-4o-mini")
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.AI.Provider)
	}
	if cfg.AI.MaxRetries, err = getIntWithDefault("AI_MAX_RETRIES", 3); err != nil {
		return nil, err
	}
	if cfg.AI.RetryBaseDelay, err = getDurationWithDefault("AI_RETRY_BASE_DELAY", time.Second); err != nil {
		return nil, err
	}

	// AdRoom configuration
	if cfg.AdRoom.BotInterval, err = getDurationWithDefault("ADROOM_BOT_INTERVAL", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.AdRoom.PostSchedulerInterval, err = getDurationWithDefault("ADROOM_POST_SCHEDULER_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.AdRoom.MonitorInterval, err = getDurationWithDefault("ADROOM_MONITOR_INTERVAL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AdRoom.InsightsInterval, err = getDurationWithDefault("ADROOM_INSIGHTS_INTERVAL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AdRoom.ReachThreshold, err = getFloatWithDefault("ADROOM_REACH_THRESHOLD", 50); err != nil {
		return nil, err
	}
	if cfg.AdRoom.CorrectiveDelay, err = getDurationWithDefault("ADROOM_CORRECTIVE_DELAY", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.AdRoom.PostSpacing, err = getDurationWithDefault("ADROOM_POST_SPACING", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AdRoom.CorrectiveCreditCost, err = getFloatWithDefault("ADROOM_CORRECTIVE_CREDIT_COST", 5); err != nil {
		return nil, err
	}
	if cfg.AdRoom.ProposalCreditCost, err = getFloatWithDefault("ADROOM_PROPOSAL_CREDIT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.AdRoom.PaidPostCreditCost, err = getFloatWithDefault("ADROOM_PAID_POST_CREDIT_COST", 2); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// SMSEnabled reports whether Twilio credentials are present
func (c *ServicesConfig) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getFloatWithDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

// getDurationWithDefault accepts Go duration strings such as "10s" or "24h"
func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return parsed, nil
}
