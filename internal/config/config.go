package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Kafka    KafkaConfig
	Jobs     JobsConfig
	Notify   NotifyConfig
	Server   ServerConfig
	Rules    Rules
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds admin JWT and Telegram Mini App settings
type AuthConfig struct {
	JWTSecret string
	// MiniAppMaxAge bounds how old a Telegram initData payload may be.
	MiniAppMaxAge time.Duration
}

// ServicesConfig holds external service credentials
type ServicesConfig struct {
	TelegramBotToken   string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioSMSFrom      string
	TwilioWhatsAppFrom string
	MoySkladBaseURL    string
	MoySkladToken      string
	WebAppURI          string
	UpstreamTimeout    time.Duration
}

// KafkaConfig holds event streaming configuration. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

// JobsConfig holds scheduled job intervals
type JobsConfig struct {
	ERPSyncInterval    time.Duration
	SegmentsInterval   time.Duration
	ReclassifyInterval time.Duration
	ERPSyncLookback    time.Duration
}

// NotifyConfig bounds outbound notification traffic
type NotifyConfig struct {
	Concurrency   int
	RatePerSecond float64
	Burst         int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// MiniAppRateLimit is requests per minute per Telegram user, 0 disables it.
	MiniAppRateLimit int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

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

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.MiniAppMaxAge, err = durationEnv("MINIAPP_INITDATA_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	// Optional: without it Telegram sends report no_target and Mini App logins fail
	cfg.Services.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.Services.TwilioAccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioAuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioSMSFrom, err = requireEnv("TWILIO_SMS_FROM"); err != nil {
		return nil, err
	}
	cfg.Services.TwilioWhatsAppFrom = getEnvWithDefault("TWILIO_WHATSAPP_FROM", cfg.Services.TwilioSMSFrom)
	cfg.Services.MoySkladBaseURL = getEnvWithDefault("MOYSKLAD_BASE_URL", "https://api.moysklad.ru/api/remap/1.2")
	if cfg.Services.MoySkladToken, err = requireEnv("MOYSKLAD_TOKEN"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	if cfg.Services.UpstreamTimeout, err = durationEnv("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "loyalty.events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "loyalty-notifier")

	if cfg.Jobs.ERPSyncInterval, err = durationEnv("ERP_SYNC_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.Jobs.SegmentsInterval, err = durationEnv("SEGMENTS_INTERVAL", "6h"); err != nil {
		return nil, err
	}
	if cfg.Jobs.ReclassifyInterval, err = durationEnv("RECLASSIFY_INTERVAL", "24h"); err != nil {
		return nil, err
	}
	if cfg.Jobs.ERPSyncLookback, err = durationEnv("ERP_SYNC_LOOKBACK", "72h"); err != nil {
		return nil, err
	}

	if cfg.Notify.Concurrency, err = intEnv("NOTIFY_CONCURRENCY", "4"); err != nil {
		return nil, err
	}
	if cfg.Notify.Burst, err = intEnv("NOTIFY_BURST", "1"); err != nil {
		return nil, err
	}
	rate := getEnvWithDefault("NOTIFY_RATE_PER_SECOND", "10")
	if cfg.Notify.RatePerSecond, err = strconv.ParseFloat(rate, 64); err != nil {
		return nil, fmt.Errorf("failed to parse NOTIFY_RATE_PER_SECOND: %w", err)
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.MiniAppRateLimit, err = intEnv("MINIAPP_RATE_LIMIT_RPM", "60"); err != nil {
		return nil, err
	}

	rules, err := LoadRules(os.Getenv("LOYALTY_RULES_PATH"))
	if err != nil {
		return nil, err
	}
	cfg.Rules = rules

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
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

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}
