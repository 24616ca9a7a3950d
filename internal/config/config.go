package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is constructed once at
// process start and passed by reference; nothing in this package reads the
// environment after Load returns.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	DBMaxConns int
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	// Role-scoped API keys. A request's role is resolved from the key it
	// presents; an empty key disables that role.
	AdminAPIKey   string
	ManagerAPIKey string
	ViewerAPIKey  string

	TrustedProxies []string
	AllowedOrigins []string

	DiscordWebhookURL string

	PolicyPath       string
	PolicySchemaPath string

	// Cron spec for the monthly close worker. Empty disables the worker.
	MonthlyCloseSchedule string

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		ManagerAPIKey: getEnv("MANAGER_API_KEY", ""),
		ViewerAPIKey:  getEnv("VIEWER_API_KEY", ""),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),

		PolicyPath:       getEnv("POLICY_PATH", DefaultPolicyPath),
		PolicySchemaPath: getEnv("POLICY_SCHEMA_PATH", DefaultPolicySchemaPath),

		MonthlyCloseSchedule: getEnv("MONTHLY_CLOSE_SCHEDULE", DefaultMonthlyCloseSchedule),

		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, err
	}

	cfg.DBMaxIdle, err = getEnvDuration("DB_MAX_IDLE", DefaultDBMaxIdle)
	if err != nil {
		return nil, err
	}

	cfg.DBMaxLife, err = getEnvDuration("DB_MAX_LIFE", DefaultDBMaxLife)
	if err != nil {
		return nil, err
	}

	cfg.EventMaxRetries, err = getEnvInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries)
	if err != nil {
		return nil, err
	}

	cfg.EventRetryDelay, err = getEnvDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay)
	if err != nil {
		return nil, err
	}

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins))

	// At least the admin key must be set; without it nothing can be managed.
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY environment variable must be set")
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
