package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"postgres"`
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Lifecycle tracker & dedup cache
	TrackerBackend string        `env:"TRACKER_BACKEND" envDefault:"memory"`
	SeenCacheTTL   time.Duration `env:"SEEN_CACHE_TTL" envDefault:"10m"`

	// Store
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`

	// Push gateway Config
	GatewayURL       string        `env:"GATEWAY_URL"`
	GatewaySecret    string        `env:"GATEWAY_SECRET"`
	GatewayTimeout   time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`
	TelegramBotToken string        `env:"TELEGRAM_BOT_TOKEN"`

	// Retry Config
	RetryMaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"RETRY_BASE_DELAY" envDefault:"200ms"`

	// Dispatch & sweeper
	DispatchConcurrency   int           `env:"DISPATCH_CONCURRENCY" envDefault:"8"`
	PendingAttemptTimeout time.Duration `env:"PENDING_ATTEMPT_TIMEOUT" envDefault:"2m"`
	UnclaimedRequeueAfter time.Duration `env:"UNCLAIMED_REQUEUE_AFTER" envDefault:"1m"`
	SweepInterval         time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`

	// Kafka Config
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"crash-alert-events"`

	// Ingress rate limit per client IP, 0 disables it
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		StoreBackend:          getEnv("STORE_BACKEND", BackendPostgres),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFile:               os.Getenv("LOG_FILE"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		TrackerBackend:        getEnv("TRACKER_BACKEND", BackendMemory),
		SeenCacheTTL:          getEnvAsDuration("SEEN_CACHE_TTL", 10*time.Minute),
		StoreTimeout:          getEnvAsDuration("STORE_TIMEOUT", 3*time.Second),
		GatewayURL:            os.Getenv("GATEWAY_URL"),
		GatewaySecret:         os.Getenv("GATEWAY_SECRET"),
		GatewayTimeout:        getEnvAsDuration("GATEWAY_TIMEOUT", 5*time.Second),
		TelegramBotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		RetryMaxAttempts:      getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:        getEnvAsDuration("RETRY_BASE_DELAY", 200*time.Millisecond),
		DispatchConcurrency:   getEnvAsInt("DISPATCH_CONCURRENCY", 8),
		PendingAttemptTimeout: getEnvAsDuration("PENDING_ATTEMPT_TIMEOUT", 2*time.Minute),
		UnclaimedRequeueAfter: getEnvAsDuration("UNCLAIMED_REQUEUE_AFTER", time.Minute),
		SweepInterval:         getEnvAsDuration("SWEEP_INTERVAL", 30*time.Second),
		KafkaBrokers:          getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:            getEnv("KAFKA_TOPIC", "crash-alert-events"),
		RateLimitPerMinute:    getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		APIKeys:               getEnvAsList("API_KEYS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	if c.TrackerBackend != BackendMemory && c.TrackerBackend != BackendRedis {
		return fmt.Errorf("unsupported TRACKER_BACKEND %q", c.TrackerBackend)
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be positive, got %d", c.RetryMaxAttempts)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	if c.DispatchConcurrency < 1 {
		c.DispatchConcurrency = 1
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
