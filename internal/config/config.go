package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	SMTP     SMTPConfig     `json:"smtp"`
	Twilio   TwilioConfig   `json:"twilio"`
	Client   ClientConfig   `json:"client"`
	Dispatch DispatchConfig `json:"dispatch"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type SMTPConfig struct {
	Host     string        `json:"host"`
	Port     int           `json:"port"`
	User     string        `json:"user"`
	Password string        `json:"password,omitempty"`
	From     string        `json:"from"`
	Timeout  time.Duration `json:"timeout"`
}

type TwilioConfig struct {
	Enabled    bool   `json:"enabled"`
	AccountSID string `json:"account_sid,omitempty"`
	AuthToken  string `json:"auth_token,omitempty"`
	FromNumber string `json:"from_number"`
}

type ClientConfig struct {
	// BaseURL is the public client origin used to build deep links,
	// e.g. https://geopulse.example.com
	BaseURL string `json:"base_url"`
}

type DispatchConfig struct {
	Workers             int           `json:"workers"`
	SendRatePerSec      float64       `json:"send_rate_per_sec"`
	SendBurst           int           `json:"send_burst"`
	QueueKey            string        `json:"queue_key"`
	QueuePollTimeout    time.Duration `json:"queue_poll_timeout"`
	SubscriberCacheTTL  time.Duration `json:"subscriber_cache_ttl"`
	DefaultRadiusMeters float64       `json:"default_radius_m"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "geopulse_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", "GeoPulse System <alerts@geopulse.local>"),
			Timeout:  getEnvDuration("SMTP_TIMEOUT", 10*time.Second),
		},
		Twilio: TwilioConfig{
			Enabled:    getEnvBool("TWILIO_ENABLED", false),
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},
		Client: ClientConfig{
			BaseURL: getEnv("CLIENT_URL", "http://localhost:5173"),
		},
		Dispatch: DispatchConfig{
			Workers:             getEnvInt("DISPATCH_WORKERS", 8),
			SendRatePerSec:      getEnvFloat("DISPATCH_SEND_RATE", 10),
			SendBurst:           getEnvInt("DISPATCH_SEND_BURST", 20),
			QueueKey:            getEnv("DISPATCH_QUEUE_KEY", "notifications:queue"),
			QueuePollTimeout:    getEnvDuration("DISPATCH_QUEUE_POLL_TIMEOUT", 5*time.Second),
			SubscriberCacheTTL:  getEnvDuration("SUBSCRIBER_CACHE_TTL", 30*time.Second),
			DefaultRadiusMeters: getEnvFloat("DEFAULT_RADIUS_M", 5000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("smtp_host", cfg.SMTP.Host),
		slog.String("client_url", cfg.Client.BaseURL))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Client.BaseURL == "" {
		return errors.New("CLIENT_URL required")
	}

	if c.Dispatch.Workers < 1 {
		return errors.New("DISPATCH_WORKERS must be >= 1")
	}

	if c.Twilio.Enabled && c.Twilio.FromNumber == "" {
		return errors.New("TWILIO_FROM_NUMBER required when TWILIO_ENABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
