package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string       `json:"env"`
	Http   HttpConfig   `json:"http"`
	Redis  RedisConfig  `json:"redis"`
	Engine EngineConfig `json:"engine"`
	Push   PushConfig   `json:"push"`
	APIKey string       `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// EngineConfig tunes the presence/alert state machine. Defaults match the
// reference behavior; they are env-tunable mostly for tests and staging.
type EngineConfig struct {
	BurstInterval     time.Duration `json:"burst_interval"`
	GraceWindow       time.Duration `json:"grace_window"`
	NormalVisibility  time.Duration `json:"normal_visibility"`
	DefaultVisibility time.Duration `json:"default_visibility"`
	SweepInterval     time.Duration `json:"sweep_interval"`
	SweepRetain       time.Duration `json:"sweep_retain"`
}

type PushConfig struct {
	GatewayURL string `json:"gateway_url"`
	Disabled   bool   `json:"disabled"`
}

func Load(ctx context.Context) (*Config, error) {
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
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			BurstInterval:     getEnvDuration("ENGINE_BURST_INTERVAL", 3*time.Second),
			GraceWindow:       getEnvDuration("ENGINE_GRACE_WINDOW", 10*time.Minute),
			NormalVisibility:  getEnvDuration("ENGINE_NORMAL_VISIBILITY", 120*time.Second),
			DefaultVisibility: getEnvDuration("ENGINE_DEFAULT_VISIBILITY", 300*time.Second),
			SweepInterval:     getEnvDuration("ENGINE_SWEEP_INTERVAL", 5*time.Minute),
			SweepRetain:       getEnvDuration("ENGINE_SWEEP_RETAIN", 30*time.Minute),
		},
		Push: PushConfig{
			GatewayURL: getEnv("PUSH_GATEWAY_URL", "http://push-gateway:8090/v1/push"),
			Disabled:   getEnvBool("PUSH_DISABLED", false),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("push_gateway", cfg.Push.GatewayURL),
		slog.Bool("push_disabled", cfg.Push.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR required")
	}
	if c.Engine.BurstInterval <= 0 || c.Engine.GraceWindow <= 0 {
		return errors.New("engine intervals must be positive")
	}
	if c.Engine.SweepRetain < c.Engine.GraceWindow {
		return errors.New("ENGINE_SWEEP_RETAIN must not be below ENGINE_GRACE_WINDOW")
	}
	if !c.Push.Disabled && c.Push.GatewayURL == "" {
		return errors.New("PUSH_GATEWAY_URL required unless PUSH_DISABLED=true")
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
