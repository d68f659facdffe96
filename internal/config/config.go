package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Field  FieldConfig
	Plot   PlotConfig
	Cache  CacheConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

// FieldConfig bounds the reference diameter surface
type FieldConfig struct {
	FlowMin         float64
	FlowMax         float64
	FlowSamples     int
	VelocityMin     float64
	VelocityMax     float64
	VelocitySamples int
}

type PlotConfig struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

type CacheConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("FIELD_FLOW_MIN", 0.01)
	v.SetDefault("FIELD_FLOW_MAX", 1.0)
	v.SetDefault("FIELD_FLOW_SAMPLES", 100)
	v.SetDefault("FIELD_VELOCITY_MIN", 0.1)
	v.SetDefault("FIELD_VELOCITY_MAX", 5.0)
	v.SetDefault("FIELD_VELOCITY_SAMPLES", 50)
	v.SetDefault("PLOT_WIDTH_IN", 10.0)
	v.SetDefault("PLOT_HEIGHT_IN", 6.0)
	v.SetDefault("PLOT_DPI", 96)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_REDIS_PASSWORD", "")
	v.SetDefault("CACHE_REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Env
	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		ttl = 24 * time.Hour
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Field: FieldConfig{
			FlowMin:         v.GetFloat64("FIELD_FLOW_MIN"),
			FlowMax:         v.GetFloat64("FIELD_FLOW_MAX"),
			FlowSamples:     v.GetInt("FIELD_FLOW_SAMPLES"),
			VelocityMin:     v.GetFloat64("FIELD_VELOCITY_MIN"),
			VelocityMax:     v.GetFloat64("FIELD_VELOCITY_MAX"),
			VelocitySamples: v.GetInt("FIELD_VELOCITY_SAMPLES"),
		},
		Plot: PlotConfig{
			WidthInches:  v.GetFloat64("PLOT_WIDTH_IN"),
			HeightInches: v.GetFloat64("PLOT_HEIGHT_IN"),
			DPI:          v.GetInt("PLOT_DPI"),
		},
		Cache: CacheConfig{
			Enabled:       v.GetBool("CACHE_ENABLED"),
			RedisAddr:     v.GetString("CACHE_REDIS_ADDR"),
			RedisPassword: v.GetString("CACHE_REDIS_PASSWORD"),
			RedisDB:       v.GetInt("CACHE_REDIS_DB"),
			TTL:           ttl,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}
	if c.Plot.DPI <= 0 {
		return fmt.Errorf("PLOT_DPI must be positive")
	}
	if c.Plot.WidthInches <= 0 || c.Plot.HeightInches <= 0 {
		return fmt.Errorf("PLOT_WIDTH_IN and PLOT_HEIGHT_IN must be positive")
	}
	if c.Cache.Enabled && c.Cache.RedisAddr == "" {
		return fmt.Errorf("CACHE_REDIS_ADDR is required when CACHE_ENABLED is set")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
