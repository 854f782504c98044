// Package config loads application configuration from an optional YAML file
// and STRIDE_* environment variables, with sensible defaults for everything.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stridehq/stride/internal/llm"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	AI      AIConfig      `mapstructure:"ai"`
}

type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutMs   int     `mapstructure:"timeout_ms"`
	Referer     string  `mapstructure:"referer"`
	AppTitle    string  `mapstructure:"app_title"`
}

// Load reads configuration from configPath when given, otherwise from a
// stride.yaml found in the working directory. A missing file is not an
// error: defaults plus environment variables are enough to run.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("stride")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STRIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.AI.APIKey = expandEnv(cfg.AI.APIKey)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := llm.DefaultConfig()

	v.SetDefault("app.log_level", "info")
	v.SetDefault("storage.db_path", "./data/stride.db")

	v.SetDefault("ai.base_url", def.BaseURL)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", def.Model)
	v.SetDefault("ai.temperature", def.Temperature)
	v.SetDefault("ai.timeout_ms", def.TimeoutMs)
	v.SetDefault("ai.referer", "")
	v.SetDefault("ai.app_title", "")
}

// LLM maps the AI section onto the gateway's config struct.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		BaseURL:     c.AI.BaseURL,
		APIKey:      c.AI.APIKey,
		Model:       c.AI.Model,
		Temperature: c.AI.Temperature,
		TimeoutMs:   c.AI.TimeoutMs,
		Referer:     c.AI.Referer,
		AppTitle:    c.AI.AppTitle,
	}
}

// NewLogger builds the application logger at the configured level.
func NewLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// expandEnv resolves a ${VAR} placeholder so the API key can live in the
// environment while the rest of the config lives in the file.
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
