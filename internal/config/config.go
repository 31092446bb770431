package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr           = ":5000"
	defaultProvider       = "ollama"
	defaultBaseURL        = "http://localhost:11434"
	defaultModelsConfig   = "./config.json"
	defaultLogLevel       = "debug"
	defaultMaxUploadBytes = 10 << 20
)

type Config struct {
	Server       ServerConfig `yaml:"server"`
	LLM          LLMConfig    `yaml:"llm"`
	ModelsConfig string       `yaml:"models_config"`
	LogLevel     string       `yaml:"log_level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
}

// LLMConfig points at the inference runtime shared by every model in the catalog.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Token    string `yaml:"token"`
}

// LoadConfig reads the service settings. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = defaultProvider
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultBaseURL
	}
	if c.ModelsConfig == "" {
		c.ModelsConfig = defaultModelsConfig
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}
