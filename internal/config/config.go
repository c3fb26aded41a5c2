// ABOUTME: Coach configuration: JSON config file plus environment overrides.
// ABOUTME: Resolution order is env (with .env) over file over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harperreed/coach/internal/llm"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config stores coach tool configuration.
type Config struct {
	// APIKey authenticates against the chat-completions endpoint. Prefer
	// setting COACH_API_KEY (or a .env file) over writing it here.
	APIKey string `json:"api_key,omitempty"`

	// BaseURL is the OpenAI-compatible endpoint root.
	BaseURL string `json:"base_url,omitempty"`

	// Model names the completion model to use.
	Model string `json:"model,omitempty"`

	// NoCache disables the in-session analysis cache.
	NoCache bool `json:"no_cache,omitempty"`
}

// GetBaseURL returns the configured base URL with its default.
func (c *Config) GetBaseURL() string {
	if c.BaseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

// GetModel returns the configured model with its default.
func (c *Config) GetModel() string {
	if c.Model == "" {
		return defaultModel
	}
	return c.Model
}

// LLMOptions resolves the client options from this config.
func (c *Config) LLMOptions() llm.Options {
	return llm.Options{
		APIKey:  c.APIKey,
		BaseURL: c.GetBaseURL(),
		Model:   c.GetModel(),
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "coach", "config.json")
}

// Load reads config from disk, a .env file in the working directory, and the
// environment. Environment values win over file values.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("COACH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("COACH_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COACH_MODEL"); v != "" {
		cfg.Model = v
	}
	return cfg, nil
}

func loadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
