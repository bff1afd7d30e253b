// Package config loads the shared termtools configuration from
// ~/.termtools/config.yaml. All tools read the same file; each tool only
// looks at the sections it needs. A missing file means defaults; no tool
// requires a config file to exist.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared across the termtools binaries.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Model configures the local language-model runtime used by ask and
	// the weather commentary.
	Model ModelConfig `yaml:"model"`

	// Weather configures the weather report.
	Weather WeatherConfig `yaml:"weather"`

	// LastFM configures the now-playing lookup.
	LastFM LastFMConfig `yaml:"lastfm"`
}

// ModelConfig selects and parameterizes the model runtime.
type ModelConfig struct {
	// Runner is "exec" (spawn the model runtime as a subprocess) or
	// "openai" (talk to an OpenAI-compatible HTTP endpoint).
	Runner string `yaml:"runner"`

	// Name is the model identifier handed to the runtime.
	Name string `yaml:"name"`

	// Command is the runtime binary for the exec runner.
	Command string `yaml:"command"`

	// BaseURL and APIKey configure the openai runner. Ollama's
	// OpenAI-compatible endpoint accepts any non-empty key.
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`

	// Temperature is passed through to the openai runner; zero means
	// the runtime default.
	Temperature float32 `yaml:"temperature"`
}

// WeatherConfig holds the weather report settings.
type WeatherConfig struct {
	// Location is the wttr.in location query; empty lets wttr.in
	// geolocate by IP.
	Location string `yaml:"location"`

	// Commentary enables the LLM remark under the report.
	Commentary bool `yaml:"commentary"`
}

// LastFMConfig holds the Last.fm API credentials for nowplaying.
type LastFMConfig struct {
	User   string `yaml:"user"`
	APIKey string `yaml:"api_key"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Model: ModelConfig{
			Runner:  "exec",
			Name:    "llama3.2",
			Command: "ollama",
			BaseURL: "http://localhost:11434/v1",
			APIKey:  "ollama",
		},
		Weather: WeatherConfig{
			Commentary: true,
		},
	}
}

// Load reads the config file at path. A missing file yields defaults; a
// present but unreadable or malformed file is an error naming the path so
// the user knows what to fix.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills in fields an explicit config file left empty, so a
// partial file still produces a usable configuration.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Model.Runner == "" {
		c.Model.Runner = defaults.Model.Runner
	}
	if c.Model.Name == "" {
		c.Model.Name = defaults.Model.Name
	}
	if c.Model.Command == "" {
		c.Model.Command = defaults.Model.Command
	}
	if c.Model.BaseURL == "" {
		c.Model.BaseURL = defaults.Model.BaseURL
	}
	if c.Model.APIKey == "" {
		c.Model.APIKey = defaults.Model.APIKey
	}
}
