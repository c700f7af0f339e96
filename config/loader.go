package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load loads and validates configuration from a YAML file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Configuration file not found: %s", path),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Error reading configuration file: %v", err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Error parsing YAML file: %v", err),
		}
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overlays TAGDUMP_* environment variables onto the configuration.
// A .env file in the working directory is loaded first if present.
func (c *Config) ApplyEnv() {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("TAGDUMP_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Output.Width = n
		}
	}
	if v := os.Getenv("TAGDUMP_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Output.Indent = n
		}
	}
	if os.Getenv("TAGDUMP_NO_TUI") != "" {
		c.Output.Interactive = false
	}
	if v := os.Getenv("TAGDUMP_LOG_PATH"); v != "" {
		c.Log.Path = v
		c.Log.Enabled = true
	}
}
