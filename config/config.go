package config

import (
	"fmt"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Default settings applied when the config file omits a value.
const (
	DefaultIndent  = 4
	DefaultLogPath = ".logs/tagdump.log"
)

// OutputSettings holds rendering configuration.
type OutputSettings struct {
	// Width forces a fixed wrap width. 0 means detect from the terminal.
	Width int `yaml:"width"`
	// Indent is the number of spaces before each wrapped value line.
	Indent int `yaml:"indent"`
	// Interactive enables the press-enter pause after output on a TTY.
	Interactive bool `yaml:"interactive"`
}

// LogSettings holds diagnostic log configuration.
type LogSettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the tagdump configuration.
type Config struct {
	Output OutputSettings `yaml:"output"`
	Log    LogSettings    `yaml:"log"`
}

// SetDefaults sets default values for unset fields.
func (c *Config) SetDefaults() {
	if c.Output.Indent == 0 {
		c.Output.Indent = DefaultIndent
	}
	if c.Log.Path == "" {
		c.Log.Path = DefaultLogPath
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Output.Width < 0 {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid output width: %d. Must be 0 (auto) or positive", c.Output.Width),
		}
	}
	if c.Output.Indent < 0 {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid output indent: %d. Must be non-negative", c.Output.Indent),
		}
	}
	if c.Output.Width > 0 && c.Output.Indent >= c.Output.Width {
		return &ConfigError{
			Message: fmt.Sprintf("Output indent %d must be smaller than width %d", c.Output.Indent, c.Output.Width),
		}
	}
	return nil
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}
