// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, "stdout" or "stderr".
	Output string `mapstructure:"output"`
}

// WorldConfig selects the world definition.
type WorldConfig struct {
	// Path is a world YAML file. Empty means the built-in world.
	Path string `mapstructure:"path"`
}

// GeminiConfig holds settings for the automated LLM player.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// MCPConfig holds settings for the MCP HTTP server.
type MCPConfig struct {
	Addr         string   `mapstructure:"addr"`
	Path         string   `mapstructure:"path"`
	Token        string   `mapstructure:"token"`
	JSONResponse bool     `mapstructure:"json_response"`
	Stateless    bool     `mapstructure:"stateless"`
	Origins      []string `mapstructure:"origins"`
}

// SimulationConfig bounds automated play.
type SimulationConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

// Config holds the application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	World      WorldConfig      `mapstructure:"world"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	MCP        MCPConfig        `mapstructure:"mcp"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMCP(c.MCP); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Simulation.MaxTurns < 1 {
		errs = append(errs, fmt.Sprintf("simulation.max_turns must be >= 1, got %d", c.Simulation.MaxTurns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// RequireGemini reports an error when no Gemini API key is configured.
func (c Config) RequireGemini() error {
	if c.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini.model must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMCP(m MCPConfig) error {
	var errs []string
	if m.Addr == "" {
		errs = append(errs, "mcp.addr must not be empty")
	}
	if !strings.HasPrefix(m.Path, "/") {
		errs = append(errs, fmt.Sprintf("mcp.path must start with /, got %q", m.Path))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with STRANDED_ prefix
	v.SetEnvPrefix("STRANDED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gemini.api_key", "STRANDED_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("binding gemini.api_key: %w", err)
	}

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("world.path", "")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	v.SetDefault("mcp.addr", "127.0.0.1:8765")
	v.SetDefault("mcp.path", "/mcp")
	v.SetDefault("mcp.token", "")
	v.SetDefault("mcp.json_response", false)
	v.SetDefault("mcp.stateless", false)
	v.SetDefault("mcp.origins", []string{"http://localhost", "http://127.0.0.1"})

	v.SetDefault("simulation.max_turns", 10)
}
