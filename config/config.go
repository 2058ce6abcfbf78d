package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the simulation service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Agent     AgentConfig     `mapstructure:"agent"`
	Tools     ToolsConfig     `mapstructure:"tools"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// OpenAIConfig contains the chat-completion provider settings
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (o OpenAIConfig) Validate() error {
	if strings.TrimSpace(o.Model) == "" {
		return fmt.Errorf("openai.model required")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("openai.timeout must be > 0")
	}
	return nil
}

// AgentConfig contains agent behaviour settings
type AgentConfig struct {
	Name string `mapstructure:"name"`
	// ToolsEnabled is kept as a string so the legacy env convention
	// (TOOLS_ENABLED=0/false/no turns tools off) round-trips unchanged.
	ToolsEnabled string `mapstructure:"tools_enabled"`
	CurrentYear  int    `mapstructure:"current_year"`
	MaxRounds    int    `mapstructure:"max_rounds"`
}

// ToolsOn reports whether the model should be offered tools.
func (a AgentConfig) ToolsOn() bool {
	switch strings.ToLower(strings.TrimSpace(a.ToolsEnabled)) {
	case "0", "false", "no":
		return false
	}
	return true
}

// Year resolves the current-year override, falling back to the UTC clock.
func (a AgentConfig) Year() int {
	if a.CurrentYear > 0 {
		return a.CurrentYear
	}
	return time.Now().UTC().Year()
}

func (a AgentConfig) Validate() error {
	if a.MaxRounds <= 0 {
		return fmt.Errorf("agent.max_rounds must be > 0")
	}
	return nil
}

// ToolsConfig contains settings for the built-in tools
type ToolsConfig struct {
	WikiBaseURL string        `mapstructure:"wiki_base_url"`
	WikiTimeout time.Duration `mapstructure:"wiki_timeout"`
}

// TelemetryConfig contains telemetry and monitoring settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads config from file (optional) and environment.
//
// Env vars with the CHRONOSCRIBE_ prefix map onto config keys
// (CHRONOSCRIBE_SERVER_ADDRESS -> server.address). The original
// unprefixed names OPENAI_API_KEY, OPENAI_MODEL, TOOLS_ENABLED and
// CURRENT_YEAR are bound explicitly for compatibility.
func LoadConfig(path string) *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout", 60*time.Second)
	v.SetDefault("agent.name", "ChronoScribe Agent")
	v.SetDefault("agent.tools_enabled", "1")
	v.SetDefault("agent.max_rounds", 4)
	v.SetDefault("tools.wiki_base_url", "https://en.wikipedia.org/api/rest_v1/page/summary")
	v.SetDefault("tools.wiki_timeout", 5*time.Second)
	v.SetDefault("telemetry.enabled", true)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("CHRONOSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("openai.api_key", "CHRONOSCRIBE_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("openai.model", "CHRONOSCRIBE_OPENAI_MODEL", "OPENAI_MODEL")
	_ = v.BindEnv("agent.tools_enabled", "CHRONOSCRIBE_AGENT_TOOLS_ENABLED", "TOOLS_ENABLED")
	_ = v.BindEnv("agent.current_year", "CHRONOSCRIBE_AGENT_CURRENT_YEAR", "CURRENT_YEAR")

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional unless one was named explicitly.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.OpenAI.Validate(); err != nil {
		panic(err)
	}
	if err := config.Agent.Validate(); err != nil {
		panic(err)
	}
	return &config
}
