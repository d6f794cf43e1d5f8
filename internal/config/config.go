// Package config loads service configuration from environment variables
// (optionally seeded from a .env file by the entrypoint).
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full service configuration.
type Config struct {
	Server     ServerConfig
	Supabase   SupabaseConfig
	Agent      AgentConfig
	Conference ConferenceConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// SupabaseConfig holds the collection store connection settings. URL and key
// are required; startup fails without them.
type SupabaseConfig struct {
	URL string
	Key string
}

// AgentConfig holds the delegated agent-execution settings. An empty APIKey
// disables delegation; the chat service then uses local dispatch only.
type AgentConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxRounds int
}

// ConferenceConfig holds fixed conference identity values.
type ConferenceConfig struct {
	Name string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from the environment and validates required
// fields.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("AGENT_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("AGENT_MODEL", "llama3-8b-8192")
	v.SetDefault("AGENT_MAX_ROUNDS", 4)
	v.SetDefault("CONFERENCE_NAME", "Aviation Tech Summit 2025")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Supabase: SupabaseConfig{
			URL: v.GetString("SUPABASE_URL"),
			Key: v.GetString("SUPABASE_ANON_KEY"),
		},
		Agent: AgentConfig{
			APIKey:    v.GetString("GROQ_API_KEY"),
			BaseURL:   v.GetString("AGENT_BASE_URL"),
			Model:     v.GetString("AGENT_MODEL"),
			MaxRounds: v.GetInt("AGENT_MAX_ROUNDS"),
		},
		Conference: ConferenceConfig{
			Name: v.GetString("CONFERENCE_NAME"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		},
	}

	if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY must be set in environment variables")
	}

	return cfg, nil
}
