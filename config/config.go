package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// IntelliLearn specifics
	Gemini  GeminiConfig
	Whisper WhisperConfig
	Notes   NotesConfig
	Session SessionConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	ImageModel string
}

type WhisperConfig struct {
	URL string
}

type NotesConfig struct {
	DBPath string
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.ImageModel = viper.GetString("gemini.image_model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key not configured - set GEMINI_API_KEY or gemini.api_key")
	}

	// Whisper
	cfg.Whisper.URL = viper.GetString("whisper.url")
	if url := viper.GetString("whisper_url"); url != "" {
		cfg.Whisper.URL = url
	}

	// Notes
	cfg.Notes.DBPath = viper.GetString("notes.db_path")
	if path := viper.GetString("notes_db_path"); path != "" {
		cfg.Notes.DBPath = path
	}

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.image_model", "gemini-2.0-flash-preview-image-generation")
	viper.SetDefault("whisper.url", "http://localhost:8081")
	viper.SetDefault("notes.db_path", "./data/notes.db")
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
