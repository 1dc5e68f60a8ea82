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

	// GlobeTrek specifics
	Groq         GroqConfig
	Amadeus      AmadeusConfig
	SerpAPI      SerpAPIConfig
	Renderer     RendererConfig
	Conversation ConversationConfig
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

// GroqConfig configures the LLM backend. Groq exposes an OpenAI-compatible
// API, so only key, base URL and model names are needed.
type GroqConfig struct {
	APIKey       string
	BaseURL      string
	PlannerModel string
	ChatModel    string
	Timeout      time.Duration
}

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type SerpAPIConfig struct {
	APIKey            string
	BaseURL           string
	SearchesPerMinute int
}

type RendererConfig struct {
	SparseThreshold int
	MaxImageWidthPt float64
	ImageTimeout    time.Duration
	FooterText      string
}

type ConversationConfig struct {
	MaxSessions  int
	MaxExchanges int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/globetrek/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/globetrek/")

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

	// Groq LLM
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.PlannerModel = viper.GetString("groq.planner_model")
	cfg.Groq.ChatModel = viper.GetString("groq.chat_model")
	cfg.Groq.Timeout = viper.GetDuration("groq.timeout")
	if key := viper.GetString("groq_api_key"); key != "" {
		cfg.Groq.APIKey = key
	}

	// Amadeus flight search
	cfg.Amadeus.ClientID = viper.GetString("amadeus.client_id")
	cfg.Amadeus.ClientSecret = viper.GetString("amadeus.client_secret")
	cfg.Amadeus.BaseURL = viper.GetString("amadeus.base_url")
	if id := viper.GetString("amadeus_client_id"); id != "" {
		cfg.Amadeus.ClientID = id
	}
	if secret := viper.GetString("amadeus_client_secret"); secret != "" {
		cfg.Amadeus.ClientSecret = secret
	}

	// SerpAPI image search
	cfg.SerpAPI.APIKey = viper.GetString("serpapi.api_key")
	cfg.SerpAPI.BaseURL = viper.GetString("serpapi.base_url")
	cfg.SerpAPI.SearchesPerMinute = viper.GetInt("serpapi.searches_per_minute")
	if key := viper.GetString("serpapi_api_key"); key != "" {
		cfg.SerpAPI.APIKey = key
	}

	// Document renderer
	cfg.Renderer.SparseThreshold = viper.GetInt("renderer.sparse_threshold")
	cfg.Renderer.MaxImageWidthPt = viper.GetFloat64("renderer.max_image_width_pt")
	cfg.Renderer.ImageTimeout = viper.GetDuration("renderer.image_timeout")
	cfg.Renderer.FooterText = viper.GetString("renderer.footer_text")

	// Conversation store bounds
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")
	cfg.Conversation.MaxExchanges = viper.GetInt("conversation.max_exchanges")

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

	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.planner_model", "deepseek-r1-distill-llama-70b")
	viper.SetDefault("groq.chat_model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.timeout", "90s")

	viper.SetDefault("amadeus.base_url", "https://test.api.amadeus.com")

	viper.SetDefault("serpapi.base_url", "https://serpapi.com")
	viper.SetDefault("serpapi.searches_per_minute", 30)

	viper.SetDefault("renderer.sparse_threshold", 4)
	viper.SetDefault("renderer.max_image_width_pt", 400)
	viper.SetDefault("renderer.image_timeout", "5s")
	viper.SetDefault("renderer.footer_text", "Generated by GlobeTrek - Your AI Travel Companion")

	viper.SetDefault("conversation.max_sessions", 256)
	viper.SetDefault("conversation.max_exchanges", 50)
}

// MissingKeys reports which optional credentials are absent. Missing keys
// degrade features instead of failing startup; callers surface them as
// warnings.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Groq.APIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.SerpAPI.APIKey == "" {
		missing = append(missing, "SERPAPI_API_KEY")
	}
	if c.Amadeus.ClientID == "" || c.Amadeus.ClientSecret == "" {
		missing = append(missing, "AMADEUS_CLIENT_ID and/or AMADEUS_CLIENT_SECRET")
	}
	return missing
}
