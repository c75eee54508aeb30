// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Nutrient lookup modes for the calories route.
const (
	NutrientLookupPositional = "positional"
	NutrientLookupName       = "name"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Cache (Redis). Optional: without it the credential cache and rate
	// limiter stay in process.
	RedisURL       string        `env:"REDIS_URL"`
	RedisPoolSize  int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisOpTimeout time.Duration `env:"REDIS_OP_TIMEOUT" envDefault:"500ms"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Outbound calls
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	// Rate limiting (per client IP)
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int  `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Stock fan-out
	StockConcurrency int `env:"STOCK_CONCURRENCY" envDefault:"8"`
	StockSymbolLimit int `env:"STOCK_SYMBOL_LIMIT" envDefault:"50"`

	// NutrientLookup selects how nutrient values are picked from a food
	// search result: "positional" or "name".
	NutrientLookup string `env:"NUTRIENT_LOOKUP" envDefault:"positional"`

	Upstreams Upstreams
}

// Upstreams holds credentials and base URLs for every third-party API.
// Credentials are opaque and never required at startup.
type Upstreams struct {
	HuggingFaceToken string `env:"HUGGINGFACE_TOKEN"`
	HuggingFaceURL   string `env:"HUGGINGFACE_URL" envDefault:"https://api-inference.huggingface.co/models/facebook/bart-large-cnn"`

	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	SpotifyAuthURL      string `env:"SPOTIFY_AUTH_URL" envDefault:"https://accounts.spotify.com/api/token"`
	SpotifyAPIURL       string `env:"SPOTIFY_API_URL" envDefault:"https://api.spotify.com/v1"`

	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`
	YouTubeURL    string `env:"YOUTUBE_URL" envDefault:"https://www.googleapis.com/youtube/v3"`

	TextToSpeechAPIKey string `env:"GOOGLE_TTS_API_KEY"`
	TextToSpeechURL    string `env:"GOOGLE_TTS_URL" envDefault:"https://texttospeech.googleapis.com/v1"`

	MapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
	MapsURL    string `env:"GOOGLE_MAPS_URL" envDefault:"https://maps.googleapis.com/maps/api"`

	NinjasAPIKey string `env:"API_NINJAS_KEY"`
	NinjasURL    string `env:"API_NINJAS_URL" envDefault:"https://api.api-ninjas.com/v1"`

	USDAAPIKey string `env:"USDA_API_KEY"`
	USDAURL    string `env:"USDA_URL" envDefault:"https://api.nal.usda.gov/fdc/v1"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAIURL    string `env:"OPENAI_URL" envDefault:"https://api.openai.com/v1"`

	FinnhubAPIKey string `env:"FINNHUB_API_KEY"`
	FinnhubURL    string `env:"FINNHUB_URL" envDefault:"https://finnhub.io/api/v1"`

	TranslateAPIKey string `env:"GOOGLE_TRANSLATE_API_KEY"`
	TranslateURL    string `env:"GOOGLE_TRANSLATE_URL" envDefault:"https://translation.googleapis.com/language/translate/v2"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.NutrientLookup {
	case NutrientLookupPositional, NutrientLookupName:
	default:
		return nil, fmt.Errorf("invalid NUTRIENT_LOOKUP %q: want %q or %q",
			cfg.NutrientLookup, NutrientLookupPositional, NutrientLookupName)
	}

	if cfg.StockConcurrency < 1 {
		cfg.StockConcurrency = 1
	}

	return cfg, nil
}
