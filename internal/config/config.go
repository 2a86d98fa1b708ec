// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider selects which hosted model backend serves Generate calls.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// CacheBackend selects where parsed records are cached.
type CacheBackend string

const (
	CacheBackendFile  CacheBackend = "file"
	CacheBackendRedis CacheBackend = "redis"
)

// Config holds every tunable of the service. Zero values are never used
// directly; Load fills in defaults.
type Config struct {
	// Model
	Provider        Provider
	GeminiAPIKey    string
	OpenAIAPIKey    string
	ModelName       string
	Temperature     float64
	MaxOutputTokens int
	RequestTimeout  time.Duration
	MaxRetries      int

	// Cache
	UseCache     bool
	CacheBackend CacheBackend
	CacheDir     string
	RedisAddr    string
	RedisPass    string

	// Rate limiting and input handling
	RequestsPerMinute int
	MaxFileSize       int64
	SupportedFormats  []string

	// Server
	Port string
}

// Load reads configuration from the environment. It returns an error when
// the selected provider has no API key configured; there is deliberately
// no fallback credential.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Provider:          Provider(getEnv("MODEL_PROVIDER", string(ProviderGemini))),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		ModelName:         getEnv("MODEL_NAME", "gemini-2.5-flash"),
		Temperature:       getEnvFloat("TEMPERATURE", 0.1),
		MaxOutputTokens:   getEnvInt("MAX_OUTPUT_TOKENS", 2000),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		MaxRetries:        getEnvInt("MAX_RETRIES", 3),
		UseCache:          getEnvBool("USE_CACHE", true),
		CacheBackend:      CacheBackend(getEnv("CACHE_BACKEND", string(CacheBackendFile))),
		CacheDir:          getEnv("CACHE_DIR", "./cache"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASS"),
		RequestsPerMinute: getEnvInt("REQUESTS_PER_MINUTE", 60),
		MaxFileSize:       int64(getEnvInt("MAX_FILE_SIZE", 10*1024*1024)),
		SupportedFormats:  []string{".txt", ".text", ".pdf", ".docx"},
		Port:              getEnv("PORT", "8080"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when MODEL_PROVIDER=gemini")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when MODEL_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown MODEL_PROVIDER: %q", c.Provider)
	}

	switch c.CacheBackend {
	case CacheBackendFile, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CACHE_BACKEND: %q", c.CacheBackend)
	}

	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1, got %d", c.MaxRetries)
	}
	if c.RequestsPerMinute < 1 {
		return fmt.Errorf("REQUESTS_PER_MINUTE must be at least 1, got %d", c.RequestsPerMinute)
	}
	return nil
}

// PacingInterval is the fixed delay applied between batch items so the
// sequential batch loop stays under the requests-per-minute ceiling.
func (c *Config) PacingInterval() time.Duration {
	return time.Minute / time.Duration(c.RequestsPerMinute)
}

// IsSupportedFormat reports whether the extension (with leading dot,
// any case) belongs to a parseable file type.
func (c *Config) IsSupportedFormat(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range c.SupportedFormats {
		if ext == s {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
