package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/subtran/vtt-translate/internal/gemini"
)

// Config holds all application configuration
//
// Environment Variables:
// - GEMINI_API_KEY: API key for the Gemini API (required; may live in ~/.env)
// - GEMINI_API_URL: API endpoint URL (default: https://generativelanguage.googleapis.com/v1beta)
// - GEMINI_MODEL: Model name (default: gemini-2.5-flash)
// - GEMINI_TIMEOUT: Request timeout in seconds (default: 120)
// - TRANSLATE_BATCH_SIZE: Cues per translation request (default: 10)
// - WATCH_DIRS: Directories scanned in watch mode, list-separator delimited
// - WATCH_CRON: Watch mode schedule (default: @hourly)
// - LOG_LEVEL: Log level for diagnostic output (default: info)
type Config struct {
	Gemini    gemini.Config   `json:"gemini"`
	Translate TranslateConfig `json:"translate"`
	Watch     WatchConfig     `json:"watch"`
	LogLevel  string          `json:"log_level"`
}

// TranslateConfig holds translation pipeline configuration
type TranslateConfig struct {
	TargetLanguage language.Tag `json:"target_language"`
	BatchSize      int          `json:"batch_size"`
}

// WatchConfig holds watch mode configuration
type WatchConfig struct {
	Dirs     []string `json:"dirs"`
	CronExpr string   `json:"cron_expr"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// WithModel overrides the Gemini model
func WithModel(model string) Option {
	return func(c *Config) {
		if model != "" {
			c.Gemini.Model = model
		}
	}
}

// WithBatchSize overrides the translation batch size
func WithBatchSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Translate.BatchSize = n
		}
	}
}

// LoadUserEnv loads environment variables from the user's ~/.env file,
// where the Gemini API key is conventionally stored. A missing file is
// not an error; existing process environment takes precedence.
func LoadUserEnv() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(home, ".env"))
}

// NewFromEnv creates a new Config instance with values from environment
// variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		Gemini: gemini.Config{
			APIKey:  getEnvString("GEMINI_API_KEY", ""),
			APIURL:  getEnvString("GEMINI_API_URL", gemini.DefaultAPIURL),
			Model:   getEnvString("GEMINI_MODEL", gemini.DefaultModel),
			Timeout: getEnvInt("GEMINI_TIMEOUT", 120),
		},
		Translate: TranslateConfig{
			TargetLanguage: language.Korean,
			BatchSize:      getEnvInt("TRANSLATE_BATCH_SIZE", 10),
		},
		Watch: WatchConfig{
			Dirs:     splitList(getEnvString("WATCH_DIRS", "")),
			CronExpr: getEnvString("WATCH_CRON", "@hourly"),
		},
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not found; add GEMINI_API_KEY=your_api_key to ~/.env or the environment")
	}
	if c.Translate.BatchSize < 1 {
		return fmt.Errorf("TRANSLATE_BATCH_SIZE must be greater than 0")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
