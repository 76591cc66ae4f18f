package gemini

import (
	"fmt"
)

// DefaultAPIURL is the public Generative Language API endpoint
const DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is the model used when none is configured
const DefaultModel = "gemini-2.5-flash"

// Config holds the configuration for the Gemini client
//
// Environment Variables (resolved by internal/config):
// - GEMINI_API_KEY: API key for the Generative Language API (required)
// - GEMINI_API_URL: API endpoint URL (default: https://generativelanguage.googleapis.com/v1beta)
// - GEMINI_MODEL: Model name to use (default: gemini-2.5-flash)
// - GEMINI_TIMEOUT: Request timeout in seconds (default: 120)
type Config struct {
	APIKey  string `json:"api_key"`
	APIURL  string `json:"api_url"`
	Model   string `json:"model"`
	Timeout int    `json:"timeout"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Timeout < 1 {
		return fmt.Errorf("timeout must be greater than 0")
	}
	return nil
}

// GetHeaders returns the headers for a Gemini API request
func (c *Config) GetHeaders() map[string]string {
	return map[string]string{
		"x-goog-api-key": c.APIKey,
		"Content-Type":   "application/json",
	}
}
