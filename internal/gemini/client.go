package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the Gemini generateContent REST API.
// Thread-safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Gemini client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Client{
		config:  config,
		baseURL: strings.TrimSuffix(config.APIURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.config.Model
}

// GenerateContent sends a single-turn prompt to the configured model and
// returns the generated text. This is the sole translation service
// boundary; failures are returned as errors and never retried here.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	request := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
	}

	path := fmt.Sprintf("/models/%s:generateContent", c.config.Model)
	response, err := c.makeRequest(ctx, http.MethodPost, path, request)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var b strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text in response")
	}

	return text, nil
}

// makeRequest makes a raw HTTP request to the Gemini API
func (c *Client) makeRequest(ctx context.Context, method, path string, payload interface{}) (*GenerateResponse, error) {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.config.GetHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var genResponse GenerateResponse
	if err := json.Unmarshal(responseBody, &genResponse); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if genResponse.Error != nil && genResponse.Error.Message != "" {
		return &genResponse, genResponse.Error
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &genResponse, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	return &genResponse, nil
}
