package gemini

import "fmt"

// GenerateRequest represents a generateContent request
//
// Contents: conversation turns; a single-turn prompt uses one entry
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content represents one turn of model input or output
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part represents a single text fragment within a Content
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse represents a generateContent response
//
// Candidates: generated completions, usually exactly one
// Error: populated instead of Candidates when the API rejects the call
type GenerateResponse struct {
	Candidates []Candidate    `json:"candidates"`
	Usage      *UsageMetadata `json:"usageMetadata,omitempty"`
	Error      *APIError      `json:"error,omitempty"`
}

// Candidate represents a single generated completion
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// UsageMetadata represents token accounting for a call
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// APIError represents an error payload returned by the API
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error: %s (code: %d, status: %s)", e.Message, e.Code, e.Status)
}
