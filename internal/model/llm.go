package model

// GenerateRequest is the request body for the text-generation endpoint
type GenerateRequest struct {
	Prompt     string         `json:"prompt" binding:"required"`
	Provider   string         `json:"provider"`
	Parameters map[string]any `json:"parameters"`
}

// GenerateResponse is the response body for the text-generation endpoint
type GenerateResponse struct {
	Text     string            `json:"text"`
	Provider string            `json:"provider"`
	Metadata map[string]string `json:"metadata"`
}
