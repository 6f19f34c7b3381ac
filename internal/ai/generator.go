package ai

import (
	openai "github.com/sashabaranov/go-openai"
)

// Generator wraps an OpenAI-compatible chat-completion client pointed at the
// DeepSeek endpoint.
type Generator struct {
	client    *openai.Client
	modelID   string
	maxTokens int
}

// NewGenerator builds a Generator for the given credential and endpoint.
// baseURL should be the provider's OpenAI-compatible base, e.g.
// "https://api.deepseek.com/v1".
func NewGenerator(apiKey, baseURL, modelID string, maxTokens int) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Generator{
		client:    openai.NewClientWithConfig(cfg),
		modelID:   modelID,
		maxTokens: maxTokens,
	}
}
