package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"figma_react_server/internal/ai/prompts"
	"figma_react_server/internal/utils"
)

// GenerateReactCode asks the model to convert the described design into a
// React + Tailwind project and returns the raw reply text. The reply is left
// unparsed; the packager owns the "# FILE:" convention. designName is
// optional metadata resolved from the Figma API and may be empty.
func (g *Generator) GenerateReactCode(ctx context.Context, designDescription, figmaURL, designName string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompts.UserPrompt(designDescription, figmaURL, designName)},
		},
		MaxTokens:   g.maxTokens,
		Temperature: 0.3, // keep generation predictable; the output is parsed, not read
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("Chat completion failed, retrying once after delay... Error: %v", err)
		time.Sleep(2 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("Model usage for empty reply: %+v", resp.Usage)
		return "", errors.New("model returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
