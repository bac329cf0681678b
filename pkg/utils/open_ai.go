package utils

import (
	"context"
	"fmt"
	openai "github.com/sashabaranov/go-openai"
	"net/http"
	"strings"
	"time"
)

// OpenAICompletionClient talks to any OpenAI compatible chat-completions API
// (OpenAI itself, Groq).
type OpenAICompletionClient struct {
	client   *openai.Client
	model    string
	provider string
}

// NewOpenAICompletionClient creates a client. An empty baseURL keeps the
// library's OpenAI default; a zero timeout keeps http.Client's default.
func NewOpenAICompletionClient(provider, apiKey, model, baseURL string, timeout time.Duration) *OpenAICompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &OpenAICompletionClient{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		provider: provider,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: CompletionTemperature,
		MaxTokens:   CompletionMaxTokens,
	})
	if err != nil {
		return "", wrapProviderError(c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s returned no choices", ErrInternalFailure, c.provider)
	}
	return resp.Choices[0].Message.Content, nil
}
