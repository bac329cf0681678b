package utils

import (
	"context"
	"errors"
	"fmt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"net"
	"net/url"
	"strings"
	"time"
)

// Sampling settings shared by every provider.
const (
	CompletionTemperature = 0.7
	CompletionMaxTokens   = 1500
)

// CompletionClientInterface sends one system turn and one user turn to a chat
// model and returns the first completion's text.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// NewCompletionClient Factory function to create the client for the configured provider
func NewCompletionClient(ctx context.Context, provider, apiKey, model, baseURL string, timeout time.Duration) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "groq", "openai":
		return NewOpenAICompletionClient(provider, apiKey, model, baseURL, timeout), nil
	case "gemini":
		client, err := NewGeminiCompletionClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// wrapProviderError tags err as a gateway failure when the provider could not
// be reached, and as an internal failure otherwise.
func wrapProviderError(provider string, err error) error {
	if isTransportError(err) {
		return fmt.Errorf("%w: %s: %v", ErrGatewayFailure, provider, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternalFailure, provider, err)
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// gRPC transports report connection problems as status codes.
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			return true
		}
	}
	return false
}
