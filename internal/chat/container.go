package chat

import (
	"context"

	"github.com/well-living/nurse-exam-app/internal/config"
)

type ChatContainer struct {
	Provider Provider
	Handler  *Handler
}

// NewChatContainer picks the provider from the configured credentials:
// Anthropic first, then Gemini, then the deterministic mock.
func NewChatContainer(ctx context.Context, cfg *config.Config) (*ChatContainer, error) {
	var provider Provider
	switch {
	case cfg.AnthropicAPIKey != "":
		provider = NewAnthropicProvider(cfg.AnthropicAPIKey)
	case cfg.GeminiAPIKey != "":
		p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		provider = NewMockProvider()
	}

	return &ChatContainer{
		Provider: provider,
		Handler:  NewHandler(provider),
	}, nil
}
