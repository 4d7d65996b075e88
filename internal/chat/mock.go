package chat

import (
	"context"
	"fmt"
	"time"
)

const mockCharDelay = 20 * time.Millisecond

// MockProvider is the fallback when no API key is configured. It echoes the
// input one rune at a time with a fixed delay to simulate generation latency;
// the concatenated output is byte-for-byte reproducible for the same input.
type MockProvider struct {
	Delay time.Duration
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Delay: mockCharDelay}
}

func (p *MockProvider) Stream(ctx context.Context, history []Message, message string) (<-chan Chunk, error) {
	text := fmt.Sprintf("[Mock Response] あなたの質問: %s\n\nこれはAPIキーが設定されていない場合のモック応答です。", message)

	chunks := make(chan Chunk, 100)
	go func() {
		defer close(chunks)
		for _, r := range text {
			select {
			case chunks <- Chunk{Text: string(r)}:
			case <-ctx.Done():
				return
			}
			if p.Delay > 0 {
				select {
				case <-time.After(p.Delay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return chunks, nil
}
