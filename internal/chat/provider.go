package chat

import "context"

// Chunk is one incremental unit of generated text. A Chunk with Err set is
// terminal: the producer closes the channel right after sending it.
type Chunk struct {
	Text string
	Err  error
}

// Provider produces a completion for the prior history plus the new message
// as a push sequence of fragments. The returned channel is closed when the
// stream ends; producers stop and release their upstream handle when ctx is
// cancelled. A nil channel with an error means the exchange never started.
type Provider interface {
	Stream(ctx context.Context, history []Message, message string) (<-chan Chunk, error)
}
