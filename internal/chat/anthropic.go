package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicBaseURL   = "https://api.anthropic.com"
	anthropicVersion   = "2023-06-01"
	anthropicModel     = "claude-sonnet-4-20250514"
	anthropicMaxTokens = 1024
)

// AnthropicProvider streams completions from the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		model:   anthropicModel,
		client:  &http.Client{},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	MaxTokens int                `json:"max_tokens"`
	Stream    bool               `json:"stream"`
}

type anthropicDelta struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicAPIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type anthropicStreamEvent struct {
	Type  string             `json:"type"`
	Delta *anthropicDelta    `json:"delta,omitempty"`
	Error *anthropicAPIError `json:"error,omitempty"`
}

func (p *AnthropicProvider) Stream(ctx context.Context, history []Message, message string) (<-chan Chunk, error) {
	reqBody := anthropicRequest{
		Model:     p.model,
		System:    systemPrompt,
		Messages:  make([]anthropicMessage, 0, len(history)+1),
		MaxTokens: anthropicMaxTokens,
		Stream:    true,
	}
	for _, m := range history {
		reqBody.Messages = append(reqBody.Messages, anthropicMessage{Role: m.Role, Content: m.Content})
	}
	reqBody.Messages = append(reqBody.Messages, anthropicMessage{Role: RoleUser, Content: message})

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal anthropic request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("anthropic api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	chunks := make(chan Chunk, 100)
	go func() {
		defer close(chunks)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")

			var event anthropicStreamEvent
			if err := json.Unmarshal([]byte(data), &event); err != nil {
				emit(ctx, chunks, Chunk{Err: fmt.Errorf("failed to parse stream event: %w", err)})
				return
			}

			switch event.Type {
			case "content_block_delta":
				if event.Delta != nil && event.Delta.Text != "" {
					if !emit(ctx, chunks, Chunk{Text: event.Delta.Text}) {
						return
					}
				}
			case "message_stop":
				return
			case "error":
				msg := "unknown stream error"
				if event.Error != nil {
					msg = event.Error.Message
				}
				emit(ctx, chunks, Chunk{Err: errors.New(msg)})
				return
			}
			// message_start, content_block_start/stop, message_delta and
			// ping events carry no text.
		}

		if err := scanner.Err(); err != nil {
			emit(ctx, chunks, Chunk{Err: fmt.Errorf("stream read failed: %w", err)})
		}
	}()

	return chunks, nil
}

// emit sends c unless the caller has gone away; the false return tells the
// producer to stop.
func emit(ctx context.Context, chunks chan<- Chunk, c Chunk) bool {
	select {
	case chunks <- c:
		return true
	case <-ctx.Done():
		return false
	}
}
