package chat

import (
	"encoding/json"
	"net/http"

	"github.com/well-living/nurse-exam-app/internal/config"
)

const (
	eventMessage = "message"
	eventDone    = "done"
)

type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// StreamChat pushes the completion to the caller as an SSE sequence of
// message events terminated by a single done event. Once the stream has
// committed, upstream faults are reported in-band as a final error fragment
// rather than an HTTP error.
func (h *Handler) StreamChat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		config.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	setSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	chunks, err := h.provider.Stream(r.Context(), req.History, req.Message)
	if err != nil {
		log.WithError(err).Error("chat stream failed to start")
		_ = writeSSEEvent(w, eventMessage, errorPrefix+err.Error())
		_ = writeSSEEvent(w, eventDone, "")
		return
	}

	for chunk := range chunks {
		if chunk.Err != nil {
			log.WithError(chunk.Err).Error("chat stream failed")
			_ = writeSSEEvent(w, eventMessage, errorPrefix+chunk.Err.Error())
			break
		}
		if err := writeSSEEvent(w, eventMessage, chunk.Text); err != nil {
			// Caller went away; cancellation via r.Context() stops the
			// producer, remaining fragments are discarded.
			log.WithError(err).Debug("client disconnected mid-stream")
			return
		}
	}

	_ = writeSSEEvent(w, eventDone, "")
}
