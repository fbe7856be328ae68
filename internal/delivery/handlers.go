package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/mzhurovsky/model_relay/internal/ports"
)

// Relay is the slice of the relay service the handler needs.
type Relay interface {
	Process(ctx context.Context, msg ports.InboundMessage)
}

type UpdateHandler struct {
	relay Relay
	log   *logger.ZapLogger
}

func NewUpdateHandler(relay Relay, log *logger.ZapLogger) *UpdateHandler {
	return &UpdateHandler{
		relay: relay,
		log:   log,
	}
}

// PushUpdate accepts one conversation update in a JSON envelope and
// runs it through the same relay path as a polled message. The poll
// cursor is not involved.
func (h *UpdateHandler) PushUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID int64  `json:"chat_id"`
		Text   string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ChatID == 0 {
		http.Error(w, "chat_id is required", http.StatusBadRequest)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("push update chat=%d", req.ChatID),
		Service: "delivery",
	})

	h.relay.Process(r.Context(), ports.InboundMessage{
		ChatID: req.ChatID,
		Text:   req.Text,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}
