package relay

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mzhurovsky/model_relay/internal/error_notificator"
	"github.com/mzhurovsky/model_relay/internal/ports"
)

// Service relays inbound messages to the model and replies back.
// Strictly sequential: one batch at a time, one message at a time.
type Service struct {
	source   ports.UpdateSource
	model    ports.ModelClient
	sender   ports.ReplySender
	notify   error_notificator.Notificator
	interval time.Duration
	endpoint string

	lastUpdate atomic.Int64 // for /status, written only by the loop
}

func New(
	source ports.UpdateSource,
	model ports.ModelClient,
	sender ports.ReplySender,
	notify error_notificator.Notificator,
	interval time.Duration,
	endpoint string,
) *Service {
	return &Service{
		source:   source,
		model:    model,
		sender:   sender,
		notify:   notify,
		interval: interval,
		endpoint: endpoint,
	}
}

// Run polls until ctx is cancelled. The cursor is threaded through as a
// value; it resets to zero on restart, so Telegram may redeliver
// messages across restarts.
func (s *Service) Run(ctx context.Context) {
	log.Printf("[relay] started endpoint=%s interval=%s", s.endpoint, s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	cursor := 0
	for {
		cursor = s.RunOnce(ctx, cursor)

		select {
		case <-ctx.Done():
			log.Printf("[relay] stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce performs one poll cycle: fetch a batch, drain it in arrival
// order, return the new cursor. The cursor advances past every fetched
// update regardless of per-message success, so a failed message is
// never retried.
func (s *Service) RunOnce(ctx context.Context, cursor int) int {
	msgs, next, err := s.source.FetchNew(ctx, cursor)
	if err != nil {
		log.Printf("[relay] fetch fail cursor=%d: %v", cursor, err)
		return cursor
	}

	s.lastUpdate.Store(int64(next))

	if len(msgs) == 0 {
		return next
	}

	log.Printf("[relay] got %d message(s) cursor=%d", len(msgs), cursor)

	for _, msg := range msgs {
		s.Process(ctx, msg)
	}

	return next
}

// Process relays a single inbound message. Commands are answered
// locally; anything else goes through the model. All failures are
// absorbed here: a model failure drops the message, a delivery failure
// loses the reply, neither stops the batch.
func (s *Service) Process(ctx context.Context, msg ports.InboundMessage) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	if s.handleCommand(ctx, msg) {
		return
	}

	s.sender.SendTyping(ctx, msg.ChatID)

	reply, err := s.model.Query(ctx, msg.Text)
	if err != nil {
		log.Printf("[relay] model fail chat=%d update=%d: %v", msg.ChatID, msg.UpdateID, err)
		s.notify.Notify(ctx, err, fmt.Sprintf(
			"model query failed\nchat: %d\ntext: %q",
			msg.ChatID, msg.Text,
		))
		return
	}

	if err := s.sender.SendReply(ctx, msg.ChatID, reply); err != nil {
		log.Printf("[relay] reply lost chat=%d update=%d: %v", msg.ChatID, msg.UpdateID, err)
		s.notify.Notify(ctx, err, fmt.Sprintf("reply delivery failed\nchat: %d", msg.ChatID))
	}
}
