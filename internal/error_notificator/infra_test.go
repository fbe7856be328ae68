package error_notificator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeSender struct {
	chatIDs []int64
	texts   []string
	err     error
}

func (f *fakeSender) SendReply(ctx context.Context, chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
	return f.err
}

func (f *fakeSender) SendTyping(ctx context.Context, chatID int64) {}

func TestNotifySendsToAdminChat(t *testing.T) {
	sender := &fakeSender{}
	infra := NewInfra(sender, 42)

	err := infra.Notify(context.Background(), errors.New("boom"), "model query failed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.chatIDs) != 1 || sender.chatIDs[0] != 42 {
		t.Fatalf("sent to %v, want [42]", sender.chatIDs)
	}
	if !strings.Contains(sender.texts[0], "boom") {
		t.Errorf("report %q does not contain the error", sender.texts[0])
	}
	if !strings.Contains(sender.texts[0], "model query failed") {
		t.Errorf("report %q does not contain the details", sender.texts[0])
	}
}

func TestNotifyDisabledWithoutAdminChat(t *testing.T) {
	sender := &fakeSender{}
	infra := NewInfra(sender, 0)

	if err := infra.Notify(context.Background(), errors.New("boom"), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.chatIDs) != 0 {
		t.Errorf("sent %d reports, want 0", len(sender.chatIDs))
	}
}

func TestNotifyPropagatesSendFailure(t *testing.T) {
	wantErr := errors.New("delivery failed")
	sender := &fakeSender{err: wantErr}
	svc := NewService(NewInfra(sender, 42))

	if err := svc.Notify(context.Background(), errors.New("boom"), "x"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
