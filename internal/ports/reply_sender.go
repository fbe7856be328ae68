package ports

import "context"

type ReplySender interface {
	SendReply(ctx context.Context, chatID int64, text string) error

	// SendTyping is best effort; failures are only logged.
	SendTyping(ctx context.Context, chatID int64)
}
