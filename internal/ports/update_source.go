package ports

import "context"

type UpdateSource interface {
	// FetchNew returns messages that arrived after cursor, in arrival
	// order, plus the new cursor (unchanged when the batch is empty).
	FetchNew(ctx context.Context, cursor int) ([]InboundMessage, int, error)
}
