package ports

import "context"

type ModelClient interface {
	// Query sends one user message to the serving endpoint and returns
	// the generated reply. Side-effect free on failure.
	Query(ctx context.Context, text string) (string, error)
}
