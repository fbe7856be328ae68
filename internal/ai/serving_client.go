package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrModelUnavailable marks transport failures or error statuses
	// from the serving endpoint.
	ErrModelUnavailable = errors.New("ai: model unavailable")

	// ErrEmptyResponse marks a completion with no choices.
	ErrEmptyResponse = errors.New("ai: empty model response")
)

// ServingClient talks to a hosted serving endpoint over its
// OpenAI-compatible chat completions API. The endpoint identifier is
// passed as the model name.
type ServingClient struct {
	client   *openai.Client
	endpoint string
}

func NewServingClient(host, token, endpoint string) *ServingClient {
	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = host

	return &ServingClient{
		client:   openai.NewClientWithConfig(cfg),
		endpoint: endpoint,
	}
}

func (c *ServingClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.endpoint,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
