package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyInput is returned when there is nothing to send to the model.
var ErrEmptyInput = errors.New("ai: empty input")

const (
	maxInputTokens = 4000
	tokenizerModel = "gpt-4o-mini"
)

// CompletionClient is the one call the service needs from the serving
// endpoint.
type CompletionClient interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type Service struct {
	client    CompletionClient
	maxTokens int
}

func NewService(client CompletionClient) *Service {
	return &Service{
		client:    client,
		maxTokens: maxInputTokens,
	}
}

// Query sends one user-role message and returns the generated reply.
// Side-effect free on failure, so callers may retry.
func (s *Service) Query(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	text = s.capInput(text)

	return s.client.GetCompletion(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: text,
		},
	})
}

// capInput trims oversized text to the token budget. Short input never
// touches the tokenizer; if the tokenizer cannot be loaded the cap
// falls back to a rune cut.
func (s *Service) capInput(text string) string {
	if len(text) < s.maxTokens*2 {
		return text
	}

	enc, err := tiktoken.EncodingForModel(tokenizerModel)
	if err != nil {
		log.Printf("[ai] tokenizer init fail: %v", err)
		runes := []rune(text)
		if len(runes) > s.maxTokens*4 {
			runes = runes[:s.maxTokens*4]
		}
		return string(runes)
	}

	ids := enc.Encode(text, nil, nil)
	if len(ids) <= s.maxTokens {
		return text
	}
	return enc.Decode(ids[:s.maxTokens])
}
