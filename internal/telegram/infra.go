package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhurovsky/model_relay/internal/ports"
)

var (
	// ErrTransientNetwork marks poll failures; the caller retries on
	// the next tick.
	ErrTransientNetwork = errors.New("telegram: transient network error")

	// ErrDelivery marks a failed sendMessage. Never retried: a retry
	// could duplicate the message in the chat.
	ErrDelivery = errors.New("telegram: delivery failed")
)

const longPollTimeout = 30 // seconds

// Client wraps one bot and implements ports.UpdateSource and
// ports.ReplySender on top of it.
type Client struct {
	bot *tgbotapi.BotAPI
}

func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	log.Printf("[telegram] ready: @%s", bot.Self.UserName)
	return &Client{bot: bot}, nil
}

// NewClientWithEndpoint points the client at a non-default Bot API
// server, e.g. a local one.
func NewClientWithEndpoint(token, apiEndpoint string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Client{bot: bot}, nil
}

// FetchNew long-polls getUpdates starting after cursor. Updates without
// message text are skipped but still advance the returned cursor, so
// they are never fetched again.
func (c *Client) FetchNew(ctx context.Context, cursor int) ([]ports.InboundMessage, int, error) {
	u := tgbotapi.NewUpdate(cursor + 1)
	u.Timeout = longPollTimeout
	u.AllowedUpdates = []string{"message"}

	updates, err := c.bot.GetUpdates(u)
	if err != nil {
		return nil, cursor, fmt.Errorf("%w: %v", ErrTransientNetwork, err)
	}

	newCursor := cursor
	var msgs []ports.InboundMessage

	for _, upd := range updates {
		if upd.UpdateID > newCursor {
			newCursor = upd.UpdateID
		}

		if upd.Message == nil || upd.Message.Text == "" {
			continue
		}

		msg := ports.InboundMessage{
			UpdateID: upd.UpdateID,
			ChatID:   upd.Message.Chat.ID,
			Text:     upd.Message.Text,
		}
		if upd.Message.From != nil {
			msg.FromName = upd.Message.From.FirstName
		}
		msgs = append(msgs, msg)
	}

	return msgs, newCursor, nil
}

func (c *Client) SendReply(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

func (c *Client) SendTyping(ctx context.Context, chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := c.bot.Request(action); err != nil {
		log.Printf("[telegram] chat action fail chat=%d: %v", chatID, err)
	}
}

// DeleteWebhook clears any registered webhook so long polling works.
// Called once at startup.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	if _, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}
