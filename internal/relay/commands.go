package relay

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mzhurovsky/model_relay/internal/ports"
)

const (
	msgWelcome = "👋 Hello! I'm connected to a hosted AI model. Send me a message and I'll respond!"
	msgHelp    = "💬 Just send me any message and I'll relay it to the model.\n\n" +
		"Commands:\n" +
		"/start - Welcome message\n" +
		"/help - This help message\n" +
		"/status - Check bot status"
)

// handleCommand answers built-in bot commands without touching the
// model. Unknown slash commands fall through to the relay path.
func (s *Service) handleCommand(ctx context.Context, msg ports.InboundMessage) bool {
	if !strings.HasPrefix(msg.Text, "/") {
		return false
	}

	// strip arguments and the @botname suffix
	cmd := strings.SplitN(msg.Text, " ", 2)[0]
	cmd = strings.SplitN(cmd, "@", 2)[0]

	var text string
	switch strings.ToLower(cmd) {
	case "/start":
		text = msgWelcome
	case "/help":
		text = msgHelp
	case "/status":
		text = fmt.Sprintf(
			"✅ Bot is running\n🔗 Endpoint: %s\n🔄 Mode: polling\n📊 Last update ID: %d",
			s.endpoint,
			s.lastUpdate.Load(),
		)
	default:
		return false
	}

	if err := s.sender.SendReply(ctx, msg.ChatID, text); err != nil {
		log.Printf("[relay] command reply fail chat=%d: %v", msg.ChatID, err)
	}
	return true
}
