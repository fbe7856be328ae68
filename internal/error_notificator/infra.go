package error_notificator

import (
	"context"
	"fmt"
	"log"

	"github.com/mzhurovsky/model_relay/internal/ports"
)

type Infra struct {
	sender      ports.ReplySender
	adminChatID int64
}

func NewInfra(sender ports.ReplySender, adminChatID int64) *Infra {
	return &Infra{sender: sender, adminChatID: adminChatID}
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	if i.adminChatID == 0 {
		log.Printf("[error_notificator] admin chat not configured, dropping: %v", err)
		return nil
	}

	text := fmt.Sprintf(
		"❗ Relay error\n\nError: %v\n\nDetails: %s",
		err,
		details,
	)

	if sendErr := i.sender.SendReply(ctx, i.adminChatID, text); sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
