package ports

// InboundMessage is one text message pulled from the chat platform.
type InboundMessage struct {
	UpdateID int   // monotonic, feeds the poll cursor
	ChatID   int64 // conversation to reply into
	FromName string
	Text     string
}
