package notify

import (
	"context"
	"log/slog"
)

// LogTransport writes messages to the log instead of sending them.
// It is selected when no Brevo API key is configured.
type LogTransport struct {
	logger *slog.Logger
}

var _ Transport = (*LogTransport)(nil)

// NewLogTransport creates a log-only transport.
func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

// Deliver logs the message envelope. It never fails.
func (t *LogTransport) Deliver(_ context.Context, msg *Message) error {
	t.logger.Info("email delivery disabled, message logged",
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
		"text_bytes", len(msg.Text),
	)
	return nil
}
