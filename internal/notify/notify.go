// Package notify delivers invite notifications by email.
//
// A Mailer renders a notification Kind into a subject, an HTML body and a
// plain-text body, then hands the result to a Transport. Two transports
// exist: Brevo's transactional email API and a log-only transport used when
// no API key is configured.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/askyourcrush/askyourcrush-server/internal/domain"
)

// Kind selects the notification template.
type Kind string

// Notification kinds.
const (
	KindResponseYes           Kind = "response-yes"
	KindResponseMaybe         Kind = "response-maybe"
	KindResponseNo            Kind = "response-no"
	KindRecipientConfirmation Kind = "recipient-confirmation"
)

// ResponseKind returns the sender notification kind for a response.
func ResponseKind(r domain.Response) Kind {
	switch r {
	case domain.ResponseYes:
		return KindResponseYes
	case domain.ResponseMaybe:
		return KindResponseMaybe
	default:
		return KindResponseNo
	}
}

// Attachment is a file sent along with an email.
type Attachment struct {
	Name    string
	Content []byte
}

// Payload carries the invite data a template needs.
// Empty strings mean absent.
type Payload struct {
	SenderName    string
	RecipientName string
	Response      domain.Response
	ResultURL     string

	EventTitle string
	EventDate  string // YYYY-MM-DD
	EventTime  string // HH:MM

	Attachments []Attachment
}

// Dispatcher sends one notification.
// Callers treat a returned error as non-fatal.
type Dispatcher interface {
	Send(ctx context.Context, kind Kind, to string, payload Payload) error
}

// Message is a fully rendered email ready for delivery.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Transport delivers rendered messages.
type Transport interface {
	Deliver(ctx context.Context, msg *Message) error
}

// Mailer renders notifications and delivers them through a Transport.
type Mailer struct {
	renderer  *Renderer
	transport Transport
	logger    *slog.Logger
}

var _ Dispatcher = (*Mailer)(nil)

// NewMailer creates a mailer.
func NewMailer(renderer *Renderer, transport Transport, logger *slog.Logger) *Mailer {
	return &Mailer{
		renderer:  renderer,
		transport: transport,
		logger:    logger,
	}
}

// Send renders the notification and delivers it to the given address.
func (m *Mailer) Send(ctx context.Context, kind Kind, to string, payload Payload) error {
	email, err := m.renderer.Render(kind, payload)
	if err != nil {
		return fmt.Errorf("render %s: %w", kind, err)
	}

	msg := &Message{
		To:          to,
		Subject:     email.Subject,
		HTML:        email.HTML,
		Text:        email.Text,
		Attachments: payload.Attachments,
	}
	if err := m.transport.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("deliver %s: %w", kind, err)
	}

	m.logger.Debug("notification delivered",
		"kind", kind,
		"attachments", len(payload.Attachments),
	)
	return nil
}
