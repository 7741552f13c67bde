package notify

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/askyourcrush/askyourcrush-server/internal/calendar"
)

//go:embed templates/email.html
var emailTemplate string

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Email is the rendered content of one notification.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// panel is a boxed label/value block in the email body.
type panel struct {
	Label  string
	Value  string
	Detail string
}

// view is the data handed to the HTML template. All strings are escaped
// by html/template.
type view struct {
	Subject     string
	Subheading  string
	Heading     string
	Body        string
	Panels      []panel
	Note        string
	ActionURL   string
	ActionLabel string
	Footer      string
}

// Renderer turns a notification kind and payload into email content.
type Renderer struct {
	loc  Localizer
	tmpl *template.Template
}

// NewRenderer creates a renderer using the English catalog.
func NewRenderer() (*Renderer, error) {
	return NewRendererWithLocalizer(message.NewPrinter(language.English))
}

// NewRendererWithLocalizer creates a renderer backed by the given localizer.
func NewRendererWithLocalizer(loc Localizer) (*Renderer, error) {
	tmpl, err := template.New("email").Parse(emailTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse email template: %w", err)
	}
	return &Renderer{loc: loc, tmpl: tmpl}, nil
}

// Render produces the subject, HTML body and plain-text body for a notification.
func (r *Renderer) Render(kind Kind, p Payload) (*Email, error) {
	var v view
	switch kind {
	case KindResponseYes, KindResponseMaybe, KindResponseNo:
		v = r.responseView(kind, p)
	case KindRecipientConfirmation:
		v = r.confirmationView(p)
	default:
		return nil, fmt.Errorf("unknown notification kind %q", kind)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	html := buf.String()

	text, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return nil, fmt.Errorf("convert to text: %w", err)
	}

	return &Email{
		Subject: v.Subject,
		HTML:    html,
		Text:    strings.TrimSpace(text),
	}, nil
}

func (r *Renderer) responseView(kind Kind, p Payload) view {
	prefix := "email." + strings.ReplaceAll(string(kind), "-", "_") + "."
	name := fallback(p.RecipientName, defaultRecipientName)

	v := view{
		Subject:    r.loc.Sprintf(prefix + "subject"),
		Subheading: r.loc.Sprintf(prefix + "subheading"),
		Heading:    r.loc.Sprintf(prefix+"heading", name),
		Body:       r.loc.Sprintf(prefix + "body"),
		Panels: []panel{{
			Label: r.loc.Sprintf("email.response.label"),
			Value: r.loc.Sprintf(prefix + "value"),
		}},
		ActionURL:   p.ResultURL,
		ActionLabel: r.loc.Sprintf("email.response.cta"),
		Footer:      r.footer(p.SenderName),
	}
	if ev, ok := r.eventPanel(p); ok {
		v.Panels = append(v.Panels, ev)
	}
	return v
}

func (r *Renderer) confirmationView(p Payload) view {
	v := view{
		Subject:    r.loc.Sprintf("email.confirmation.subject"),
		Subheading: r.loc.Sprintf("email.confirmation.subheading"),
		Heading:    r.loc.Sprintf("email.confirmation.heading"),
		Body:       r.loc.Sprintf("email.confirmation.body", fallback(p.SenderName, defaultSenderName)),
		Footer:     r.footer(p.SenderName),
	}
	if ev, ok := r.eventPanel(p); ok {
		v.Panels = append(v.Panels, ev)
	}
	if len(p.Attachments) > 0 {
		v.Note = r.loc.Sprintf("email.confirmation.attachment_note")
	}
	return v
}

// eventPanel describes the planned date. Without an event date there is nothing to show.
func (r *Renderer) eventPanel(p Payload) (panel, bool) {
	if p.EventDate == "" {
		return panel{}, false
	}

	when := p.EventDate
	if day, err := time.Parse(calendar.DateLayout, p.EventDate); err == nil {
		when = day.Format("Monday, January 2, 2006")
	}
	if p.EventTime != "" {
		clock := p.EventTime
		if t, err := time.Parse(calendar.TimeLayout, p.EventTime); err == nil {
			clock = t.Format("3:04 PM")
		}
		when = r.loc.Sprintf("email.event.when_timed", when, clock)
	}

	return panel{
		Label:  r.loc.Sprintf("email.event.label"),
		Value:  p.EventTitle,
		Detail: when,
	}, true
}

func (r *Renderer) footer(senderName string) string {
	if senderName == "" {
		return r.loc.Sprintf("email.footer")
	}
	return r.loc.Sprintf("email.footer_with_sender", senderName)
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
