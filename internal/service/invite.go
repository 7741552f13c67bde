package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/askyourcrush/askyourcrush-server/internal/calendar"
	"github.com/askyourcrush/askyourcrush-server/internal/domain"
	domainerrors "github.com/askyourcrush/askyourcrush-server/internal/errors"
	"github.com/askyourcrush/askyourcrush-server/internal/id"
	"github.com/askyourcrush/askyourcrush-server/internal/notify"
	"github.com/askyourcrush/askyourcrush-server/internal/store"
	"github.com/askyourcrush/askyourcrush-server/internal/validation"
)

const (
	// maxSlugAttempts bounds slug regeneration after unique-constraint collisions.
	maxSlugAttempts = 5
	// defaultNotifyTimeout bounds each best-effort notification after a response is stored.
	defaultNotifyTimeout = 15 * time.Second

	tracerName = "github.com/askyourcrush/askyourcrush-server/internal/service"
)

// validate is a shared validator instance for request validation.
var validate = validation.New()

var errInviteNotFound = domainerrors.NotFound("invite not found")

// SlugSource produces candidate slugs for new invites.
type SlugSource interface {
	Generate() (string, error)
}

// LinkBuilder builds the public links handed out for an invite.
type LinkBuilder interface {
	InviteURL(slug string) string
	ResultURL(slug string) string
}

// InviteService owns the invite lifecycle: creation, the single response
// transition, and the views and calendar exports derived from a record.
type InviteService struct {
	store         store.InviteStore
	dispatcher    notify.Dispatcher
	slugs         SlugSource
	links         LinkBuilder
	encoder       *calendar.Encoder
	logger        *slog.Logger
	tracer        trace.Tracer
	now           func() time.Time
	notifyTimeout time.Duration
}

// NewInviteService creates a new invite service.
func NewInviteService(
	store store.InviteStore,
	dispatcher notify.Dispatcher,
	slugs SlugSource,
	links LinkBuilder,
	logger *slog.Logger,
) *InviteService {
	return &InviteService{
		store:         store,
		dispatcher:    dispatcher,
		slugs:         slugs,
		links:         links,
		encoder:       calendar.NewEncoder(),
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
		now:           time.Now,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// CreateInviteRequest contains the data needed to create an invite.
// Only Message is validated strictly; the optional fields are sanitized.
// The length limit applies to the message as submitted, before trimming.
type CreateInviteRequest struct {
	Message       string `json:"message" validate:"notblank,max=500"`
	Theme         string `json:"theme,omitempty"`
	SenderName    string `json:"sender_name,omitempty"`
	SenderEmail   string `json:"sender_email,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	EventDate     string `json:"event_date,omitempty"`
	EventTime     string `json:"event_time,omitempty"`
}

// CreateInviteResult is returned after creating an invite.
type CreateInviteResult struct {
	Invite    *domain.Invite
	InviteURL string
	ResultURL string
}

// RespondRequest contains the recipient's answer.
type RespondRequest struct {
	Response       string `json:"response" validate:"required,response"`
	RecipientEmail string `json:"recipient_email,omitempty"`
}

// CreateInvite validates the request, sanitizes optional fields and stores a
// new pending invite under a fresh slug.
func (s *InviteService) CreateInvite(ctx context.Context, req CreateInviteRequest) (result *CreateInviteResult, err error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.CreateInvite")
	defer func() { endSpan(span, err) }()

	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	req.Message = strings.TrimSpace(req.Message)

	recipient := sanitizeName(req.RecipientName)
	invite := &domain.Invite{
		Message:       req.Message,
		Theme:         domain.NormalizeTheme(req.Theme),
		SenderName:    sanitizeName(req.SenderName),
		SenderEmail:   sanitizeEmail(req.SenderEmail),
		RecipientName: recipient,
		EventDate:     sanitizeDate(req.EventDate),
		EventTitle:    domain.EventTitleFor(recipient),
		CreatedAt:     s.now().UTC(),
	}
	// A time without a date is meaningless.
	if invite.EventDate != "" {
		invite.EventTime = sanitizeTime(req.EventTime)
	}

	for attempt := 1; ; attempt++ {
		slug, err := s.slugs.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate slug: %w", err)
		}
		invite.Slug = slug

		err = s.store.CreateInvite(ctx, invite)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return nil, fmt.Errorf("create invite: %w", err)
		}
		if attempt == maxSlugAttempts {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "could not allocate a unique invite link")
		}
		s.logger.Warn("slug collision, regenerating",
			"slug", slug,
			"attempt", attempt,
		)
	}

	span.SetAttributes(attribute.String("invite.slug", invite.Slug))
	s.logger.Info("invite created",
		"slug", invite.Slug,
		"theme", invite.Theme,
		"has_event", invite.HasEvent(),
		"notifies_sender", invite.NotifiesSender(),
	)

	return &CreateInviteResult{
		Invite:    invite,
		InviteURL: s.links.InviteURL(invite.Slug),
		ResultURL: s.links.ResultURL(invite.Slug),
	}, nil
}

// GetInvite returns the invite with the given slug.
func (s *InviteService) GetInvite(ctx context.Context, slug string) (invite *domain.Invite, err error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.GetInvite",
		trace.WithAttributes(attribute.String("invite.slug", slug)))
	defer func() { endSpan(span, err) }()

	return s.getInvite(ctx, slug)
}

func (s *InviteService) getInvite(ctx context.Context, slug string) (*domain.Invite, error) {
	if !id.IsValidSlug(slug) {
		return nil, errInviteNotFound
	}
	invite, err := s.store.GetInvite(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errInviteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invite: %w", err)
	}
	return invite, nil
}

// Respond records the recipient's answer. The transition from pending to
// responded happens once; every later attempt gets an already-responded
// error and the stored answer is unchanged.
//
// Notifications are sent after the answer is stored. Their failure is
// logged and never changes the result.
func (s *InviteService) Respond(ctx context.Context, slug string, req RespondRequest) (invite *domain.Invite, err error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.Respond",
		trace.WithAttributes(attribute.String("invite.slug", slug)))
	defer func() { endSpan(span, err) }()

	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	response, _ := domain.ParseResponse(req.Response)
	span.SetAttributes(attribute.String("invite.response", string(response)))

	if !id.IsValidSlug(slug) {
		return nil, errInviteNotFound
	}

	invite, err = s.store.RecordResponse(ctx, slug, response, s.now().UTC())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, errInviteNotFound
	case errors.Is(err, store.ErrAlreadyResponded):
		return nil, domainerrors.AlreadyResponded("this invite has already been responded to")
	case err != nil:
		return nil, fmt.Errorf("record response: %w", err)
	}

	s.logger.Info("invite responded",
		"slug", slug,
		"response", response,
	)

	// The caller may hang up as soon as we return; notifications outlive the request.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	s.notifySender(notifyCtx, invite)
	if response == domain.ResponseYes {
		if to := sanitizeEmail(req.RecipientEmail); to != "" {
			s.confirmRecipient(notifyCtx, invite, to)
		}
	}

	return invite, nil
}

// notifySender tells the sender about the answer, if they left an address.
func (s *InviteService) notifySender(ctx context.Context, invite *domain.Invite) {
	if !invite.NotifiesSender() {
		return
	}

	kind := notify.ResponseKind(invite.Response)
	payload := notify.Payload{
		SenderName:    invite.SenderName,
		RecipientName: invite.RecipientName,
		Response:      invite.Response,
		ResultURL:     s.links.ResultURL(invite.Slug),
	}
	if invite.HasEvent() {
		payload.EventTitle = invite.Title()
		payload.EventDate = invite.EventDate
		payload.EventTime = invite.EventTime
	}

	s.send(ctx, invite.Slug, kind, invite.SenderEmail, payload)
}

// confirmRecipient sends the recipient a copy of the plan, with the
// calendar file attached when there is a date.
func (s *InviteService) confirmRecipient(ctx context.Context, invite *domain.Invite, to string) {
	payload := notify.Payload{
		SenderName:    invite.SenderName,
		RecipientName: invite.RecipientName,
		Response:      invite.Response,
		EventTitle:    invite.Title(),
		EventDate:     invite.EventDate,
		EventTime:     invite.EventTime,
	}
	if invite.HasEvent() {
		doc, err := s.encoder.ICS(eventFor(invite))
		if err != nil {
			s.logger.Warn("calendar attachment skipped",
				"slug", invite.Slug,
				"error", err,
			)
		} else {
			payload.Attachments = []notify.Attachment{{
				Name:    calendar.ICSFilename,
				Content: []byte(doc),
			}}
		}
	}

	s.send(ctx, invite.Slug, notify.KindRecipientConfirmation, to, payload)
}

func (s *InviteService) send(ctx context.Context, slug string, kind notify.Kind, to string, payload notify.Payload) {
	ctx, span := s.tracer.Start(ctx, "InviteService.notify",
		trace.WithAttributes(
			attribute.String("invite.slug", slug),
			attribute.String("notify.kind", string(kind)),
		))
	defer span.End()

	if err := s.dispatcher.Send(ctx, kind, to, payload); err != nil {
		span.RecordError(err)
		s.logger.Warn("notification failed",
			"slug", slug,
			"kind", kind,
			"error", err,
		)
		return
	}
	s.logger.Info("notification sent",
		"slug", slug,
		"kind", kind,
	)
}

// eventFor derives the calendar event from an invite's stored fields.
func eventFor(invite *domain.Invite) calendar.Event {
	return calendar.Event{
		Title:       invite.Title(),
		Date:        invite.EventDate,
		Time:        invite.EventTime,
		Description: invite.EventDescription(),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
