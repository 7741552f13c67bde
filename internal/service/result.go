package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/askyourcrush/askyourcrush-server/internal/calendar"
	"github.com/askyourcrush/askyourcrush-server/internal/domain"
	domainerrors "github.com/askyourcrush/askyourcrush-server/internal/errors"
)

// ResultView is what the sender sees when checking on an invite.
type ResultView struct {
	Slug          string
	State         domain.InviteState
	RecipientName string
	Response      domain.Response
	RespondedAt   *time.Time
	Title         string
	Description   string

	// ShareURL is set while the invite is still pending.
	ShareURL string

	// Calendar links are set once the recipient said yes to a dated invite.
	EventDate  string
	EventTime  string
	EventTitle string
	GoogleURL  string
	OutlookURL string
}

type statusText struct {
	title       string
	description string
}

var (
	pendingStatus = statusText{"Waiting for a response", "Send them the link and check back here for their answer."}

	responseStatus = map[domain.Response]statusText{
		domain.ResponseYes:   {"They said yes", "Time to make some plans."},
		domain.ResponseMaybe: {"They said maybe", "Give them a moment. Could go either way."},
		domain.ResponseNo:    {"They said no", "At least you know. Respect for putting yourself out there."},
	}
)

// Result builds the sender's view of an invite.
func (s *InviteService) Result(ctx context.Context, slug string) (view *ResultView, err error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.Result",
		trace.WithAttributes(attribute.String("invite.slug", slug)))
	defer func() { endSpan(span, err) }()

	invite, err := s.getInvite(ctx, slug)
	if err != nil {
		return nil, err
	}

	state := invite.State()
	status := pendingStatus
	if state == domain.InviteStateResponded {
		status = responseStatus[invite.Response]
	}
	view = &ResultView{
		Slug:          invite.Slug,
		State:         state,
		RecipientName: invite.RecipientName,
		Response:      invite.Response,
		RespondedAt:   invite.RespondedAt,
		Title:         status.title,
		Description:   status.description,
	}

	if state == domain.InviteStatePending {
		view.ShareURL = s.links.InviteURL(invite.Slug)
		return view, nil
	}

	if invite.Response == domain.ResponseYes && invite.HasEvent() {
		ev := eventFor(invite)
		google, err := calendar.GoogleURL(ev)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "invalid stored event")
		}
		outlook, err := calendar.OutlookURL(ev)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "invalid stored event")
		}
		view.EventDate = invite.EventDate
		view.EventTime = invite.EventTime
		view.EventTitle = ev.Title
		view.GoogleURL = google
		view.OutlookURL = outlook
	}

	return view, nil
}

// CalendarExport renders every calendar encoding of an invite's event.
// Invites without a date have nothing to export.
func (s *InviteService) CalendarExport(ctx context.Context, slug string) (export *calendar.Export, err error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.CalendarExport",
		trace.WithAttributes(attribute.String("invite.slug", slug)))
	defer func() { endSpan(span, err) }()

	invite, err := s.getInvite(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !invite.HasEvent() {
		return nil, domainerrors.NotFound("this invite has no date to export")
	}

	export, err = s.encoder.Export(eventFor(invite))
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "invalid stored event")
	}
	return export, nil
}
