package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/calendar"
)

const (
	calendarContentType = "text/calendar; charset=utf-8"
	// Each export carries a new UID and stamp.
	cacheNoStore = "no-store"
)

func (s *Server) registerCalendarRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "downloadInviteCalendar",
		Method:      http.MethodGet,
		Path:        "/api/v1/invites/{slug}/calendar.ics",
		Summary:     "Download calendar file",
		Description: "Returns the invite's event as an iCalendar document",
		Tags:        []string{"Calendar"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "iCalendar document",
				Content: map[string]*huma.MediaType{
					"text/calendar": {},
				},
			},
		},
	}, s.handleCalendarFile)

	huma.Register(s.api, huma.Operation{
		OperationID:   "googleCalendarRedirect",
		Method:        http.MethodGet,
		Path:          "/api/v1/invites/{slug}/calendar/google",
		Summary:       "Add to Google Calendar",
		Description:   "Redirects to Google Calendar with the event prefilled",
		Tags:          []string{"Calendar"},
		DefaultStatus: http.StatusFound,
	}, s.handleGoogleRedirect)

	huma.Register(s.api, huma.Operation{
		OperationID:   "outlookCalendarRedirect",
		Method:        http.MethodGet,
		Path:          "/api/v1/invites/{slug}/calendar/outlook",
		Summary:       "Add to Outlook",
		Description:   "Redirects to Outlook with the event prefilled",
		Tags:          []string{"Calendar"},
		DefaultStatus: http.StatusFound,
	}, s.handleOutlookRedirect)
}

// CalendarFileOutput is a raw iCalendar download.
type CalendarFileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	CacheControl       string `header:"Cache-Control"`
	Body               []byte
}

// RedirectOutput sends the client to a calendar provider.
type RedirectOutput struct {
	Location string `header:"Location"`
}

func (s *Server) handleCalendarFile(ctx context.Context, input *SlugInput) (*CalendarFileOutput, error) {
	export, err := s.services.Invite.CalendarExport(ctx, input.Slug)
	if err != nil {
		return nil, s.handleError(ctx, "export calendar", err)
	}

	return &CalendarFileOutput{
		ContentType:        calendarContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", calendar.ICSFilename),
		CacheControl:       cacheNoStore,
		Body:               []byte(export.ICS),
	}, nil
}

func (s *Server) handleGoogleRedirect(ctx context.Context, input *SlugInput) (*RedirectOutput, error) {
	export, err := s.services.Invite.CalendarExport(ctx, input.Slug)
	if err != nil {
		return nil, s.handleError(ctx, "google calendar link", err)
	}
	return &RedirectOutput{Location: export.GoogleURL}, nil
}

func (s *Server) handleOutlookRedirect(ctx context.Context, input *SlugInput) (*RedirectOutput, error) {
	export, err := s.services.Invite.CalendarExport(ctx, input.Slug)
	if err != nil {
		return nil, s.handleError(ctx, "outlook calendar link", err)
	}
	return &RedirectOutput{Location: export.OutlookURL}, nil
}
