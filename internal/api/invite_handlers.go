package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/domain"
	"github.com/askyourcrush/askyourcrush-server/internal/service"
)

func (s *Server) registerInviteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createInvite",
		Method:      http.MethodPost,
		Path:        "/api/v1/invites",
		Summary:     "Create invite",
		Description: "Creates a pending invite and returns its recipient and result links",
		Tags:        []string{"Invites"},
	}, s.handleCreateInvite)

	huma.Register(s.api, huma.Operation{
		OperationID: "getInvite",
		Method:      http.MethodGet,
		Path:        "/api/v1/invites/{slug}",
		Summary:     "Get invite",
		Description: "Returns the recipient's view of an invite",
		Tags:        []string{"Invites"},
	}, s.handleGetInvite)

	huma.Register(s.api, huma.Operation{
		OperationID: "respondToInvite",
		Method:      http.MethodPost,
		Path:        "/api/v1/invites/{slug}/respond",
		Summary:     "Respond to invite",
		Description: "Records the recipient's answer. An invite accepts exactly one response.",
		Tags:        []string{"Invites"},
	}, s.handleRespond)

	huma.Register(s.api, huma.Operation{
		OperationID: "getInviteResult",
		Method:      http.MethodGet,
		Path:        "/api/v1/invites/{slug}/result",
		Summary:     "Get invite result",
		Description: "Returns the sender's view of an invite",
		Tags:        []string{"Invites"},
	}, s.handleGetResult)
}

// === DTOs ===

// CreateInviteRequest is the request body for creating an invite.
type CreateInviteRequest struct {
	Message       string `json:"message,omitempty" doc:"Invite message, up to 500 characters. {{name}} is replaced with the recipient's name."`
	Theme         string `json:"theme,omitempty" doc:"Theme key; unknown values fall back to romantic"`
	SenderName    string `json:"sender_name,omitempty" doc:"Sender's display name"`
	SenderEmail   string `json:"sender_email,omitempty" doc:"Address notified when the recipient responds"`
	RecipientName string `json:"recipient_name,omitempty" doc:"Recipient's display name"`
	EventDate     string `json:"event_date,omitempty" doc:"Proposed date, YYYY-MM-DD"`
	EventTime     string `json:"event_time,omitempty" doc:"Proposed time, HH:MM 24h; ignored without a date"`
}

// CreateInviteInput wraps the create invite request for Huma.
type CreateInviteInput struct {
	Body CreateInviteRequest
}

// CreateInviteResponse contains the links for a new invite.
type CreateInviteResponse struct {
	Slug      string `json:"slug" doc:"Invite identifier"`
	InviteURL string `json:"invite_url" doc:"Link to send to the recipient"`
	ResultURL string `json:"result_url" doc:"Link for the sender to check the answer"`
}

// CreateInviteOutput wraps the create invite response for Huma.
type CreateInviteOutput struct {
	Body CreateInviteResponse
}

// SlugInput identifies an invite by slug.
type SlugInput struct {
	Slug string `path:"slug" doc:"Invite identifier"`
}

// InviteResponse is the recipient's view of an invite.
type InviteResponse struct {
	Slug          string             `json:"slug" doc:"Invite identifier"`
	Message       string             `json:"message" doc:"Message with the recipient's name filled in"`
	Theme         domain.Theme       `json:"theme" doc:"Theme key"`
	SenderName    string             `json:"sender_name,omitempty" doc:"Sender's display name"`
	RecipientName string             `json:"recipient_name,omitempty" doc:"Recipient's display name"`
	EventDate     string             `json:"event_date,omitempty" doc:"Proposed date, YYYY-MM-DD"`
	EventTime     string             `json:"event_time,omitempty" doc:"Proposed time, HH:MM"`
	EventTitle    string             `json:"event_title" doc:"Calendar event title"`
	State         domain.InviteState `json:"state" doc:"pending or responded"`
	Response      domain.Response    `json:"response,omitempty" doc:"yes, maybe or no once responded"`
	RespondedAt   *time.Time         `json:"responded_at,omitempty" doc:"When the response was recorded"`
	CreatedAt     time.Time          `json:"created_at" doc:"Creation time"`
}

// InviteOutput wraps the invite response for Huma.
type InviteOutput struct {
	Body InviteResponse
}

// RespondRequest is the request body for answering an invite.
type RespondRequest struct {
	Response       string `json:"response,omitempty" doc:"yes, maybe or no"`
	RecipientEmail string `json:"recipient_email,omitempty" doc:"Optional address for a confirmation when answering yes"`
}

// RespondInput wraps the respond request for Huma.
type RespondInput struct {
	Slug string `path:"slug" doc:"Invite identifier"`
	Body RespondRequest
}

// RespondResponse acknowledges a recorded response.
type RespondResponse struct {
	Success  bool            `json:"success" doc:"Always true when returned"`
	Response domain.Response `json:"response" doc:"The recorded response"`
}

// RespondOutput wraps the respond response for Huma.
type RespondOutput struct {
	Body RespondResponse
}

// ResultResponse is the sender's view of an invite.
type ResultResponse struct {
	Slug          string             `json:"slug" doc:"Invite identifier"`
	State         domain.InviteState `json:"state" doc:"pending or responded"`
	Title         string             `json:"title" doc:"Status headline"`
	Description   string             `json:"description" doc:"Status detail"`
	RecipientName string             `json:"recipient_name,omitempty" doc:"Recipient's display name"`
	Response      domain.Response    `json:"response,omitempty" doc:"yes, maybe or no once responded"`
	RespondedAt   *time.Time         `json:"responded_at,omitempty" doc:"When the response was recorded"`
	ShareURL      string             `json:"share_url,omitempty" doc:"Recipient link, while pending"`
	Calendar      *CalendarLinks     `json:"calendar,omitempty" doc:"Calendar exports, after a yes to a dated invite"`
}

// CalendarLinks points at the calendar exports of an accepted invite.
type CalendarLinks struct {
	Title      string `json:"title" doc:"Event title"`
	Date       string `json:"date" doc:"Event date, YYYY-MM-DD"`
	Time       string `json:"time,omitempty" doc:"Event time, HH:MM"`
	GoogleURL  string `json:"google_url" doc:"Google Calendar link"`
	OutlookURL string `json:"outlook_url" doc:"Outlook link"`
}

// ResultOutput wraps the result response for Huma.
type ResultOutput struct {
	Body ResultResponse
}

// === Handlers ===

func (s *Server) handleCreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error) {
	result, err := s.services.Invite.CreateInvite(ctx, service.CreateInviteRequest{
		Message:       input.Body.Message,
		Theme:         input.Body.Theme,
		SenderName:    input.Body.SenderName,
		SenderEmail:   input.Body.SenderEmail,
		RecipientName: input.Body.RecipientName,
		EventDate:     input.Body.EventDate,
		EventTime:     input.Body.EventTime,
	})
	if err != nil {
		return nil, s.handleError(ctx, "create invite", err)
	}

	return &CreateInviteOutput{
		Body: CreateInviteResponse{
			Slug:      result.Invite.Slug,
			InviteURL: result.InviteURL,
			ResultURL: result.ResultURL,
		},
	}, nil
}

func (s *Server) handleGetInvite(ctx context.Context, input *SlugInput) (*InviteOutput, error) {
	invite, err := s.services.Invite.GetInvite(ctx, input.Slug)
	if err != nil {
		return nil, s.handleError(ctx, "get invite", err)
	}

	return &InviteOutput{Body: toInviteResponse(invite)}, nil
}

func (s *Server) handleRespond(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	invite, err := s.services.Invite.Respond(ctx, input.Slug, service.RespondRequest{
		Response:       input.Body.Response,
		RecipientEmail: input.Body.RecipientEmail,
	})
	if err != nil {
		return nil, s.handleError(ctx, "respond to invite", err)
	}

	return &RespondOutput{
		Body: RespondResponse{
			Success:  true,
			Response: invite.Response,
		},
	}, nil
}

func (s *Server) handleGetResult(ctx context.Context, input *SlugInput) (*ResultOutput, error) {
	view, err := s.services.Invite.Result(ctx, input.Slug)
	if err != nil {
		return nil, s.handleError(ctx, "get invite result", err)
	}

	resp := ResultResponse{
		Slug:          view.Slug,
		State:         view.State,
		Title:         view.Title,
		Description:   view.Description,
		RecipientName: view.RecipientName,
		Response:      view.Response,
		RespondedAt:   view.RespondedAt,
		ShareURL:      view.ShareURL,
	}
	if view.GoogleURL != "" {
		resp.Calendar = &CalendarLinks{
			Title:      view.EventTitle,
			Date:       view.EventDate,
			Time:       view.EventTime,
			GoogleURL:  view.GoogleURL,
			OutlookURL: view.OutlookURL,
		}
	}

	return &ResultOutput{Body: resp}, nil
}

func toInviteResponse(invite *domain.Invite) InviteResponse {
	return InviteResponse{
		Slug:          invite.Slug,
		Message:       invite.FormattedMessage(),
		Theme:         invite.Theme,
		SenderName:    invite.SenderName,
		RecipientName: invite.RecipientName,
		EventDate:     invite.EventDate,
		EventTime:     invite.EventTime,
		EventTitle:    invite.Title(),
		State:         invite.State(),
		Response:      invite.Response,
		RespondedAt:   invite.RespondedAt,
		CreatedAt:     invite.CreatedAt,
	}
}
