// Package domain defines the invite record, its response lifecycle, and presentation themes.
package domain

import "time"

// Response is the recipient's terminal answer to an invite.
type Response string

// Valid invite responses.
const (
	ResponseYes   Response = "yes"
	ResponseMaybe Response = "maybe"
	ResponseNo    Response = "no"
)

// Responses lists every valid response in display order.
var Responses = []Response{ResponseYes, ResponseMaybe, ResponseNo}

// ParseResponse converts raw input into a Response.
// The match is exact: "Yes" or " yes" are rejected.
func ParseResponse(raw string) (Response, bool) {
	for _, r := range Responses {
		if string(r) == raw {
			return r, true
		}
	}
	return "", false
}

// InviteState is the lifecycle position of an invite.
type InviteState string

// Invite lifecycle states. Pending is initial, Responded is terminal.
const (
	InviteStatePending   InviteState = "pending"
	InviteStateResponded InviteState = "responded"
)

// DefaultEventTitle is used for calendar exports when no recipient name is known.
const DefaultEventTitle = "Valentine's Date"

// EventTitleFor derives the calendar title from the recipient's name.
func EventTitleFor(recipientName string) string {
	if recipientName == "" {
		return DefaultEventTitle
	}
	return "Valentine's Date with " + recipientName
}

// Invite is one message plus metadata and response state, keyed by its slug.
// Optional string fields use "" for absent.
type Invite struct {
	Slug          string     `json:"slug"`
	Message       string     `json:"message"`
	Theme         Theme      `json:"theme"`
	SenderName    string     `json:"sender_name,omitempty"`
	SenderEmail   string     `json:"-"`
	RecipientName string     `json:"recipient_name,omitempty"`
	EventDate     string     `json:"event_date,omitempty"` // YYYY-MM-DD, no time zone
	EventTime     string     `json:"event_time,omitempty"` // HH:MM 24h, only set alongside EventDate
	EventTitle    string     `json:"event_title"`
	Response      Response   `json:"response,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HasResponded returns true once the recipient's answer is recorded.
func (i *Invite) HasResponded() bool {
	return i.Response != ""
}

// State returns the lifecycle state derived from the response.
func (i *Invite) State() InviteState {
	if i.HasResponded() {
		return InviteStateResponded
	}
	return InviteStatePending
}

// HasEvent returns true if a calendar event can be derived from the invite.
func (i *Invite) HasEvent() bool {
	return i.EventDate != ""
}

// NotifiesSender returns true if the sender left an address for response notifications.
func (i *Invite) NotifiesSender() bool {
	return i.SenderEmail != ""
}

// FormattedMessage returns the message with the recipient's name substituted.
func (i *Invite) FormattedMessage() string {
	return FormatMessage(i.Message, i.RecipientName)
}

// Title returns the stored event title, falling back to the default.
func (i *Invite) Title() string {
	if i.EventTitle == "" {
		return DefaultEventTitle
	}
	return i.EventTitle
}

// EventDescription is the calendar description shown in exported events.
func (i *Invite) EventDescription() string {
	desc := "Valentine's date"
	if i.RecipientName != "" {
		desc += " with " + i.RecipientName
	}
	if i.SenderName != "" {
		desc += " - invited by " + i.SenderName
	}
	return desc
}
