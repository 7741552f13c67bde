package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	prodID    = "-//Ask Your Crush//Valentine Invite//EN"
	uidDomain = "askyourcrush"
)

// Bare carriage returns become line breaks too; the library only escapes \n.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NewUID returns an event identifier that is distinct per generated document.
func NewUID(now time.Time) string {
	return fmt.Sprintf("%d-%s@%s", now.UnixMilli(), uuid.NewString(), uidDomain)
}

// ICS renders the event as an iCalendar document.
// stamp becomes DTSTAMP and uid identifies the event; callers normally pass
// time.Now() and NewUID.
func ICS(ev Event, stamp time.Time, uid string) (string, error) {
	span, err := ev.Span()
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(uid)
	event.SetDtStampTime(stamp)
	if span.AllDay {
		event.SetAllDayStartAt(span.Start)
		event.SetAllDayEndAt(span.End)
	} else {
		event.SetStartAt(span.Start)
		event.SetEndAt(span.End)
	}

	event.SetSummary(lineBreaks.Replace(ev.Title))
	if ev.Description != "" {
		event.SetDescription(lineBreaks.Replace(ev.Description))
	}
	if ev.Location != "" {
		event.SetLocation(lineBreaks.Replace(ev.Location))
	}

	return cal.Serialize(), nil
}
