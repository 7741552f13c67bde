// Package calendar turns an invite's event fields into calendar exports:
// an iCalendar document and Google Calendar and Outlook deep links.
//
// All three encodings are derived from one Span, so the start and end
// instants always agree. Times are wall-clock values from the invite and are
// never converted between zones.
package calendar

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the accepted event date format.
	DateLayout = "2006-01-02"
	// TimeLayout is the accepted 24-hour event time format.
	TimeLayout = "15:04"

	// EventDuration is the length of a timed event.
	EventDuration = 2 * time.Hour
)

// Event is the abstract calendar event description.
// Date is required; the remaining fields are optional.
type Event struct {
	Title       string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, 24h
	Description string
	Location    string
}

// Span is the resolved extent of an event.
// For all-day events End is the day after Start (exclusive end).
type Span struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Span resolves the event's start and end.
// Input is expected to be validated already; malformed values are reported as errors.
func (e Event) Span() (Span, error) {
	day, err := time.ParseInLocation(DateLayout, e.Date, time.UTC)
	if err != nil {
		return Span{}, fmt.Errorf("parse event date %q: %w", e.Date, err)
	}

	if e.Time == "" {
		return Span{
			Start:  day,
			End:    day.AddDate(0, 0, 1),
			AllDay: true,
		}, nil
	}

	clock, err := time.ParseInLocation(TimeLayout, e.Time, time.UTC)
	if err != nil {
		return Span{}, fmt.Errorf("parse event time %q: %w", e.Time, err)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	return Span{
		Start: start,
		End:   start.Add(EventDuration),
	}, nil
}

// Compact returns start and end in the punctuation-free form used by
// iCalendar and Google: YYYYMMDDTHHMMSSZ for timed events, YYYYMMDD for all-day.
func (s Span) Compact() (start, end string) {
	if s.AllDay {
		return s.Start.Format("20060102"), s.End.Format("20060102")
	}
	return s.Start.Format("20060102T150405Z"), s.End.Format("20060102T150405Z")
}

// ISO returns start and end as ISO-8601 timestamps for Outlook.
// All-day bounds run midnight to midnight.
func (s Span) ISO() (start, end string) {
	if s.AllDay {
		return s.Start.Format("2006-01-02T00:00:00"), s.End.Format("2006-01-02T00:00:00")
	}
	return s.Start.Format("2006-01-02T15:04:05Z"), s.End.Format("2006-01-02T15:04:05Z")
}
