package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/askyourcrush/askyourcrush-server/internal/calendar"
)

// Field bounds, counted in characters.
const (
	maxNameLength  = 50
	maxEmailLength = 100
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Optional fields are sanitized, never rejected: anything malformed becomes absent ("").

func sanitizeName(s string) string {
	return truncateRunes(strings.TrimSpace(s), maxNameLength)
}

func sanitizeEmail(s string) string {
	s = truncateRunes(strings.TrimSpace(s), maxEmailLength)
	if !strings.Contains(s, "@") {
		return ""
	}
	return s
}

// sanitizeDate keeps YYYY-MM-DD values that name a real calendar day.
func sanitizeDate(s string) string {
	if !datePattern.MatchString(s) {
		return ""
	}
	if _, err := time.Parse(calendar.DateLayout, s); err != nil {
		return ""
	}
	return s
}

// sanitizeTime keeps HH:MM values on a 24-hour clock.
func sanitizeTime(s string) string {
	if !timePattern.MatchString(s) {
		return ""
	}
	if _, err := time.Parse(calendar.TimeLayout, s); err != nil {
		return ""
	}
	return s
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
