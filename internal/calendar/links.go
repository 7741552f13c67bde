package calendar

import "net/url"

const (
	googleBaseURL  = "https://calendar.google.com/calendar/render"
	outlookBaseURL = "https://outlook.live.com/calendar/0/deeplink/compose"
)

// GoogleURL returns a Google Calendar create-from-template link for the event.
func GoogleURL(ev Event) (string, error) {
	span, err := ev.Span()
	if err != nil {
		return "", err
	}
	start, end := span.Compact()

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", ev.Title)
	params.Set("dates", start+"/"+end)
	if ev.Description != "" {
		params.Set("details", ev.Description)
	}
	if ev.Location != "" {
		params.Set("location", ev.Location)
	}

	return googleBaseURL + "?" + params.Encode(), nil
}

// OutlookURL returns an Outlook Web compose-event link for the event.
func OutlookURL(ev Event) (string, error) {
	span, err := ev.Span()
	if err != nil {
		return "", err
	}
	start, end := span.ISO()

	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("subject", ev.Title)
	params.Set("startdt", start)
	params.Set("enddt", end)
	if ev.Description != "" {
		params.Set("body", ev.Description)
	}
	if ev.Location != "" {
		params.Set("location", ev.Location)
	}

	return outlookBaseURL + "?" + params.Encode(), nil
}
