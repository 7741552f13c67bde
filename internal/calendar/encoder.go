package calendar

import "time"

// ICSFilename is the suggested download name for exported documents.
const ICSFilename = "valentines-date.ics"

// Export bundles the three encodings of one event.
type Export struct {
	ICS        string
	GoogleURL  string
	OutlookURL string
}

// Encoder produces exports stamped with the current time and a fresh UID.
type Encoder struct {
	now func() time.Time
}

// NewEncoder creates an encoder using the wall clock.
func NewEncoder() *Encoder {
	return &Encoder{now: time.Now}
}

// ICS renders the event as an iCalendar document with a new UID.
func (e *Encoder) ICS(ev Event) (string, error) {
	now := e.now()
	return ICS(ev, now, NewUID(now))
}

// Export renders all three encodings.
func (e *Encoder) Export(ev Event) (*Export, error) {
	doc, err := e.ICS(ev)
	if err != nil {
		return nil, err
	}
	google, err := GoogleURL(ev)
	if err != nil {
		return nil, err
	}
	outlook, err := OutlookURL(ev)
	if err != nil {
		return nil, err
	}
	return &Export{ICS: doc, GoogleURL: google, OutlookURL: outlook}, nil
}
