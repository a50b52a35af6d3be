package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate when no supported layout matches.
var ErrInvalidDate = errors.New("invalid calendar date")

// DisplayDateLayout renders dates as e.g. "Tue Jan 10 2023".
const DisplayDateLayout = "Mon Jan 02 2006"

// ISODateLayout is the wire format accepted for from/to filters.
const ISODateLayout = "2006-01-02"

var acceptedDateLayouts = []string{
	ISODateLayout,
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/1/2",
	DisplayDateLayout,
	"Jan 2 2006",
	"January 2, 2006",
	"2 January 2006",
}

// CalendarDay drops the time of day, keeping t's own year/month/day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses s as a calendar date. Accepted inputs include ISO
// dates (zero padding optional), RFC 3339 timestamps and the display
// format produced by FormatDate, so formatted output parses back to the
// same day. A display-format weekday must agree with the date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// time.Parse reads a weekday but never checks it against the date
		if strings.HasPrefix(layout, "Mon ") && !strings.EqualFold(s[:3], t.Format("Mon")) {
			continue
		}
		return CalendarDay(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders a stored date for clients.
func FormatDate(t time.Time) string {
	return CalendarDay(t).Format(DisplayDateLayout)
}
