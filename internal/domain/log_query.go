package domain

import (
	"bytes"
	"errors"
	"sort"
	"time"
)

// BeginningOfTime is the lower bound used when a log query has no "from".
// Exercises dated earlier are refused so an unfiltered log never hides one.
var BeginningOfTime = time.Date(1800, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrDateOutOfRange is returned by CheckExerciseDate for days before
// BeginningOfTime.
var ErrDateOutOfRange = errors.New("date is before the earliest supported day")

// CheckExerciseDate reports whether d may be stored as an exercise date.
func CheckExerciseDate(d time.Time) error {
	if CalendarDay(d).Before(BeginningOfTime) {
		return ErrDateOutOfRange
	}
	return nil
}

// LogFilter carries the optional parameters of a log query as received.
// A nil bound means "not supplied"; Limit <= 0 means "not supplied".
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// LogWindow is a LogFilter with every default applied. From and To are
// inclusive calendar days; Limit == 0 means unbounded.
type LogWindow struct {
	From  time.Time
	To    time.Time
	Limit int
}

// Resolve applies the defaulting policy: From falls back to
// BeginningOfTime, To to the calendar day of now, and a missing limit
// to defaultLimit (0 keeps the log unbounded).
func (f LogFilter) Resolve(now time.Time, defaultLimit int) LogWindow {
	w := LogWindow{
		From:  BeginningOfTime,
		To:    CalendarDay(now),
		Limit: f.Limit,
	}
	if f.From != nil {
		w.From = CalendarDay(*f.From)
	}
	if f.To != nil {
		w.To = CalendarDay(*f.To)
	}
	if w.Limit <= 0 {
		w.Limit = defaultLimit
	}
	if w.Limit < 0 {
		w.Limit = 0
	}
	return w
}

// Contains reports whether the calendar day of d lies within [From, To].
func (w LogWindow) Contains(d time.Time) bool {
	day := CalendarDay(d)
	return !day.Before(w.From) && !day.After(w.To)
}

// SortMostRecentFirst orders records by date descending; records on the
// same day are ordered newest-created first.
func SortMostRecentFirst(records []Exercise) {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := CalendarDay(records[i].Date), CalendarDay(records[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return bytes.Compare(records[i].ID[:], records[j].ID[:]) > 0
	})
}

// SelectLog returns the records belonging to username that fall inside w,
// most recent first, truncated to w.Limit when it is positive. The input
// slice is not modified.
func SelectLog(records []Exercise, username string, w LogWindow) []Exercise {
	selected := make([]Exercise, 0, len(records))
	for _, rec := range records {
		if rec.Username == username && w.Contains(rec.Date) {
			selected = append(selected, rec)
		}
	}
	SortMostRecentFirst(selected)
	if w.Limit > 0 && len(selected) > w.Limit {
		selected = selected[:w.Limit]
	}
	return selected
}
