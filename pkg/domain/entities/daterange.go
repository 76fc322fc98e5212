package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange indicates a date range whose due date precedes its start date
var ErrInvalidRange = errors.New("due date cannot be before start date")

// DateRange represents an inclusive calendar date range for a production run
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a validated DateRange. Both dates are normalized to
// midnight UTC so arithmetic operates on whole calendar days.
func NewDateRange(start, end time.Time) (*DateRange, error) {
	s := toDate(start)
	e := toDate(end)
	if e.Before(s) {
		return nil, fmt.Errorf("%w: start %s, due %s",
			ErrInvalidRange, s.Format("2006-01-02"), e.Format("2006-01-02"))
	}
	return &DateRange{Start: s, End: e}, nil
}

// toDate strips the time-of-day and timezone from a timestamp
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the inclusive day span of the range
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Weeks returns the number of week buckets spanned by the range, minimum 1.
// Week buckets are anchored to the start date, not to calendar Mondays.
func (r DateRange) Weeks() int {
	weeks := (r.Days() + 6) / 7
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// WeekStart returns the first date of week bucket w
func (r DateRange) WeekStart(w int) time.Time {
	return r.Start.AddDate(0, 0, 7*w)
}

// Contains reports whether the date d falls within the range
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
