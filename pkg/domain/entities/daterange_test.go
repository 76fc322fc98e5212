package entities

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange_Valid(t *testing.T) {
	r, err := NewDateRange(date(2024, 1, 1), date(2024, 1, 14))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	if r.Days() != 14 {
		t.Errorf("expected 14 days, got %d", r.Days())
	}
	if r.Weeks() != 2 {
		t.Errorf("expected 2 weeks, got %d", r.Weeks())
	}
}

func TestNewDateRange_EndBeforeStart(t *testing.T) {
	_, err := NewDateRange(date(2024, 1, 14), date(2024, 1, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewDateRange_NormalizesTimeOfDay(t *testing.T) {
	// Intake forms deliver timestamps; only the calendar date matters.
	start := time.Date(2024, 1, 1, 23, 45, 12, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if r.Days() != 2 {
		t.Errorf("expected 2 days, got %d", r.Days())
	}
}

func TestDateRange_Weeks(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single_day", date(2024, 3, 15), date(2024, 3, 15), 1},
		{"exactly_one_week", date(2024, 1, 1), date(2024, 1, 7), 1},
		{"one_week_and_a_day", date(2024, 1, 1), date(2024, 1, 8), 2},
		{"eighteen_days", date(2024, 1, 3), date(2024, 1, 20), 3},
		{"full_year", date(2024, 1, 1), date(2024, 12, 29), 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewDateRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("NewDateRange failed: %v", err)
			}
			if got := r.Weeks(); got != tt.expected {
				t.Errorf("expected %d weeks, got %d", tt.expected, got)
			}
		})
	}
}

func TestDateRange_WeekStart(t *testing.T) {
	r, err := NewDateRange(date(2024, 1, 3), date(2024, 1, 20))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	if got := r.WeekStart(0); !got.Equal(date(2024, 1, 3)) {
		t.Errorf("week 0: expected 2024-01-03, got %s", got.Format("2006-01-02"))
	}
	if got := r.WeekStart(2); !got.Equal(date(2024, 1, 17)) {
		t.Errorf("week 2: expected 2024-01-17, got %s", got.Format("2006-01-02"))
	}
}

func TestDateRange_Contains(t *testing.T) {
	r, err := NewDateRange(date(2024, 1, 3), date(2024, 1, 20))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	if !r.Contains(date(2024, 1, 3)) || !r.Contains(date(2024, 1, 20)) {
		t.Error("expected boundary dates to be contained")
	}
	if r.Contains(date(2024, 1, 2)) || r.Contains(date(2024, 1, 21)) {
		t.Error("expected out-of-range dates to be excluded")
	}
}
