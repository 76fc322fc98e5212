package services

import (
	"fmt"
	"time"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

// mondayIndex maps a weekday to its Monday-first slot (Monday=0 .. Sunday=6)
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// DailyBreakdown derives the per-day split for each week bucket of an
// allocation. Each row is Monday-first; slots whose date falls outside the
// job's range stay zero and take no part in the distribution. As with the
// weekly split, the earliest active days absorb the division remainder.
func DailyBreakdown(alloc entities.WeeklyAllocation, r entities.DateRange) (entities.DailyAllocation, error) {
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("daily breakdown: %w", entities.ErrInvalidRange)
	}

	days := make(entities.DailyAllocation, len(alloc))
	last := len(alloc) - 1

	for w, weekTotal := range alloc {
		weekStart := r.WeekStart(w)
		weekEnd := weekStart.AddDate(0, 0, 6)

		activeEnd := weekEnd
		if w == last && r.End.Before(weekEnd) {
			activeEnd = r.End
		}

		// The seven consecutive dates of the bucket each land in the slot
		// of their actual weekday; offset order is chronological order.
		var slots []int
		for offset := 0; offset < 7; offset++ {
			date := weekStart.AddDate(0, 0, offset)
			if date.After(activeEnd) {
				break
			}
			slots = append(slots, mondayIndex(date.Weekday()))
		}

		if len(slots) == 0 {
			// Degenerate week with no active days: leave the row zeroed and
			// let the caller's deviation query surface the undistributed
			// quantity.
			continue
		}

		active := entities.Quantity(len(slots))
		base := weekTotal / active
		remainder := weekTotal - base*active

		for i, slot := range slots {
			q := base
			if entities.Quantity(i) < remainder {
				q++
			}
			days[w][slot] = q
		}
	}
	return days, nil
}
