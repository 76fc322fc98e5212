package services

import (
	"fmt"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

// AllocateWeeks splits a job's total quantity into per-week buckets across
// its date range. The first weeks, in chronological order, absorb the
// division remainder, so earlier weeks never carry less than later ones.
// This ordering is load-bearing: the daily breakdown and the submission wire
// format both assume it.
func AllocateWeeks(r entities.DateRange, total entities.Quantity) (entities.WeeklyAllocation, error) {
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("allocate weeks: %w", entities.ErrInvalidRange)
	}
	if total < 0 {
		// Mirrors the permissive handling of partially filled quantity
		// fields upstream: no allocation, no error.
		return entities.WeeklyAllocation{}, nil
	}

	weeks := entities.Quantity(r.Weeks())
	base := total / weeks
	remainder := total - base*weeks

	alloc := make(entities.WeeklyAllocation, weeks)
	for w := range alloc {
		alloc[w] = base
		if entities.Quantity(w) < remainder {
			alloc[w]++
		}
	}
	return alloc, nil
}
