package services

import (
	"errors"
	"fmt"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

// ErrWeekIndexOutOfRange indicates an edit addressed to a week bucket that
// does not exist in the allocation
var ErrWeekIndexOutOfRange = errors.New("week index out of range")

// Rebalance applies a manual edit to one week's bucket and spreads the
// resulting delta across the untouched weeks so the grand total is
// preserved. Adjusted weeks are floored at zero; quantity absorbed by the
// floor is not recovered, so callers should check Deviation on the result.
// The input allocation is never mutated.
func Rebalance(alloc entities.WeeklyAllocation, editedIndex int, newValue, total entities.Quantity) (entities.WeeklyAllocation, error) {
	if editedIndex < 0 || editedIndex >= len(alloc) {
		return nil, fmt.Errorf("rebalance: %w: index %d with %d weeks",
			ErrWeekIndexOutOfRange, editedIndex, len(alloc))
	}

	if newValue < 0 {
		newValue = 0
	}

	result := alloc.Clone()
	result[editedIndex] = newValue

	others := entities.Quantity(len(alloc) - 1)
	if others == 0 {
		// Single-week allocation: nowhere to absorb the difference, so the
		// total is allowed to drift.
		return result, nil
	}

	var otherSum entities.Quantity
	for i, q := range alloc {
		if i != editedIndex {
			otherSum += q
		}
	}

	// Truncated division keeps the remainder's sign aligned with the
	// difference, so the same path handles raising and lowering a week.
	difference := total - newValue - otherSum
	base := difference / others
	remainder := difference - base*others

	step := entities.Quantity(0)
	if remainder > 0 {
		step = 1
	} else if remainder < 0 {
		step = -1
	}
	steps := remainder
	if steps < 0 {
		steps = -steps
	}

	adjusted := entities.Quantity(0)
	for i := range result {
		if i == editedIndex {
			continue
		}
		result[i] += base
		if adjusted < steps {
			result[i] += step
		}
		adjusted++
		if result[i] < 0 {
			result[i] = 0
		}
	}
	return result, nil
}
