package entities

// WeeklyAllocation is an ordered list of quantities, one per calendar week
// covering a job's date range
type WeeklyAllocation []Quantity

// Sum returns the total quantity across all week buckets
func (a WeeklyAllocation) Sum() Quantity {
	var sum Quantity
	for _, q := range a {
		sum += q
	}
	return sum
}

// Deviation returns sum minus the intended total. A non-zero value only
// arises after a zero-floor clamp during rebalancing or a single-week manual
// edit; it is surfaced to the caller as a warning, never auto-corrected.
func (a WeeklyAllocation) Deviation(total Quantity) Quantity {
	return a.Sum() - total
}

// Clone returns an independent copy of the allocation
func (a WeeklyAllocation) Clone() WeeklyAllocation {
	if a == nil {
		return nil
	}
	clone := make(WeeklyAllocation, len(a))
	copy(clone, a)
	return clone
}

// WeekDays is one week's daily split, Monday-first
type WeekDays [7]Quantity

// Sum returns the total quantity across the week's seven day slots
func (d WeekDays) Sum() Quantity {
	var sum Quantity
	for _, q := range d {
		sum += q
	}
	return sum
}

// DailyAllocation holds one Monday-first WeekDays row per week bucket
type DailyAllocation []WeekDays

// Sum returns the total quantity across all weeks and days
func (a DailyAllocation) Sum() Quantity {
	var sum Quantity
	for _, week := range a {
		sum += week.Sum()
	}
	return sum
}
