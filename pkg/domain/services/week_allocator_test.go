package services

import (
	"errors"
	"testing"
	"time"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

func mustRange(t *testing.T, start, end string) entities.DateRange {
	t.Helper()

	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatalf("bad start date %q: %v", start, err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		t.Fatalf("bad end date %q: %v", end, err)
	}

	r, err := entities.NewDateRange(s, e)
	if err != nil {
		t.Fatalf("NewDateRange(%s, %s) failed: %v", start, end, err)
	}
	return *r
}

func TestAllocateWeeks_TwoFullWeeks(t *testing.T) {
	r := mustRange(t, "2024-01-01", "2024-01-14")

	alloc, err := AllocateWeeks(r, 12000)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	expected := entities.WeeklyAllocation{6000, 6000}
	if len(alloc) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(alloc))
	}
	for w, qty := range expected {
		if alloc[w] != qty {
			t.Errorf("week %d: expected %d, got %d", w, qty, alloc[w])
		}
	}
}

func TestAllocateWeeks_PartialWeeksGetRemainderFirst(t *testing.T) {
	// 18-day span starting midweek: 3 week buckets, remainder 2 goes to the
	// first two weeks.
	r := mustRange(t, "2024-01-03", "2024-01-20")

	alloc, err := AllocateWeeks(r, 5000)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	expected := entities.WeeklyAllocation{1667, 1667, 1666}
	if len(alloc) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(alloc))
	}
	for w, qty := range expected {
		if alloc[w] != qty {
			t.Errorf("week %d: expected %d, got %d", w, qty, alloc[w])
		}
	}
}

func TestAllocateWeeks_SingleDayRange(t *testing.T) {
	r := mustRange(t, "2024-03-15", "2024-03-15")

	alloc, err := AllocateWeeks(r, 100)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	if len(alloc) != 1 {
		t.Fatalf("expected 1 week, got %d", len(alloc))
	}
	if alloc[0] != 100 {
		t.Errorf("expected 100 units in sole week, got %d", alloc[0])
	}
}

func TestAllocateWeeks_ZeroTotal(t *testing.T) {
	r := mustRange(t, "2024-01-01", "2024-01-28")

	alloc, err := AllocateWeeks(r, 0)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	if len(alloc) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(alloc))
	}
	for w, qty := range alloc {
		if qty != 0 {
			t.Errorf("week %d: expected 0, got %d", w, qty)
		}
	}
}

func TestAllocateWeeks_NegativeTotalYieldsEmptyAllocation(t *testing.T) {
	r := mustRange(t, "2024-01-01", "2024-01-14")

	alloc, err := AllocateWeeks(r, -500)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}
	if len(alloc) != 0 {
		t.Errorf("expected empty allocation, got %v", alloc)
	}
}

func TestAllocateWeeks_InvalidRange(t *testing.T) {
	r := entities.DateRange{
		Start: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := AllocateWeeks(r, 1000)
	if !errors.Is(err, entities.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestAllocateWeeks_SumPreservation(t *testing.T) {
	totals := []entities.Quantity{0, 1, 6, 7, 13, 100, 999, 12000, 123457, 10000000}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for spanWeeks := 1; spanWeeks <= 52; spanWeeks++ {
		end := start.AddDate(0, 0, spanWeeks*7-3) // partial final week
		r, err := entities.NewDateRange(start, end)
		if err != nil {
			t.Fatalf("NewDateRange failed: %v", err)
		}

		for _, total := range totals {
			alloc, err := AllocateWeeks(*r, total)
			if err != nil {
				t.Fatalf("AllocateWeeks(%d weeks, %d) failed: %v", spanWeeks, total, err)
			}

			if len(alloc) != spanWeeks {
				t.Fatalf("expected %d weeks, got %d", spanWeeks, len(alloc))
			}
			if sum := alloc.Sum(); sum != total {
				t.Errorf("%d weeks, total %d: allocation sums to %d", spanWeeks, total, sum)
			}
			for w, qty := range alloc {
				if qty < 0 {
					t.Errorf("%d weeks, total %d: week %d is negative (%d)", spanWeeks, total, w, qty)
				}
			}
		}
	}
}

func TestAllocateWeeks_EarlierWeeksNeverSmaller(t *testing.T) {
	r := mustRange(t, "2024-01-01", "2024-03-09") // 10 weeks

	alloc, err := AllocateWeeks(r, 1234567)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	for w := 1; w < len(alloc); w++ {
		if alloc[w] > alloc[w-1] {
			t.Errorf("week %d (%d) exceeds week %d (%d)", w, alloc[w], w-1, alloc[w-1])
		}
	}
}

func TestAllocateWeeks_Deterministic(t *testing.T) {
	r := mustRange(t, "2024-01-03", "2024-02-20")

	first, err := AllocateWeeks(r, 98765)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}
	second, err := AllocateWeeks(r, 98765)
	if err != nil {
		t.Fatalf("AllocateWeeks failed: %v", err)
	}

	for w := range first {
		if first[w] != second[w] {
			t.Errorf("week %d: %d != %d on repeat call", w, first[w], second[w])
		}
	}
}
