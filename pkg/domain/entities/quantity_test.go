package entities

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Quantity
	}{
		{"plain", "12000", 12000},
		{"zero", "0", 0},
		{"thousands_separators", "12,000", 12000},
		{"separators_and_spaces", " 1 234 567 ", 1234567},
		{"fractional_truncated", "100.75", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseQuantity(%q): expected %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestParseQuantity_Invalid(t *testing.T) {
	inputs := []string{"", "   ", "abc", "12abc", "-500", "-0.5", "NaN"}

	for _, input := range inputs {
		_, err := ParseQuantity(input)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("ParseQuantity(%q): expected ErrInvalidQuantity, got %v", input, err)
		}
	}
}
