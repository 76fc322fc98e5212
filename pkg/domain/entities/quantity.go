package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity represents an integer quantity of production units
type Quantity int64

// ErrInvalidQuantity indicates quantity input that cannot be interpreted as a
// non-negative number of units
var ErrInvalidQuantity = errors.New("invalid quantity")

// ParseQuantity parses user-entered quantity text. Display formatting such as
// thousands separators and surrounding whitespace is stripped, and fractional
// input is truncated to whole units. Unparsable or negative input returns
// ErrInvalidQuantity, which callers typically map to an empty allocation
// rather than a hard failure.
func ParseQuantity(input string) (Quantity, error) {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidQuantity)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidQuantity, input)
	}

	return Quantity(d.IntPart()), nil
}
