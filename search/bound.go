package search

import (
	"fmt"
	"strings"

	"github.com/amp-labs/seqkit/errors"
)

// Bound picks which of several equally ranked positions a search returns.
type Bound int

const (
	// Lower selects the leftmost position: for binary search, the first
	// element that does not order before the value; for ternary search, the
	// first extremum.
	Lower Bound = iota

	// Upper selects the rightmost position: for binary search, the first
	// element that orders after the value; for ternary search, the last
	// extremum.
	Upper
)

func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound parses "lower" or "upper" (case-insensitive).
func ParseBound(name string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	default:
		return Lower, fmt.Errorf("%w: %q", errors.ErrInvalidBound, name)
	}
}
