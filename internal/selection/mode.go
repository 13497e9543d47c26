package selection

import (
	"fmt"
	"strings"
)

// Mode is the policy governing how many items may be selected at once
type Mode int

const (
	// Single allows at most one selected item
	Single Mode = iota
	// Multiple allows any subset of items to be selected
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "single" or "multiple", ignoring case and surrounding space
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "multiple":
		return Multiple, nil
	default:
		return Single, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Other returns the opposite mode
func (m Mode) Other() Mode {
	if m == Single {
		return Multiple
	}
	return Single
}
