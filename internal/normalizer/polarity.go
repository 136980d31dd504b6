package normalizer

import (
	"fmt"
	"strings"
)

// Polarity describes how a source encodes the direction of money movement.
// It is fixed per source so the projection engine never needs to know where a
// transaction came from.
type Polarity int

const (
	// PolarityFlag reads direction from an explicit isCredit flag and treats the
	// amount as a magnitude. Records without a flag fall back to PolaritySigned.
	PolarityFlag Polarity = iota
	// PolaritySigned treats a positive amount as money added to the balance.
	PolaritySigned
	// PolarityExpensePositive treats a positive amount as money leaving the
	// balance, as aggregator feeds do.
	PolarityExpensePositive
)

var polarityNames = map[Polarity]string{
	PolarityFlag:            "flag",
	PolaritySigned:          "signed",
	PolarityExpensePositive: "expense-positive",
}

func (p Polarity) String() string {
	if name, ok := polarityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

// ParsePolarity maps a configuration value to a Polarity. Empty means flag.
func ParsePolarity(s string) (Polarity, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return PolarityFlag, nil
	}
	for p, name := range polarityNames {
		if name == normalized {
			return p, nil
		}
	}
	return PolarityFlag, fmt.Errorf("%w: %q", ErrUnknownPolarity, s)
}
