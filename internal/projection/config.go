package projection

import (
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Config maps a category to the percentage of its debits that is kept in the
// projection. 100 leaves the category untouched, 0 removes its debits entirely.
// Values outside [0, 100] are honored as linear multipliers; validating them is
// left to the caller.
type Config map[string]decimal.Decimal

// ErrNonFinitePercentage is returned for NaN or infinite percentages.
var ErrNonFinitePercentage = errors.New("percentage is not a finite number")

// NewConfig coerces plain numeric percentages into a Config. NaN and infinite
// percentages have no decimal form and are left out.
func NewConfig(percentages map[string]float64) Config {
	cfg := make(Config, len(percentages))
	for category, pct := range percentages {
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			continue
		}
		cfg[category] = decimal.NewFromFloat(pct)
	}
	return cfg
}

// ParseConfig is NewConfig that rejects NaN and infinite percentages.
func ParseConfig(percentages map[string]float64) (Config, error) {
	for category, pct := range percentages {
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			return nil, fmt.Errorf("category %q: %w", category, ErrNonFinitePercentage)
		}
	}
	return NewConfig(percentages), nil
}

// Factor returns the multiplier applied to debits in the category, 1 when the
// category is not configured.
func (c Config) Factor(category string) decimal.Decimal {
	pct, ok := c[category]
	if !ok {
		return one
	}
	return pct.Div(hundred)
}

// Equal reports whether both configs hold the same categories with numerically
// equal percentages.
func (c Config) Equal(other Config) bool {
	return maps.EqualFunc(c, other, func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})
}

// Clone returns an independent copy of the config.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	return maps.Clone(c)
}
