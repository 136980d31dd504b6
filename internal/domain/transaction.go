package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownCategory is the category assigned to transactions that arrive without one.
const UnknownCategory = "UNKNOWN"

// UnknownLabel fills missing descriptive fields (name, merchant).
const UnknownLabel = "Unknown"

// Transaction is the canonical transaction shape consumed by the projection and
// windowing engines. Amount is always a non-negative magnitude; polarity lives
// only in IsCredit.
type Transaction struct {
	ID           string
	Date         time.Time
	Amount       decimal.Decimal
	IsCredit     bool
	Category     string
	MerchantName string
	Name         string

	// OverallTotal is a running balance computed by an earlier projection pass.
	// When valid it is carried through instead of being recomputed.
	OverallTotal decimal.NullDecimal
}

// Signed returns the effect of the transaction on the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.IsCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}
