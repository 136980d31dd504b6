package projection

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/domain"
)

// ProjectedTransaction is a transaction augmented with its running balances.
type ProjectedTransaction struct {
	domain.Transaction

	// OverallTotal is the unadjusted running balance.
	OverallTotal decimal.Decimal
	// MinimizedTotal is the running balance under the configured spending reduction.
	MinimizedTotal decimal.Decimal
	// AdjustedAmount is the magnitude applied to MinimizedTotal for this transaction.
	AdjustedAmount decimal.Decimal
}

// Project computes running balances over txns in the order given, starting from zero.
func Project(txns []domain.Transaction, cfg Config) []ProjectedTransaction {
	return ProjectFrom(txns, cfg, decimal.Zero)
}

// ProjectFrom computes running balances over txns in the order given, starting
// both accumulators at opening. Credits are never adjusted; a debit is scaled by
// its category factor unless that factor is exactly 1.
func ProjectFrom(txns []domain.Transaction, cfg Config, opening decimal.Decimal) []ProjectedTransaction {
	projected := make([]ProjectedTransaction, 0, len(txns))

	overall := opening
	minimized := opening
	for _, txn := range txns {
		impact := txn.Amount
		if !txn.IsCredit {
			if factor := cfg.Factor(txn.Category); !factor.Equal(one) {
				impact = txn.Amount.Mul(factor)
			}
		}

		if txn.IsCredit {
			minimized = minimized.Add(impact)
		} else {
			minimized = minimized.Sub(impact)
		}
		overall = overall.Add(txn.Signed())

		p := ProjectedTransaction{
			Transaction:    txn,
			OverallTotal:   overall,
			MinimizedTotal: minimized,
			AdjustedAmount: impact,
		}
		if txn.OverallTotal.Valid {
			p.OverallTotal = txn.OverallTotal.Decimal
		}
		projected = append(projected, p)
	}

	return projected
}
