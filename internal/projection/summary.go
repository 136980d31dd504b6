package projection

import (
	"github.com/shopspring/decimal"
)

// Summary compares the end of a projected series against what actually happened.
type Summary struct {
	Count               int
	FinalOverallTotal   decimal.Decimal
	FinalMinimizedTotal decimal.Decimal

	// Savings is FinalMinimizedTotal minus FinalOverallTotal.
	Savings           decimal.Decimal
	SavingsByCategory map[string]decimal.Decimal
}

// Summarize folds a projected series into end-of-period totals. Only categories
// whose debits were actually adjusted appear in SavingsByCategory.
func Summarize(projected []ProjectedTransaction) Summary {
	summary := Summary{
		Count:             len(projected),
		SavingsByCategory: make(map[string]decimal.Decimal),
	}
	if len(projected) == 0 {
		return summary
	}

	last := projected[len(projected)-1]
	summary.FinalOverallTotal = last.OverallTotal
	summary.FinalMinimizedTotal = last.MinimizedTotal
	summary.Savings = last.MinimizedTotal.Sub(last.OverallTotal)

	for _, p := range projected {
		if p.IsCredit {
			continue
		}
		saved := p.Amount.Sub(p.AdjustedAmount)
		if saved.IsZero() {
			continue
		}
		summary.SavingsByCategory[p.Category] = summary.SavingsByCategory[p.Category].Add(saved)
	}

	return summary
}
