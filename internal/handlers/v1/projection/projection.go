package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/projection"
)

// ChartTransaction is a transaction as sent by the chart. Amount is a
// magnitude whose direction comes from IsCredit unless the request declares
// another polarity.
type ChartTransaction struct {
	ID           string   `json:"id,omitempty" doc:"Transaction identifier, generated when absent"`
	Date         string   `json:"date" doc:"Transaction date, YYYY-MM-DD or RFC3339"`
	Amount       float64  `json:"amount" doc:"Amount of the movement"`
	IsCredit     *bool    `json:"isCredit,omitempty" doc:"True when money is added to the balance"`
	Category     *string  `json:"category,omitempty" doc:"Spending category, UNKNOWN when absent"`
	MerchantName *string  `json:"merchantName,omitempty" doc:"Merchant name"`
	Name         *string  `json:"name,omitempty" doc:"Transaction description"`
	OverallTotal *float64 `json:"overallTotal,omitempty" doc:"Previously computed running balance, kept as-is"`
}

// ProjectedTransaction is the response model: the normalized transaction plus
// its running balances.
type ProjectedTransaction struct {
	ID             string  `json:"id" doc:"Transaction identifier"`
	Date           string  `json:"date" doc:"Transaction date"`
	Amount         float64 `json:"amount" doc:"Magnitude of the movement"`
	IsCredit       bool    `json:"isCredit" doc:"True when money is added to the balance"`
	Category       string  `json:"category" doc:"Spending category"`
	MerchantName   string  `json:"merchantName" doc:"Merchant name"`
	Name           string  `json:"name" doc:"Transaction description"`
	OverallTotal   float64 `json:"overallTotal" doc:"Actual running balance"`
	MinimizedTotal float64 `json:"minimizedTotal" doc:"Running balance with reduced spending"`
	AdjustedAmount float64 `json:"adjustedAmount" doc:"Amount applied to minimizedTotal"`
}

// ToRawRecords converts chart transactions into normalizer input.
func ToRawRecords(chartData []ChartTransaction) []normalizer.RawRecord {
	records := make([]normalizer.RawRecord, len(chartData))
	for i, c := range chartData {
		records[i] = normalizer.RawRecord{
			ID:           c.ID,
			Date:         c.Date,
			Amount:       decimal.NewFromFloat(c.Amount).String(),
			IsCredit:     c.IsCredit,
			Category:     c.Category,
			MerchantName: c.MerchantName,
			Name:         c.Name,
		}
		if c.OverallTotal != nil {
			records[i].OverallTotal = decimal.NewNullDecimal(decimal.NewFromFloat(*c.OverallTotal))
		}
	}
	return records
}

// FromProjected converts engine output into the response model.
func FromProjected(projected []projection.ProjectedTransaction) []ProjectedTransaction {
	out := make([]ProjectedTransaction, len(projected))
	for i, p := range projected {
		out[i] = ProjectedTransaction{
			ID:             p.ID,
			Date:           formatDate(p.Date),
			Amount:         p.Amount.InexactFloat64(),
			IsCredit:       p.IsCredit,
			Category:       p.Category,
			MerchantName:   p.MerchantName,
			Name:           p.Name,
			OverallTotal:   p.OverallTotal.InexactFloat64(),
			MinimizedTotal: p.MinimizedTotal.InexactFloat64(),
			AdjustedAmount: p.AdjustedAmount.InexactFloat64(),
		}
	}
	return out
}

// formatDate keeps calendar dates in the YYYY-MM-DD form they usually arrive in.
func formatDate(t time.Time) string {
	if t.Equal(t.Truncate(24*time.Hour)) && t.Location() == time.UTC {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// NewConfig converts the chart config, nil when absent.
func NewConfig(chartConfig map[string]float64) projection.Config {
	if len(chartConfig) == 0 {
		return nil
	}
	return projection.NewConfig(chartConfig)
}
