package transaction

import (
	"github.com/carson-networks/budget-projector/internal/normalizer"
)

// ImportRecord is a provider transaction as received by the import endpoint.
// Its amount polarity is declared once per request.
type ImportRecord struct {
	ID           string  `json:"id,omitempty" doc:"Provider transaction ID, derived from the record content when absent"`
	Date         string  `json:"date" doc:"Transaction date, YYYY-MM-DD or RFC3339"`
	Amount       string  `json:"amount" doc:"Decimal amount, signed according to the request polarity"`
	IsCredit     *bool   `json:"isCredit,omitempty" doc:"Direction flag, read with the flag polarity"`
	Category     *string `json:"category,omitempty" doc:"Spending category"`
	MerchantName *string `json:"merchantName,omitempty" doc:"Merchant name"`
	Name         *string `json:"name,omitempty" doc:"Transaction description"`
}

func toRawRecords(records []ImportRecord) []normalizer.RawRecord {
	raw := make([]normalizer.RawRecord, len(records))
	for i, r := range records {
		raw[i] = normalizer.RawRecord{
			ID:           r.ID,
			Date:         r.Date,
			Amount:       r.Amount,
			IsCredit:     r.IsCredit,
			Category:     r.Category,
			MerchantName: r.MerchantName,
			Name:         r.Name,
		}
	}
	return raw
}
