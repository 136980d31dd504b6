package normalizer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// RawRecord is a transaction-like record as handed over by a source, before
// polarity mapping, parsing and defaulting.
type RawRecord struct {
	ID           string
	Date         string
	Amount       string
	IsCredit     *bool
	Category     *string
	MerchantName *string
	Name         *string
	OverallTotal decimal.NullDecimal
}

// idNamespace scopes the name-based UUIDs given to records without an ID.
var idNamespace = uuid.NewV5(uuid.NamespaceURL, "https://github.com/carson-networks/budget-projector/transaction")

// Normalizer converts raw records into chronologically ordered canonical transactions.
type Normalizer struct {
	polarity Polarity
}

// New creates a Normalizer for a source with the given polarity.
func New(polarity Polarity) *Normalizer {
	return &Normalizer{polarity: polarity}
}

// Polarity returns the polarity this normalizer maps records with.
func (n *Normalizer) Polarity() Polarity {
	return n.polarity
}

// Normalize parses every record, rejecting the batch on the first malformed one,
// and returns the transactions stably sorted by date ascending.
//
// A record without an ID gets a UUID derived from its date, signed amount,
// category, merchant, name and how many identical records preceded it in the
// batch, so normalizing the same batch twice yields the same IDs.
func (n *Normalizer) Normalize(records []RawRecord) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0, len(records))
	occurrences := make(map[string]int)
	for i, record := range records {
		txn, err := n.normalizeRecord(i, record)
		if err != nil {
			return nil, err
		}
		if txn.ID == "" {
			key := contentKey(txn)
			txn.ID = uuid.NewV5(idNamespace, fmt.Sprintf("%s|%d", key, occurrences[key])).String()
			occurrences[key]++
		}
		txns = append(txns, txn)
	}

	slices.SortStableFunc(txns, func(a, b domain.Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return txns, nil
}

func (n *Normalizer) normalizeRecord(index int, record RawRecord) (domain.Transaction, error) {
	date, err := parseDate(record.Date)
	if err != nil {
		return domain.Transaction{}, &MalformedRecordError{
			Index: index,
			ID:    record.ID,
			Field: "date",
			Value: record.Date,
			Err:   err,
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record.Amount))
	if err != nil {
		return domain.Transaction{}, &MalformedRecordError{
			Index: index,
			ID:    record.ID,
			Field: "amount",
			Value: record.Amount,
			Err:   err,
		}
	}

	isCredit := n.isCredit(amount, record.IsCredit)

	return domain.Transaction{
		ID:           strings.TrimSpace(record.ID),
		Date:         date,
		Amount:       amount.Abs(),
		IsCredit:     isCredit,
		Category:     orDefault(record.Category, domain.UnknownCategory),
		MerchantName: orDefault(record.MerchantName, domain.UnknownLabel),
		Name:         orDefault(record.Name, domain.UnknownLabel),
		OverallTotal: record.OverallTotal,
	}, nil
}

func (n *Normalizer) isCredit(amount decimal.Decimal, flag *bool) bool {
	switch n.polarity {
	case PolarityExpensePositive:
		return amount.IsNegative()
	case PolaritySigned:
		return !amount.IsNegative()
	default:
		if flag != nil {
			return *flag
		}
		return !amount.IsNegative()
	}
}

func contentKey(txn domain.Transaction) string {
	return strings.Join([]string{
		txn.Date.UTC().Format(time.RFC3339Nano),
		txn.Signed().String(),
		txn.Category,
		txn.MerchantName,
		txn.Name,
	}, "|")
}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var firstErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
		firstErr = cmp.Or(firstErr, err)
	}
	return time.Time{}, firstErr
}

func orDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
