package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "transactions"

// Transaction is a stored ledger row. Amount is signed: positive adds to the
// account balance.
type Transaction struct {
	ID              string          `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	MerchantName    string          `db:"merchant_name"`
	TransactionName string          `db:"transaction_name"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for storing a transaction. Rows that already
// exist for the same account and ID are left untouched.
type TransactionCreate struct {
	ID              string
	AccountID       uuid.UUID
	TransactionDate time.Time
	Amount          decimal.Decimal
	Category        string
	MerchantName    string
	TransactionName string
}

// TransactionFilter selects one account's transactions, optionally bounded by
// date (From inclusive, To exclusive) and count.
type TransactionFilter struct {
	AccountID uuid.UUID
	From      *time.Time
	To        *time.Time
	Limit     int
}
