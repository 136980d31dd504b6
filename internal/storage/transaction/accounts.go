package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const defaultAccountPageSize = 20

// AccountSummary aggregates the stored transactions of one account.
type AccountSummary struct {
	AccountID        uuid.UUID       `db:"account_id"`
	TransactionCount int64           `db:"transaction_count"`
	FirstDate        time.Time       `db:"first_date"`
	LastDate         time.Time       `db:"last_date"`
	Balance          decimal.Decimal `db:"balance"`
}

type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies the next page of accounts.
type AccountCursor struct {
	Position int
	Limit    int
}

type AccountListResult struct {
	Accounts   []*AccountSummary
	NextCursor *AccountCursor
}

// Accounts pages through every account with stored transactions, ordered by ID.
func (r *Reader) Accounts(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := defaultAccountPageSize
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	query := psql.Select(
		sm.Columns(
			"account_id",
			"COUNT(*) AS transaction_count",
			"MIN(transaction_date) AS first_date",
			"MAX(transaction_date) AS last_date",
			"COALESCE(SUM(amount), 0) AS balance",
		),
		sm.From(tableName),
		sm.GroupBy(psql.Quote("account_id")),
		sm.OrderBy(psql.Quote("account_id")).Asc(),
		sm.Limit(limit+1),
		sm.Offset(offset),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*AccountSummary]())
	if err != nil {
		return nil, err
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{Position: offset + limit, Limit: limit}
	}
	return &AccountListResult{Accounts: rows, NextCursor: nextCursor}, nil
}
