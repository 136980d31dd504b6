package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns the filtered transactions ordered by date, then ID, ascending.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(
			"id",
			"account_id",
			"transaction_date",
			"amount",
			"category",
			"merchant_name",
			"transaction_name",
			"created_at",
		),
		sm.From(tableName),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(filter.AccountID))),
	)

	if filter.From != nil {
		query.Apply(sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.From))))
	}
	if filter.To != nil {
		query.Apply(sm.Where(psql.Quote("transaction_date").LT(psql.Arg(*filter.To))))
	}

	query.Apply(
		sm.OrderBy(psql.Quote("transaction_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	if filter.Limit > 0 {
		query.Apply(sm.Limit(filter.Limit))
	}

	return bob.All(ctx, r.exec, query, scan.StructMapper[*Transaction]())
}
