package transaction

import (
	"context"
	"slices"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	exec bob.Executor
	Reader
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		exec: exec,
		Reader: Reader{
			exec: exec,
		},
	}
}

// insertBatchSize keeps each statement well under the Postgres limit of 65535
// bind parameters (7 per row).
const insertBatchSize = 1000

// Insert stores creates in statements of at most insertBatchSize rows and
// returns how many rows were new.
func (w *Writer) Insert(ctx context.Context, creates ...*TransactionCreate) (int64, error) {
	var inserted int64
	for batch := range slices.Chunk(creates, insertBatchSize) {
		n, err := w.insertBatch(ctx, batch)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (w *Writer) insertBatch(ctx context.Context, creates []*TransactionCreate) (int64, error) {
	query := psql.Insert(
		im.Into(tableName,
			"id",
			"account_id",
			"transaction_date",
			"amount",
			"category",
			"merchant_name",
			"transaction_name",
		),
	)
	for _, c := range creates {
		query.Apply(im.Values(psql.Arg(
			c.ID,
			c.AccountID,
			c.TransactionDate,
			c.Amount,
			c.Category,
			c.MerchantName,
			c.TransactionName,
		)))
	}
	query.Apply(im.OnConflict("account_id", "id").DoNothing())

	result, err := bob.Exec(ctx, w.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
