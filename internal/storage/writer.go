package storage

import (
	"context"

	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

type Writer struct {
	tx          Tx
	Transaction *transaction.Writer
}

func NewWriter(tx Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
