package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

type Reader struct {
	Transactions *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(exec),
	}
}
