package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-projector/internal/domain"
	"github.com/carson-networks/budget-projector/internal/storage"
	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

// ImportTransactions stores normalized transactions against one account. IDs
// already stored for the account are skipped.
type ImportTransactions struct {
	AccountID    uuid.UUID
	Transactions []domain.Transaction

	// Imported is set by Perform to the number of new rows.
	Imported int64
}

func (i *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if i.AccountID == uuid.Nil {
		return errors.New("import: missing account")
	}

	creates := make([]*transaction.TransactionCreate, len(i.Transactions))
	for idx, txn := range i.Transactions {
		creates[idx] = &transaction.TransactionCreate{
			ID:              txn.ID,
			AccountID:       i.AccountID,
			TransactionDate: txn.Date,
			Amount:          txn.Signed(),
			Category:        txn.Category,
			MerchantName:    txn.MerchantName,
			TransactionName: txn.Name,
		}
	}

	imported, err := writer.Transaction.Insert(ctx, creates...)
	if err != nil {
		return err
	}
	i.Imported = imported

	return nil
}
