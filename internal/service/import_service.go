package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/operator/actions"
)

// actionProcessor runs an action inside a write transaction.
// *operator.OperatorDelegator implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ImportResult reports how many records were received and how many were new.
type ImportResult struct {
	Received int
	Imported int64
}

// ImportService normalizes provider records and stores them for an account.
type ImportService struct {
	processor       actionProcessor
	defaultPolarity normalizer.Polarity
}

func NewImportService(processor actionProcessor, defaultPolarity normalizer.Polarity) *ImportService {
	return &ImportService{
		processor:       processor,
		defaultPolarity: defaultPolarity,
	}
}

// DefaultPolarity is the polarity used when an import does not declare one.
func (s *ImportService) DefaultPolarity() normalizer.Polarity {
	return s.defaultPolarity
}

// Import normalizes records with polarity and stores them against accountID.
// The batch is rejected as a whole when any record is malformed.
func (s *ImportService) Import(ctx context.Context, accountID uuid.UUID, records []normalizer.RawRecord, polarity normalizer.Polarity) (ImportResult, error) {
	txns, err := normalizer.New(polarity).Normalize(records)
	if err != nil {
		return ImportResult{}, err
	}

	action := &actions.ImportTransactions{
		AccountID:    accountID,
		Transactions: txns,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{
		Received: len(records),
		Imported: action.Imported,
	}, nil
}
