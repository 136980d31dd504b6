package service

import (
	"github.com/carson-networks/budget-projector/internal/normalizer"
)

// ledgerReader is the stored transaction ledger. *transaction.Reader implements it.
type ledgerReader interface {
	transactionLister
	accountLister
}

// Service holds all business logic services.
type Service struct {
	Projection *ProjectionService
	Import     *ImportService
	Accounts   *AccountService
}

// NewService wires the services against the stored ledger and the operator
// that serializes writes. polarity is the default for imports that do not
// declare one.
func NewService(ledger ledgerReader, processor actionProcessor, polarity normalizer.Polarity) *Service {
	return &Service{
		Projection: NewProjectionService(ledger),
		Import:     NewImportService(processor, polarity),
		Accounts:   NewAccountService(ledger),
	}
}
