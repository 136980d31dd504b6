package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

// accountLister aggregates the stored ledger per account.
type accountLister interface {
	Accounts(ctx context.Context, filter *transaction.AccountFilter) (*transaction.AccountListResult, error)
}

// AccountService lists the accounts that have stored transactions.
type AccountService struct {
	source accountLister
}

func NewAccountService(source accountLister) *AccountService {
	return &AccountService{source: source}
}

func (s *AccountService) List(ctx context.Context, filter *transaction.AccountFilter) (*transaction.AccountListResult, error) {
	result, err := s.source.Accounts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if result.Accounts == nil {
		result.Accounts = []*transaction.AccountSummary{}
	}
	return result, nil
}
