package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) Accounts(ctx context.Context, filter *transaction.AccountFilter) (*transaction.AccountListResult, error) {
	args := m.Called(ctx, filter)
	result, _ := args.Get(0).(*transaction.AccountListResult)
	return result, args.Error(1)
}

// -- List tests --

func TestAccountList_PassesFilter(t *testing.T) {
	source := new(mockAccountLister)
	filter := &transaction.AccountFilter{Limit: 2, Offset: 4}
	want := &transaction.AccountListResult{
		Accounts:   []*transaction.AccountSummary{{AccountID: uuid.Must(uuid.NewV4()), TransactionCount: 3}},
		NextCursor: &transaction.AccountCursor{Position: 6, Limit: 2},
	}
	source.On("Accounts", mock.Anything, filter).Return(want, nil)

	got, err := NewAccountService(source).List(context.Background(), filter)

	require.NoError(t, err)
	assert.Same(t, want, got)
	source.AssertExpectations(t)
}

func TestAccountList_EmptyIsNotNil(t *testing.T) {
	source := new(mockAccountLister)
	source.On("Accounts", mock.Anything, mock.Anything).Return(&transaction.AccountListResult{}, nil)

	got, err := NewAccountService(source).List(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, got.Accounts)
	assert.Empty(t, got.Accounts)
	assert.Nil(t, got.NextCursor)
}

func TestAccountList_Error(t *testing.T) {
	source := new(mockAccountLister)
	source.On("Accounts", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewAccountService(source).List(context.Background(), nil)

	assert.EqualError(t, err, "list accounts: db down")
}
