package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/projection"
	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}

func storedRows(accountID uuid.UUID) []*transaction.Transaction {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }
	return []*transaction.Transaction{
		{ID: "pay", AccountID: accountID, TransactionDate: day(1), Amount: decimal.RequireFromString("1000"), Category: "Income", TransactionName: "Salary"},
		{ID: "din", AccountID: accountID, TransactionDate: day(2), Amount: decimal.RequireFromString("-100"), Category: "Dining", TransactionName: "Dinner"},
		{ID: "gro", AccountID: accountID, TransactionDate: day(3), Amount: decimal.RequireFromString("-50"), Category: "Groceries", TransactionName: "Market"},
	}
}

// -- Project tests --

func TestProject_EndToEnd(t *testing.T) {
	svc := NewProjectionService(new(mockTransactionLister))

	records := []normalizer.RawRecord{
		{ID: "b", Date: "2024-01-02", Amount: "100", IsCredit: ptr(false), Category: ptr("Dining")},
		{ID: "a", Date: "2024-01-01", Amount: "1000", IsCredit: ptr(true)},
	}

	projected, err := svc.Project(records, normalizer.PolarityFlag, projection.NewConfig(map[string]float64{"Dining": 50}))

	require.NoError(t, err)
	require.Len(t, projected, 2)
	assert.Equal(t, "a", projected[0].ID, "sorted by date before projecting")
	assert.True(t, projected[1].OverallTotal.Equal(decimal.RequireFromString("900")))
	assert.True(t, projected[1].MinimizedTotal.Equal(decimal.RequireFromString("950")))
}

func TestProject_MalformedRecord(t *testing.T) {
	svc := NewProjectionService(new(mockTransactionLister))

	_, err := svc.Project([]normalizer.RawRecord{{ID: "x", Date: "yesterday", Amount: "1"}}, normalizer.PolarityFlag, nil)

	var malformed *normalizer.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "date", malformed.Field)
}

// -- ProjectStored tests --

func TestProjectStored_Success(t *testing.T) {
	lister := new(mockTransactionLister)
	svc := NewProjectionService(lister)
	accountID := uuid.Must(uuid.NewV4())
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	lister.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.AccountID == accountID && f.From != nil && f.From.Equal(from) && f.To == nil
	})).Return(storedRows(accountID), nil)

	result, err := svc.ProjectStored(context.Background(), StoredQuery{
		AccountID: accountID,
		From:      &from,
		Opening:   decimal.RequireFromString("200"),
		Config:    projection.NewConfig(map[string]float64{"Dining": 25}),
	})

	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	assert.True(t, result.Recomputed)

	assert.True(t, result.Transactions[0].IsCredit)
	assert.False(t, result.Transactions[1].IsCredit)
	assert.True(t, result.Transactions[1].Amount.Equal(decimal.RequireFromString("100")), "stored sign becomes polarity")

	assert.True(t, result.Summary.FinalOverallTotal.Equal(decimal.RequireFromString("1050")))
	assert.True(t, result.Summary.FinalMinimizedTotal.Equal(decimal.RequireFromString("1125")))
	assert.True(t, result.Summary.Savings.Equal(decimal.RequireFromString("75")))
	assert.True(t, result.Summary.SavingsByCategory["Dining"].Equal(decimal.RequireFromString("75")))
	lister.AssertExpectations(t)
}

func TestProjectStored_ReusesUnchangedProjection(t *testing.T) {
	lister := new(mockTransactionLister)
	svc := NewProjectionService(lister)
	accountID := uuid.Must(uuid.NewV4())
	lister.On("List", mock.Anything, mock.Anything).Return(storedRows(accountID), nil)

	query := StoredQuery{AccountID: accountID, Config: projection.NewConfig(map[string]float64{"Dining": 0})}
	first, err := svc.ProjectStored(context.Background(), query)
	require.NoError(t, err)
	second, err := svc.ProjectStored(context.Background(), query)
	require.NoError(t, err)

	assert.True(t, first.Recomputed)
	assert.False(t, second.Recomputed)

	query.Config = projection.NewConfig(map[string]float64{"Dining": 10})
	third, err := svc.ProjectStored(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, third.Recomputed)
}

func TestProjectStored_EvictsLeastRecentAccount(t *testing.T) {
	lister := new(mockTransactionLister)
	svc := newProjectionService(lister, 2)
	a, b, c := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	lister.On("List", mock.Anything, mock.Anything).Return(storedRows(a), nil)

	project := func(id uuid.UUID) bool {
		result, err := svc.ProjectStored(context.Background(), StoredQuery{AccountID: id})
		require.NoError(t, err)
		return result.Recomputed
	}

	assert.True(t, project(a))
	assert.True(t, project(b))
	assert.False(t, project(a), "a is cached and becomes most recent")
	assert.True(t, project(c), "c evicts b")
	assert.Equal(t, 2, svc.memos.Len())
	assert.False(t, project(a))
	assert.True(t, project(b), "b was evicted")
}

func TestProjectStored_Empty(t *testing.T) {
	lister := new(mockTransactionLister)
	svc := NewProjectionService(lister)
	lister.On("List", mock.Anything, mock.Anything).Return([]*transaction.Transaction{}, nil)

	result, err := svc.ProjectStored(context.Background(), StoredQuery{AccountID: uuid.Must(uuid.NewV4())})

	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.Zero(t, result.Summary.Count)
}

func TestProjectStored_SourceError(t *testing.T) {
	lister := new(mockTransactionLister)
	svc := NewProjectionService(lister)
	lister.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	result, err := svc.ProjectStored(context.Background(), StoredQuery{AccountID: uuid.Must(uuid.NewV4())})

	assert.ErrorContains(t, err, "database unavailable")
	assert.Nil(t, result)
}
