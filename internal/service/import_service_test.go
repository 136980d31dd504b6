package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/operator/actions"
)

type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func TestImport_Success(t *testing.T) {
	processor := new(mockActionProcessor)
	svc := NewImportService(processor, normalizer.PolarityFlag)
	accountID := uuid.Must(uuid.NewV4())

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		imp, ok := a.(*actions.ImportTransactions)
		return ok &&
			imp.AccountID == accountID &&
			len(imp.Transactions) == 2 &&
			imp.Transactions[0].ID == "early" &&
			!imp.Transactions[0].IsCredit
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.ImportTransactions).Imported = 1
	}).Return(nil)

	result, err := svc.Import(context.Background(), accountID, []normalizer.RawRecord{
		{ID: "late", Date: "2025-02-02", Amount: "-30"},
		{ID: "early", Date: "2025-02-01", Amount: "45.20"},
	}, normalizer.PolarityExpensePositive)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Received)
	assert.EqualValues(t, 1, result.Imported)
	processor.AssertExpectations(t)
}

func TestImport_MalformedRecordNotStored(t *testing.T) {
	processor := new(mockActionProcessor)
	svc := NewImportService(processor, normalizer.PolarityFlag)

	_, err := svc.Import(context.Background(), uuid.Must(uuid.NewV4()), []normalizer.RawRecord{
		{ID: "bad", Date: "2025-02-01", Amount: "twelve"},
	}, normalizer.PolarityFlag)

	assert.ErrorIs(t, err, normalizer.ErrMalformedRecord)
	processor.AssertNotCalled(t, "Process")
}

func TestImport_ProcessError(t *testing.T) {
	processor := new(mockActionProcessor)
	svc := NewImportService(processor, normalizer.PolarityFlag)
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue closed"))

	_, err := svc.Import(context.Background(), uuid.Must(uuid.NewV4()), []normalizer.RawRecord{
		{ID: "a", Date: "2025-02-01", Amount: "1"},
	}, normalizer.PolarityFlag)

	assert.EqualError(t, err, "queue closed")
}

func TestNewService(t *testing.T) {
	ledger := struct {
		*mockTransactionLister
		*mockAccountLister
	}{new(mockTransactionLister), new(mockAccountLister)}
	svc := NewService(ledger, new(mockActionProcessor), normalizer.PolaritySigned)

	assert.NotNil(t, svc.Projection)
	assert.NotNil(t, svc.Accounts)
	assert.Equal(t, normalizer.PolaritySigned, svc.Import.DefaultPolarity())
}
