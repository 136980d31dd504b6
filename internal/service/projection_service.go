package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/domain"
	"github.com/carson-networks/budget-projector/internal/normalizer"
	"github.com/carson-networks/budget-projector/internal/projection"
	"github.com/carson-networks/budget-projector/internal/storage/transaction"
)

// transactionLister is the stored ledger the projection reads from.
type transactionLister interface {
	List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error)
}

// StoredQuery selects the stored transactions of one account to project.
type StoredQuery struct {
	AccountID uuid.UUID
	From      *time.Time
	To        *time.Time
	Opening   decimal.Decimal
	Config    projection.Config
}

// StoredProjection is a projected ledger with its end-of-period summary.
type StoredProjection struct {
	Transactions []projection.ProjectedTransaction
	Summary      projection.Summary
	// Recomputed is false when the previous projection for the account was reused.
	Recomputed bool
}

// DefaultMemoAccounts is how many accounts keep their last stored projection.
const DefaultMemoAccounts = 128

// ProjectionService runs the projection engine over supplied or stored ledgers.
type ProjectionService struct {
	source transactionLister

	mu    sync.Mutex
	memos *lru.Cache[uuid.UUID, *projection.Memo]
}

func NewProjectionService(source transactionLister) *ProjectionService {
	return newProjectionService(source, DefaultMemoAccounts)
}

// newProjectionService keeps memos for the memoAccounts most recently
// projected accounts.
func newProjectionService(source transactionLister, memoAccounts int) *ProjectionService {
	memos, err := lru.New[uuid.UUID, *projection.Memo](memoAccounts)
	if err != nil {
		panic(err)
	}
	return &ProjectionService{
		source: source,
		memos:  memos,
	}
}

// Project normalizes records read with polarity and projects them under cfg.
// Malformed records are returned as *normalizer.MalformedRecordError.
func (s *ProjectionService) Project(records []normalizer.RawRecord, polarity normalizer.Polarity, cfg projection.Config) ([]projection.ProjectedTransaction, error) {
	txns, err := normalizer.New(polarity).Normalize(records)
	if err != nil {
		return nil, err
	}
	return projection.Project(txns, cfg), nil
}

// ProjectStored projects the stored transactions selected by query. The last
// projection of each recently used account is kept and reused while its inputs
// look unchanged; the least recently used account is evicted first.
func (s *ProjectionService) ProjectStored(ctx context.Context, query StoredQuery) (*StoredProjection, error) {
	rows, err := s.source.List(ctx, &transaction.TransactionFilter{
		AccountID: query.AccountID,
		From:      query.From,
		To:        query.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list stored transactions: %w", err)
	}

	txns := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		txns[i] = fromStored(row)
	}

	s.mu.Lock()
	memo, ok := s.memos.Get(query.AccountID)
	if !ok {
		memo = &projection.Memo{}
		s.memos.Add(query.AccountID, memo)
	}
	projected, recomputed := memo.ProjectFrom(txns, query.Config, query.Opening)
	s.mu.Unlock()

	return &StoredProjection{
		Transactions: projected,
		Summary:      projection.Summarize(projected),
		Recomputed:   recomputed,
	}, nil
}

// fromStored reads a ledger row with signed polarity.
func fromStored(row *transaction.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:           row.ID,
		Date:         row.TransactionDate,
		Amount:       row.Amount.Abs(),
		IsCredit:     !row.Amount.IsNegative(),
		Category:     row.Category,
		MerchantName: row.MerchantName,
		Name:         row.TransactionName,
	}
}
