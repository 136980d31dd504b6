package projection

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-projector/internal/changedetect"
	"github.com/carson-networks/budget-projector/internal/domain"
)

// Memo caches the last projection and only recomputes when the sampled
// transactions, the config or the opening balance changed. It is owned by a
// single caller and is not safe for concurrent use.
//
// Only the sampled transactions are kept, so the caller may reuse and mutate
// its slice between calls. Results are copies and may be modified freely.
type Memo struct {
	lastTxns    changedetect.Sample[domain.Transaction]
	lastCfg     Config
	lastOpening decimal.Decimal
	result      []ProjectedTransaction
	primed      bool
}

// Project returns the projection of txns under cfg and whether it had to be
// recomputed.
func (m *Memo) Project(txns []domain.Transaction, cfg Config) ([]ProjectedTransaction, bool) {
	return m.ProjectFrom(txns, cfg, decimal.Zero)
}

// ProjectFrom is Project starting from an opening balance.
func (m *Memo) ProjectFrom(txns []domain.Transaction, cfg Config, opening decimal.Decimal) ([]ProjectedTransaction, bool) {
	if m.primed &&
		m.lastOpening.Equal(opening) &&
		m.lastCfg.Equal(cfg) &&
		!m.lastTxns.Changed(txns) {
		return slices.Clone(m.result), false
	}

	m.result = ProjectFrom(txns, cfg, opening)
	m.lastTxns = changedetect.Take(txns)
	m.lastCfg = cfg.Clone()
	m.lastOpening = opening
	m.primed = true
	return slices.Clone(m.result), true
}

// Reset drops the cached projection.
func (m *Memo) Reset() {
	*m = Memo{}
}
