package actions

import (
	"context"

	"github.com/carson-networks/budget-projector/internal/storage"
)

// IAction is a unit of work run by an operator inside one write transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
