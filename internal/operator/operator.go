package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-projector/internal/operator/actions"
	"github.com/carson-networks/budget-projector/internal/storage"
)

// writeOpener hands out write transactions. *storage.Storage implements it.
type writeOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeOpener
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s writeOpener, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.logger.WithError(err).Error("Operator.Write.Error")
		return err
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(context.WithoutCancel(item.ctx)); rbErr != nil {
			o.logger.WithError(rbErr).Error("Operator.Rollback.Error")
		}
		o.logger.WithError(err).WithField("action", actionName(item.action)).Warn("Operator.Perform.Error")
		return err
	}

	if err = writer.Commit(item.ctx); err != nil {
		o.logger.WithError(err).WithField("action", actionName(item.action)).Error("Operator.Commit.Error")
		return err
	}

	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
