package commands

import (
	"context"
)

// CancelStaleOrdersCommandHandler cancels Requested orders that were never
// approved before the cutoff. Cancelling them frees their reserved weight
// for the owners' next quota evaluations.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale order cleanup command.
// All matching orders are cancelled within a single transaction, so either
// the whole sweep applies or none of it does.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetAllRequestedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
