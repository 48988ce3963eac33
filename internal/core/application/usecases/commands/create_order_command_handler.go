package commands

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Runs the password-change gate, evaluates the monthly weight quota, and
// persists the order in Requested status, all within one transaction.
//
// The ordering of checks is fixed: the gate runs before anything else, so
// a blocked account never reaches quota evaluation, and the quota runs
// before persistence, so a rejected order leaves no trace.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.DefaultQuotaPolicy())
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, items)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPasswordChangeRequired):
//	    // 403: account must change its password first
//	case errors.Is(err, errs.ErrQuotaExceeded):
//	    // 422: monthly weight limit would be exceeded
//	case err != nil:
//	    // other failure
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  services.QuotaEvaluator
	policy     services.QuotaPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and the quota policy
// to evaluate placements against.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, policy services.QuotaPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  services.NewQuotaEvaluator(),
		policy:     policy,
	}
}

// Handle processes the order placement command.
//
// Workflow:
//  1. Reject line quantities below the policy minimum, before any I/O
//  2. Lock and load the account, then run the password-change gate
//  3. Read the customer's orders for the current calendar month
//  4. Evaluate the quota; a rejection surfaces as errs.QuotaExceededError
//  5. Persist the order in Requested status and commit
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, item := range cmd.Items() {
		if item.Quantity() < h.policy.MinimumQuantityPerLine() {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is less than the policy minimum %d",
					item.Quantity(), h.policy.MinimumQuantityPerLine()))
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The account row lock is the serialization point for same-customer
	// placements: the second transaction waits here and then evaluates the
	// quota against the first one's committed orders.
	customer, err := uow.AccountRepository().GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customer.EnsurePasswordChangeNotRequired(); err != nil {
		return err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), now, cmd.Items())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetByCustomerInWindow(ctx, cmd.CustomerID(), order.WindowOf(now))
	if err != nil {
		return err
	}

	decision, err := h.evaluator.Evaluate(cmd.CustomerID(), newOrder.TotalWeight(), existing, now, h.policy)
	if err != nil {
		return err
	}

	if !decision.Accepted() {
		return errs.NewQuotaExceededError(
			decision.Accumulated().Kilograms(),
			decision.Limit().Kilograms(),
			decision.OverBy().Kilograms(),
		)
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
