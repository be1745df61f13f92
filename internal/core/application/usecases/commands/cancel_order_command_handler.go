package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// CancelOrderCommandHandler cancels open orders. Every item is force
// cancelled with the order, and a seated dine-in order releases its table in
// the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory DineInUoWFactory
	notifier   ports.KitchenNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(uowFactory DineInUoWFactory, notifier ports.KitchenNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes a cancellation. Cancelling an already cancelled order
// succeeds without writing anything new.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	wasVisible := aggregate.IsKitchenVisible()

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = mirrorTable(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Push the cancelled state so open terminals drop the ticket.
	if h.notifier != nil && wasVisible {
		h.notifier.Publish(KitchenEventFromOrder(aggregate))
	}
	return nil
}
