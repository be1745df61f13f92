package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to open orders. For
// seated dine-in orders the table's status is mirrored in the same
// transaction, so the floor map never disagrees with the order.
type UpdateOrderCommandHandler struct {
	uowFactory DineInUoWFactory
	notifier   ports.KitchenNotifier
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory DineInUoWFactory, notifier ports.KitchenNotifier) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes an order update. Item changes apply before the status
// transition, so a single request can complete the last preparing item and
// move the order to paid.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if cmd.Items() != nil {
		items, itemsErr := patchItems(aggregate.Items(), cmd.Items())
		if itemsErr != nil {
			return itemsErr
		}
		if err = aggregate.ReplaceItems(items); err != nil {
			return err
		}
	}

	// Totals go in before the status change so a single request can settle
	// the final bill and mark the order paid.
	if cmd.Money() != nil {
		money, moneyErr := cmd.Money().toMoney()
		if moneyErr != nil {
			return moneyErr
		}
		if err = aggregate.UpdateMoney(money); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
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

	if h.notifier != nil && (wasVisible || aggregate.IsKitchenVisible()) {
		h.notifier.Publish(KitchenEventFromOrder(aggregate))
	}
	return nil
}

// mirrorTable refreshes the table row backing a seated dine-in order.
// Orders without a table, or whose table was already cleared, pass through.
func mirrorTable(ctx context.Context, uow DineInUoW, aggregate *order.Order) error {
	if aggregate.Type() != order.TypeDineIn || aggregate.TableID() == nil {
		return nil
	}

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.Get(ctx, aggregate.TenantID(), *aggregate.TableID())
	if err != nil {
		return err
	}

	// Another order may already hold the table, or staff may have cleared
	// it. Only mirror while this order is still the active one.
	if tbl.ActiveOrderID() == nil || !tbl.ActiveOrderID().IsEqual(aggregate.ID()) {
		return nil
	}

	if err = tbl.MirrorOrderStatus(aggregate.Status()); err != nil {
		return err
	}
	return tableRepo.Update(ctx, tbl)
}
