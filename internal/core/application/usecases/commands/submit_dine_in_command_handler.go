package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// SubmitDineInCommandHandler opens dine-in orders and keeps table occupancy
// consistent under concurrent submissions.
//
// The attach step is a compare-and-set on the table row: the first submission
// wins the table, any concurrent one loses the swap, re-reads the table and
// merges its items into the winning order. Handle returns the ID of the order
// that actually holds the table, which is not necessarily the submitted one.
type SubmitDineInCommandHandler struct {
	uowFactory DineInUoWFactory
	notifier   ports.KitchenNotifier
}

// NewSubmitDineInCommandHandler creates a handler for dine-in submissions.
func NewSubmitDineInCommandHandler(uowFactory DineInUoWFactory, notifier ports.KitchenNotifier) SubmitDineInCommandHandler {
	return SubmitDineInCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes a dine-in submission and returns the effective order ID.
func (h *SubmitDineInCommandHandler) Handle(ctx context.Context, cmd SubmitDineInCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	tableID := cmd.TableID()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.TenantID(), cmd.Channel(), order.TypeDineIn,
		&tableID, nil, cmd.Items(), cmd.Status(), cmd.Money(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	orderRepo := uow.OrderRepository()

	won, err := tableRepo.TryAttachOrder(ctx, cmd.TenantID(), tableID,
		newOrder.ID(), table.StatusForOrder(newOrder.Status()))
	if err != nil {
		return kernel.UUID{}, err
	}

	if won {
		if err = orderRepo.Add(ctx, newOrder); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		h.publish(newOrder)
		return newOrder.ID(), nil
	}

	winner, err := h.merge(ctx, uow, cmd, newOrder)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	h.publish(winner)
	return winner.ID(), nil
}

// merge folds a losing submission into the order already holding the table.
func (h *SubmitDineInCommandHandler) merge(ctx context.Context, uow DineInUoW,
	cmd SubmitDineInCommand, lost *order.Order) (*order.Order, error) {
	tbl, err := uow.TableRepository().Get(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return nil, err
	}

	// The swap just failed, so the table must reference an order. Seeing it
	// empty here means it was cleared between the swap and this read.
	if tbl.ActiveOrderID() == nil {
		return nil, errs.NewConcurrencyConflictError("table", cmd.TableID())
	}

	winner, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), *tbl.ActiveOrderID())
	if err != nil {
		return nil, err
	}

	merged := append(winner.Items(), lost.Items()...)
	if err = winner.ReplaceItems(merged); err != nil {
		return nil, err
	}

	if err = winner.UpdateMoney(cmd.Money()); err != nil {
		return nil, err
	}

	// Only escalate the winner's status if the incoming one moves it forward.
	if _, transitionErr := winner.Status().TransitionTo(cmd.Status()); transitionErr == nil {
		if err = winner.ChangeStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, winner); err != nil {
		return nil, err
	}

	if err = tbl.MirrorOrderStatus(winner.Status()); err != nil {
		return nil, err
	}
	if err = uow.TableRepository().Update(ctx, tbl); err != nil {
		return nil, err
	}

	return winner, nil
}

func (h *SubmitDineInCommandHandler) publish(o *order.Order) {
	if h.notifier == nil || !o.IsKitchenVisible() {
		return
	}
	h.notifier.Publish(KitchenEventFromOrder(o))
}
