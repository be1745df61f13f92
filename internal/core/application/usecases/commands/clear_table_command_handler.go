package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

// ClearTableCommandHandler releases tables whose order was paid. Clearing a
// table that still has an unpaid active order is refused; cancel or settle
// the order instead.
type ClearTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewClearTableCommandHandler creates a handler for table clearing.
func NewClearTableCommandHandler(uowFactory TableUoWFactory) ClearTableCommandHandler {
	return ClearTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a table clear. Clearing an already empty table succeeds.
func (h *ClearTableCommandHandler) Handle(ctx context.Context, cmd ClearTableCommand) error {
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

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.Get(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return err
	}

	if tbl.IsEmpty() {
		return uow.Commit(ctx)
	}

	if tbl.Status() != table.StatusPaidPendingClear {
		return errs.NewInvalidStateTransitionError("table status",
			tbl.Status().String(), table.StatusEmpty.String())
	}

	if err = tbl.Clear(); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
