package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

func TestClearTableCommandHandler_Handle_ClearsPaidTable(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	paid, err := table.RestoreTable(tableID, tenantID, "T-5", "hall", 2,
		table.StatusPaidPendingClear, &orderID, testTime())
	require.NoError(t, err)

	cmd, err := commands.NewClearTableCommand(tableID, tenantID)
	require.NoError(t, err)

	tableRepo := new(MockTableRepository)
	uow := new(MockTableUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tenantID, tableID).Return(paid, nil).Once(),
		tableRepo.On("Update", mock.Anything, paid).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearTableCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, paid.IsEmpty())
	tableRepo.AssertExpectations(t)
}

func TestClearTableCommandHandler_Handle_OpenOrderRefused(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	open, err := table.RestoreTable(tableID, tenantID, "T-5", "hall", 2,
		table.StatusKitchenTicketed, &orderID, testTime())
	require.NoError(t, err)

	cmd, err := commands.NewClearTableCommand(tableID, tenantID)
	require.NoError(t, err)

	tableRepo := new(MockTableRepository)
	uow := new(MockTableUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tenantID, tableID).Return(open, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearTableCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *errs.InvalidStateTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestClearTableCommandHandler_Handle_EmptyTableIsNoop(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()

	empty, err := table.NewTable(kernel.NewUUID(), tenantID, "T-6", "hall", 2)
	require.NoError(t, err)

	cmd, err := commands.NewClearTableCommand(empty.ID(), tenantID)
	require.NoError(t, err)

	tableRepo := new(MockTableRepository)
	uow := new(MockTableUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tenantID, empty.ID()).Return(empty, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearTableCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
}
