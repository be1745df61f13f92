package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

func newDeliveryCmd(t *testing.T) commands.SubmitDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewSubmitDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelCaptain, order.StatusKitchenTicketed, testItems(), testMoney(),
		commands.CustomerParam{Name: "Ada", Phone: "+1 555 0100", Address: "12 Analytical St"})
	require.NoError(t, err)
	return cmd
}

func TestNewSubmitDeliveryCommand_RequiresContact(t *testing.T) {
	_, err := commands.NewSubmitDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelCaptain, order.StatusSaved, testItems(), testMoney(),
		commands.CustomerParam{Name: "Ada"})
	require.ErrorIs(t, err, commands.ErrCustomerContactIsRequired)
}

func TestNewSubmitWebOrderCommand_ForcesWebChannel(t *testing.T) {
	cmd, err := commands.NewSubmitWebOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		order.StatusPending, testItems(), testMoney(),
		commands.CustomerParam{Email: "ada@example.com"})
	require.NoError(t, err)
	require.Equal(t, order.ChannelWebWidget, cmd.Channel())
}

func TestSubmitDeliveryCommandHandler_Handle_CreatesCustomer(t *testing.T) {
	ctx := t.Context()
	cmd := newDeliveryCmd(t)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("FindByContact", mock.Anything, cmd.TenantID(), "+1 555 0100", "").
			Return(nil, nil).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerID() != nil && o.Type() == order.TypeDelivery
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryCommandHandler(factory, nil)
	customerID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, customerID.Validate())
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestSubmitDeliveryCommandHandler_Handle_ReusesCustomer(t *testing.T) {
	ctx := t.Context()
	cmd := newDeliveryCmd(t)

	existing, err := customer.NewCustomer(kernel.NewUUID(), cmd.TenantID(),
		"Ada", "+1 555 0100", "", "12 Analytical St")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("FindByContact", mock.Anything, cmd.TenantID(), "+1 555 0100", "").
			Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerID() != nil && o.CustomerID().IsEqual(existing.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryCommandHandler(factory, nil)
	customerID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, customerID.IsEqual(existing.ID()))
	customerRepo.AssertExpectations(t)
}
