package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

func testItems() []commands.ItemParam {
	return []commands.ItemParam{
		{Name: "Paneer Tikka", Quantity: 2, UnitPrice: decimal.RequireFromString("180.00")},
		{Name: "Butter Naan", Quantity: 4, UnitPrice: decimal.RequireFromString("40.00"), Notes: "no butter on one"},
	}
}

func testMoney() commands.MoneyParam {
	return commands.MoneyParam{
		Subtotal: decimal.RequireFromString("520.00"),
		Discount: decimal.Zero,
		Tax:      decimal.RequireFromString("26.00"),
		Total:    decimal.RequireFromString("546.00"),
	}
}

func TestNewSubmitDineInCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	tableID := kernel.NewUUID()

	cmd, err := commands.NewSubmitDineInCommand(orderID, tenantID, tableID,
		order.ChannelFloorManager, order.StatusSaved, testItems(), testMoney())
	require.NoError(t, err)

	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, tableID, cmd.TableID())
	assert.Equal(t, order.ChannelFloorManager, cmd.Channel())
	assert.Equal(t, order.StatusSaved, cmd.Status())
	assert.Len(t, cmd.Items(), 2)
	assert.Equal(t, order.ItemStatusPending, cmd.Items()[0].Status())
}

func TestNewSubmitDineInCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSubmitDineInCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelFloorManager, order.StatusSaved, testItems(), testMoney())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSubmitDineInCommand_NoItems(t *testing.T) {
	_, err := commands.NewSubmitDineInCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelFloorManager, order.StatusSaved, nil, testMoney())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewSubmitDineInCommand_InvalidChannel(t *testing.T) {
	_, err := commands.NewSubmitDineInCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelUnknown, order.StatusSaved, testItems(), testMoney())
	require.Error(t, err)
}

func TestNewSubmitDineInCommand_NegativeMoney(t *testing.T) {
	money := testMoney()
	money.Discount = decimal.RequireFromString("-5.00")
	_, err := commands.NewSubmitDineInCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.ChannelFloorManager, order.StatusSaved, testItems(), money)
	require.Error(t, err)
}
