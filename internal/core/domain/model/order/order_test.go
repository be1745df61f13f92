package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDineInOrder(t *testing.T, status order.Status, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{newTestItem(t, "Tomato Soup", order.ItemStatusPending)}
	}
	tableID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.ChannelFloorManager,
		order.TypeDineIn,
		&tableID,
		nil,
		items,
		status,
		kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates a valid dine-in order", func(t *testing.T) {
		id := kernel.NewUUID()
		tenantID := kernel.NewUUID()
		tableID := kernel.NewUUID()
		items := []*order.Item{newTestItem(t, "Tomato Soup", order.ItemStatusPending)}

		o, err := order.NewOrder(id, tenantID, order.ChannelFloorManager, order.TypeDineIn,
			&tableID, nil, items, order.StatusPending, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.TenantID().IsEqual(tenantID))
		assert.Equal(t, order.ChannelFloorManager, o.Channel())
		assert.Equal(t, order.TypeDineIn, o.Type())
		require.NotNil(t, o.TableID())
		assert.True(t, o.TableID().IsEqual(tableID))
		assert.Nil(t, o.Token())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.False(t, o.CreatedAt().IsZero())
		assert.NoError(t, o.Validate())
	})

	t.Run("creation in KitchenTicketed forces pending items to preparing", func(t *testing.T) {
		pending := newTestItem(t, "Tomato Soup", order.ItemStatusPending)
		completed := newTestItem(t, "Bread", order.ItemStatusCompleted)

		o := newDineInOrder(t, order.StatusKitchenTicketed, pending, completed)

		assert.Equal(t, order.ItemStatusPreparing, o.Items()[0].Status())
		assert.Equal(t, order.ItemStatusCompleted, o.Items()[1].Status())
	})

	t.Run("quick-service channel forces pending items to preparing", func(t *testing.T) {
		items := []*order.Item{newTestItem(t, "Burger", order.ItemStatusPending)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelQuickService,
			order.TypeTakeaway, nil, nil, items, order.StatusSaved, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.Equal(t, order.ItemStatusPreparing, o.Items()[0].Status())
	})

	t.Run("delivery order requires a customer", func(t *testing.T) {
		items := []*order.Item{newTestItem(t, "Pizza", order.ItemStatusPending)}
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelCaptain,
			order.TypeDelivery, nil, nil, items, order.StatusPending, kernel.ZeroMoney())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		customerID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelCaptain,
			order.TypeDelivery, nil, &customerID, items, order.StatusPending, kernel.ZeroMoney())
		require.NoError(t, err)
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
	})

	t.Run("web widget only submits delivery orders", func(t *testing.T) {
		customerID := kernel.NewUUID()
		items := []*order.Item{newTestItem(t, "Pizza", order.ItemStatusPending)}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelWebWidget,
			order.TypeTakeaway, nil, &customerID, items, order.StatusPending, kernel.ZeroMoney())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("table reference is dine-in only", func(t *testing.T) {
		tableID := kernel.NewUUID()
		items := []*order.Item{newTestItem(t, "Burger", order.ItemStatusPending)}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelQuickService,
			order.TypeTakeaway, &tableID, nil, items, order.StatusPending, kernel.ZeroMoney())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects creation without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelFloorManager,
			order.TypeDineIn, nil, nil, nil, order.StatusPending, kernel.ZeroMoney())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects creation in Cancelled status", func(t *testing.T) {
		items := []*order.Item{newTestItem(t, "Burger", order.ItemStatusPending)}
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelFloorManager,
			order.TypeDineIn, nil, nil, items, order.StatusCancelled, kernel.ZeroMoney())
		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("entering KitchenTicketed fires pending items", func(t *testing.T) {
		pending := newTestItem(t, "Tomato Soup", order.ItemStatusPending)
		o := newDineInOrder(t, order.StatusPending, pending)

		require.NoError(t, o.ChangeStatus(order.StatusKitchenTicketed))

		assert.Equal(t, order.StatusKitchenTicketed, o.Status())
		assert.Equal(t, order.ItemStatusPreparing, o.Items()[0].Status())
	})

	t.Run("saved order can be ticketed then paid", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusPending)

		require.NoError(t, o.ChangeStatus(order.StatusSaved))
		require.NoError(t, o.ChangeStatus(order.StatusKitchenTicketed))
		require.NoError(t, o.ChangeStatus(order.StatusPaid))
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("ticket cannot be recalled to saved", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusKitchenTicketed)

		err := o.ChangeStatus(order.StatusSaved)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("paid order permits no transition", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusKitchenTicketed)
		require.NoError(t, o.ChangeStatus(order.StatusPaid))

		err := o.ChangeStatus(order.StatusSaved)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellation forces all items to cancelled", func(t *testing.T) {
		preparing := newTestItem(t, "Steak", order.ItemStatusPreparing)
		pending := newTestItem(t, "Salad", order.ItemStatusPending)
		completed := newTestItem(t, "Bread", order.ItemStatusCompleted)
		o := newDineInOrder(t, order.StatusKitchenTicketed, preparing, pending, completed)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.StatusCancelled, o.Status())
		for _, item := range o.Items() {
			assert.Equal(t, order.ItemStatusCancelled, item.Status())
		}
		assert.False(t, o.IsKitchenVisible())
	})

	t.Run("cancelling a cancelled order is a no-op", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusPending)
		require.NoError(t, o.Cancel())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("a paid order cannot be cancelled", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusSaved)
		require.NoError(t, o.ChangeStatus(order.StatusPaid))

		err := o.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("replaces items and validates per-item transitions", func(t *testing.T) {
		original := newTestItem(t, "Steak", order.ItemStatusPreparing)
		o := newDineInOrder(t, order.StatusKitchenTicketed, original)

		// same item moved forward plus a new addition
		updated, err := order.RestoreItem(original.ID(), original.Name(), original.Quantity(),
			original.UnitPrice(), original.Notes(), order.ItemStatusCompleted)
		require.NoError(t, err)
		added := newTestItem(t, "Salad", order.ItemStatusPending)

		require.NoError(t, o.ReplaceItems([]*order.Item{updated, added}))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, order.ItemStatusCompleted, o.Items()[0].Status())
	})

	t.Run("rejects backwards item transitions", func(t *testing.T) {
		original := newTestItem(t, "Steak", order.ItemStatusPreparing)
		o := newDineInOrder(t, order.StatusKitchenTicketed, original)

		reverted, err := order.RestoreItem(original.ID(), original.Name(), original.Quantity(),
			original.UnitPrice(), original.Notes(), order.ItemStatusPending)
		require.NoError(t, err)

		err = o.ReplaceItems([]*order.Item{reverted})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("terminal orders cannot change items", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusSaved)
		require.NoError(t, o.ChangeStatus(order.StatusPaid))

		err := o.ReplaceItems([]*order.Item{newTestItem(t, "Salad", order.ItemStatusPending)})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusPending)
		err := o.ReplaceItems(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_AssignToken(t *testing.T) {
	newTakeaway := func(t *testing.T) *order.Order {
		t.Helper()
		items := []*order.Item{newTestItem(t, "Burger", order.ItemStatusPending)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelQuickService,
			order.TypeTakeaway, nil, nil, items, order.StatusSaved, kernel.ZeroMoney())
		require.NoError(t, err)
		return o
	}

	t.Run("assigns a token once", func(t *testing.T) {
		o := newTakeaway(t)
		require.NoError(t, o.AssignToken(7))
		require.NotNil(t, o.Token())
		assert.Equal(t, 7, *o.Token())

		err := o.AssignToken(8)
		require.Error(t, err)
	})

	t.Run("rejects non-positive tokens", func(t *testing.T) {
		o := newTakeaway(t)
		assert.Error(t, o.AssignToken(0))
	})

	t.Run("dine-in orders carry no token", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusPending)
		err := o.AssignToken(1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_IsKitchenVisible(t *testing.T) {
	t.Run("ticketed orders are visible", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusKitchenTicketed)
		assert.True(t, o.IsKitchenVisible())
	})

	t.Run("paid orders with preparing items remain visible", func(t *testing.T) {
		preparing := newTestItem(t, "Steak", order.ItemStatusPreparing)
		o := newDineInOrder(t, order.StatusKitchenTicketed, preparing)
		require.NoError(t, o.ChangeStatus(order.StatusPaid))

		assert.True(t, o.IsKitchenVisible())
	})

	t.Run("saved orders are not visible", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusSaved)
		assert.False(t, o.IsKitchenVisible())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores without side effects", func(t *testing.T) {
		pending := newTestItem(t, "Soup", order.ItemStatusPending)
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		token := 12

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelQuickService,
			order.TypeTakeaway, nil, &token, nil, []*order.Item{pending},
			order.StatusKitchenTicketed, kernel.ZeroMoney(), createdAt, createdAt)

		require.NoError(t, err)
		// restore takes stored state as-is: no pending items are fired
		assert.Equal(t, order.ItemStatusPending, o.Items()[0].Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.Token())
		assert.Equal(t, 12, *o.Token())
	})

	t.Run("validates structural invariants", func(t *testing.T) {
		items := []*order.Item{newTestItem(t, "Soup", order.ItemStatusPending)}
		now := time.Now().UTC()

		_, err := order.RestoreOrder(kernel.UUID{}, kernel.NewUUID(), order.ChannelFloorManager,
			order.TypeDineIn, nil, nil, nil, items, order.StatusPending, kernel.ZeroMoney(), now, now)
		require.Error(t, err)
	})
}

func TestOrder_Money(t *testing.T) {
	t.Run("money is stored as provided", func(t *testing.T) {
		money, err := kernel.NewMoney(
			decimal.RequireFromString("20.00"),
			decimal.RequireFromString("2.00"),
			decimal.RequireFromString("0.90"),
			decimal.RequireFromString("18.90"),
		)
		require.NoError(t, err)

		items := []*order.Item{newTestItem(t, "Soup", order.ItemStatusPending)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.ChannelFloorManager,
			order.TypeDineIn, nil, nil, items, order.StatusPending, money)
		require.NoError(t, err)

		assert.True(t, o.Money().IsEqual(money))
	})

	t.Run("terminal orders cannot change money", func(t *testing.T) {
		o := newDineInOrder(t, order.StatusSaved)
		require.NoError(t, o.ChangeStatus(order.StatusPaid))

		err := o.UpdateMoney(kernel.ZeroMoney())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}
