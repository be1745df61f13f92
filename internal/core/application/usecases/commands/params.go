package commands

import (
	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// ItemParam carries one order line from the transport layer. On submission
// the Status field is ignored: new items always enter in pending (quick
// service fires them inside the aggregate). On update, an empty Status keeps
// the stored status of a matched item.
type ItemParam struct {
	ID        *kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Notes     string
	Status    string
}

// MoneyParam carries the caller-computed totals. Totals are authoritative:
// pricing, discounts and tax live with the caller, the core only rejects
// negative components.
type MoneyParam struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (p MoneyParam) toMoney() (kernel.Money, error) {
	return kernel.NewMoney(p.Subtotal, p.Discount, p.Tax, p.Total)
}

// newPendingItems converts submission params into fresh pending items,
// minting IDs for params that carry none.
func newPendingItems(params []ItemParam) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(params))
	for _, p := range params {
		id := kernel.NewUUID()
		if p.ID != nil {
			id = *p.ID
		}
		item, err := order.NewItem(id, p.Name, p.Quantity, p.UnitPrice, p.Notes, order.ItemStatusPending)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// patchItems converts update params into the full replacement item list.
// Params whose ID matches an existing item are treated as updates and may
// move the item's status forward; params with no ID, or an unknown one, are
// additions entering in pending. Existing items absent from params are
// dropped from the returned list, which removes them on replace.
func patchItems(existing []*order.Item, params []ItemParam) ([]*order.Item, error) {
	byID := make(map[kernel.UUID]*order.Item, len(existing))
	for _, item := range existing {
		byID[item.ID()] = item
	}

	items := make([]*order.Item, 0, len(params))
	for _, p := range params {
		var current *order.Item
		if p.ID != nil {
			current = byID[*p.ID]
		}

		if current == nil {
			item, err := newPendingItems([]ItemParam{p})
			if err != nil {
				return nil, err
			}
			items = append(items, item[0])
			continue
		}

		status := current.Status()
		if p.Status != "" {
			parsed, err := order.ItemStatusFromString(p.Status)
			if err != nil {
				return nil, err
			}
			status = parsed
		}

		item, err := order.RestoreItem(*p.ID, p.Name, p.Quantity, p.UnitPrice, p.Notes, status)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// KitchenEventFromOrder flattens an order into the payload pushed to kitchen
// terminals. Also used to build the snapshot a terminal receives on attach.
func KitchenEventFromOrder(o *order.Order) ports.KitchenEvent {
	event := ports.KitchenEvent{
		TenantID:  o.TenantID(),
		OrderID:   o.ID(),
		OrderType: o.Type().String(),
		Status:    o.Status().String(),
		Token:     o.Token(),
		TableID:   o.TableID(),
	}
	for _, item := range o.Items() {
		event.Items = append(event.Items, ports.KitchenEventItem{
			ID:       item.ID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Notes:    item.Notes(),
			Status:   item.Status().String(),
		})
	}
	return event
}
