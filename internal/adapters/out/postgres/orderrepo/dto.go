// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their line items live in separate tables;
// the aggregate is always loaded and stored whole.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index:idx_orders_tenant_status,priority:1"`
	Channel    string     `gorm:"type:varchar(32)"`
	OrderType  string     `gorm:"type:varchar(32)"`
	TableID    *uuid.UUID `gorm:"type:uuid;index"`
	Token      *int
	CustomerID *uuid.UUID      `gorm:"type:uuid;index"`
	Status     string          `gorm:"type:varchar(32);index:idx_orders_tenant_status,priority:2"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. Position preserves the
// submission order of lines across updates.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"type:varchar(255)"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     string
	Status    string `gorm:"type:varchar(32);index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		TenantID:  aggregate.TenantID().Bytes(),
		Channel:   aggregate.Channel().String(),
		OrderType: aggregate.Type().String(),
		Token:     aggregate.Token(),
		Status:    aggregate.Status().String(),
		Subtotal:  aggregate.Money().Subtotal(),
		Discount:  aggregate.Money().Discount(),
		Tax:       aggregate.Money().Tax(),
		Total:     aggregate.Money().Total(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		dto.TableID = &raw
	}
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.CustomerID = &raw
	}

	for position, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   dto.ID,
			Position:  position,
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Notes:     item.Notes(),
			Status:    item.Status().String(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromString(dto.Channel)
	if err != nil {
		return nil, err
	}
	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tid, tidErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tidErr != nil {
			return nil, tidErr
		}
		tableID = &tid
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cid, cidErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if cidErr != nil {
			return nil, cidErr
		}
		customerID = &cid
	}

	money, err := kernel.NewMoney(dto.Subtotal, dto.Discount, dto.Tax, dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, tenantID, channel, orderType, tableID, dto.Token,
		customerID, items, status, money, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, dto.Name, dto.Quantity, dto.UnitPrice, dto.Notes, status)
}
