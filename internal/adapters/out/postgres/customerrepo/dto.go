// Package customerrepo provides persistence for customer records.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;index:idx_customers_tenant_phone,priority:1;index:idx_customers_tenant_email,priority:1"`
	Name      string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32);index:idx_customers_tenant_phone,priority:2"`
	Email     string    `gorm:"type:varchar(255);index:idx_customers_tenant_email,priority:2"`
	Address   string
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        entity.ID().Bytes(),
		TenantID:  entity.TenantID().Bytes(),
		Name:      entity.Name(),
		Phone:     entity.Phone(),
		Email:     entity.Email(),
		Address:   entity.Address(),
		CreatedAt: entity.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, tenantID, dto.Name, dto.Phone, dto.Email, dto.Address, dto.CreatedAt)
}
