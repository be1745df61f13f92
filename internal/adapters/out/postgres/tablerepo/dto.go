// Package tablerepo provides persistence for the table occupancy ledger.
// Besides the usual CRUD surface it implements the atomic attach that
// serializes concurrent dine-in submissions for the same table.
package tablerepo

import (
	"time"

	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableDTO represents the database structure for persisting table aggregates.
type TableDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID  `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(64)"`
	Area          string     `gorm:"type:varchar(64)"`
	Capacity      int
	Status        string     `gorm:"type:varchar(32)"`
	ActiveOrderID *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for table entities.
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(aggregate *table.Table) TableDTO {
	dto := TableDTO{
		ID:        aggregate.ID().Bytes(),
		TenantID:  aggregate.TenantID().Bytes(),
		Name:      aggregate.Name(),
		Area:      aggregate.Area(),
		Capacity:  aggregate.Capacity(),
		Status:    aggregate.Status().String(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	if id := aggregate.ActiveOrderID(); id != nil {
		raw := id.Bytes()
		dto.ActiveOrderID = &raw
	}
	return dto
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	status, err := table.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		oid, oidErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if oidErr != nil {
			return nil, oidErr
		}
		activeOrderID = &oid
	}

	return table.RestoreTable(id, tenantID, dto.Name, dto.Area, dto.Capacity, status, activeOrderID, dto.UpdatedAt)
}
