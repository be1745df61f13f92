package tablerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table to the database.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing table to the database.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("name", "area", "status", "active_order_id", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a table by ID.
func (r *GormTableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every table of a tenant ordered by area and name.
func (r *GormTableRepository) GetAll(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TableDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID.Bytes()).
		Order("area, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tables = append(tables, aggregate)
	}
	return tables, nil
}

// TryAttachOrder performs the compare-and-set that decides which order holds
// a table. The swap succeeds only when active_order_id is still NULL, so of
// two racing submissions exactly one sees a rows-affected of 1. The loser
// re-reads the table and merges into the winning order.
func (r *GormTableRepository) TryAttachOrder(ctx context.Context, tenantID, tableID, orderID kernel.UUID,
	status table.Status) (bool, error) {
	if err := tenantID.Validate(); err != nil {
		return false, err
	}
	if err := tableID.Validate(); err != nil {
		return false, err
	}
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := status.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ? AND tenant_id = ? AND active_order_id IS NULL",
			tableID.Bytes(), tenantID.Bytes()).
		Updates(map[string]any{
			"active_order_id": orderID.Bytes(),
			"status":          status.String(),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 1 {
		return true, nil
	}

	// Distinguish a lost race from a missing table.
	var count int64
	err := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ? AND tenant_id = ?", tableID.Bytes(), tenantID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, errs.NewObjectNotFoundError("table", tableID.String())
	}

	return false, nil
}
