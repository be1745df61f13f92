package customerrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("name", "phone", "email", "address").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*customer.Customer, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByContact looks a customer up by phone first, then by email. Returns
// nil without error when neither matches; the caller decides whether that
// means creating a new record.
func (r *GormCustomerRepository) FindByContact(ctx context.Context, tenantID kernel.UUID,
	phone, email string) (*customer.Customer, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	phone = strings.TrimSpace(phone)
	email = strings.ToLower(strings.TrimSpace(email))

	if phone != "" {
		found, err := r.findBy(ctx, tenantID, "phone = ?", phone)
		if err != nil || found != nil {
			return found, err
		}
	}
	if email != "" {
		return r.findBy(ctx, tenantID, "email = ?", email)
	}
	return nil, nil
}

func (r *GormCustomerRepository) findBy(ctx context.Context, tenantID kernel.UUID,
	condition string, value string) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID.Bytes()).
		Where(condition, value).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entity, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return entity, nil
}
