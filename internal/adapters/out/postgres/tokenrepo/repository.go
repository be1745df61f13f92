// Package tokenrepo implements the per-day takeaway token sequencer on a
// plain counter table. Each (tenant, channel, business day) triple owns one
// row; the increment is a single upsert, so concurrent submissions cannot
// observe the same value and a new day starts at 1 simply because its row
// does not exist.
package tokenrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// TokenCounterDTO represents one tenant-channel-day token counter row.
type TokenCounterDTO struct {
	TenantID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Channel     string    `gorm:"type:varchar(32);primaryKey"`
	BusinessDay string    `gorm:"type:date;primaryKey"`
	LastValue   int       `gorm:"not null"`
}

// TableName specifies the database table name for token counters.
func (TokenCounterDTO) TableName() string {
	return "token_counters"
}

// GormTokenRepository implements TokenRepository using GORM.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GORM token repository.
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// NextValue atomically increments and returns the counter for the tenant,
// channel and business day. The insert-or-bump runs as one statement; the
// row lock taken by the upsert serializes concurrent callers.
func (r *GormTokenRepository) NextValue(ctx context.Context, tenantID kernel.UUID, channel, businessDay string) (int, error) {
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}
	if channel == "" {
		return 0, errs.NewValueIsRequiredError("channel")
	}
	if _, err := time.Parse("2006-01-02", businessDay); err != nil {
		return 0, err
	}

	var next int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO token_counters (tenant_id, channel, business_day, last_value)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (tenant_id, channel, business_day)
		DO UPDATE SET last_value = token_counters.last_value + 1
		RETURNING last_value
	`, tenantID.Bytes(), channel, businessDay).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// DeleteBefore removes counters for business days older than the cutoff and
// returns how many rows went away.
func (r *GormTokenRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("business_day < ?", cutoff.UTC().Format("2006-01-02")).
		Delete(&TokenCounterDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
