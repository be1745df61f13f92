package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
)

// ListTablesQueryHandler reads the floor map from the database.
type ListTablesQueryHandler struct {
	db *gorm.DB
}

// NewListTablesQueryHandler creates a handler for floor-map queries.
func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

// Handle executes the query. Tables are sorted by area, then name, matching
// how floor plans are laid out on the terminals.
func (h ListTablesQueryHandler) Handle(
	ctx context.Context,
	query ListTablesQuery,
) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			area,
			capacity,
			status,
			active_order_id,
			updated_at
		FROM tables
		WHERE tenant_id = ?
		ORDER BY area, name
	`, query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]TableResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			name          string
			area          string
			capacity      int
			status        string
			activeOrderID uuid.NullUUID
			updatedAt     time.Time
		)

		if err = rows.Scan(&id, &name, &area, &capacity, &status, &activeOrderID, &updatedAt); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		response := TableResponse{
			ID:        tableID,
			Name:      name,
			Area:      area,
			Capacity:  capacity,
			Status:    status,
			UpdatedAt: updatedAt,
		}
		if activeOrderID.Valid {
			orderID, oidErr := kernel.UUIDFromBytes(activeOrderID.UUID[:])
			if oidErr != nil {
				return nil, oidErr
			}
			response.ActiveOrderID = &orderID
		}

		tables = append(tables, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
