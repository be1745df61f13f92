package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// ListOpenTicketsQueryHandler reads open kitchen tickets straight from the
// database. A ticket is an order in kitchen_ticketed status, or a paid order
// that still has a preparing item (settled early but not yet cooked).
type ListOpenTicketsQueryHandler struct {
	db *gorm.DB
}

// NewListOpenTicketsQueryHandler creates a handler for open-ticket queries.
func NewListOpenTicketsQueryHandler(db *gorm.DB) ListOpenTicketsQueryHandler {
	return ListOpenTicketsQueryHandler{db: db}
}

// Handle executes the query. Tickets are ordered by submission time, items
// keep their insertion order within each ticket.
func (h ListOpenTicketsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenTicketsQuery,
) ([]TicketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_type,
			o.status,
			o.token,
			o.table_id,
			i.id,
			i.name,
			i.quantity,
			i.notes,
			i.status
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.tenant_id = ?
		  AND (o.status = ?
		       OR (o.status = ? AND EXISTS (
		           SELECT 1 FROM order_items p
		           WHERE p.order_id = o.id AND p.status = ?)))
		ORDER BY o.created_at, o.id, i.position
	`,
		query.TenantID().Bytes(),
		order.StatusKitchenTicketed.String(),
		order.StatusPaid.String(),
		order.ItemStatusPreparing.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]TicketResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			orderID    uuid.UUID
			orderType  string
			status     string
			token      sql.NullInt64
			tableID    uuid.NullUUID
			itemID     uuid.UUID
			name       string
			quantity   int
			notes      sql.NullString
			itemStatus string
		)

		if err = rows.Scan(&orderID, &orderType, &status, &token, &tableID,
			&itemID, &name, &quantity, &notes, &itemStatus); err != nil {
			return nil, err
		}

		pos, seen := index[orderID]
		if !seen {
			id, idErr := kernel.UUIDFromBytes(orderID[:])
			if idErr != nil {
				return nil, idErr
			}

			ticket := TicketResponse{
				OrderID:   id,
				OrderType: orderType,
				Status:    status,
			}
			if token.Valid {
				value := int(token.Int64)
				ticket.Token = &value
			}
			if tableID.Valid {
				tid, tidErr := kernel.UUIDFromBytes(tableID.UUID[:])
				if tidErr != nil {
					return nil, tidErr
				}
				ticket.TableID = &tid
			}

			pos = len(tickets)
			tickets = append(tickets, ticket)
			index[orderID] = pos
		}

		lineID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		tickets[pos].Items = append(tickets[pos].Items, TicketItemResponse{
			ID:       lineID,
			Name:     name,
			Quantity: quantity,
			Notes:    notes.String,
			Status:   itemStatus,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
