package ws

import (
	"restaurant/internal/core/ports"
)

// eventMessage is the JSON frame pushed to a terminal. Identifiers travel
// as strings so the screens never have to deal with binary UUIDs.
type eventMessage struct {
	Type      string        `json:"type"`
	TenantID  string        `json:"tenant_id"`
	OrderID   string        `json:"order_id"`
	OrderType string        `json:"order_type"`
	Status    string        `json:"status"`
	Token     *int          `json:"token,omitempty"`
	TableID   *string       `json:"table_id,omitempty"`
	Items     []itemMessage `json:"items"`
}

type itemMessage struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	Status   string `json:"status"`
}

func newEventMessage(event ports.KitchenEvent) eventMessage {
	msg := eventMessage{
		Type:      "ticket",
		TenantID:  event.TenantID.String(),
		OrderID:   event.OrderID.String(),
		OrderType: event.OrderType,
		Status:    event.Status,
		Token:     event.Token,
		Items:     make([]itemMessage, 0, len(event.Items)),
	}

	if event.TableID != nil {
		tableID := event.TableID.String()
		msg.TableID = &tableID
	}

	for _, item := range event.Items {
		msg.Items = append(msg.Items, itemMessage{
			ID:       item.ID.String(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Status:   item.Status,
		})
	}

	return msg
}
