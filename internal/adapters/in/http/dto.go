package http

import (
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemRequest is one order line as submitted by a POS client or the web
// widget. ID is present only when referencing an existing line in an update.
type ItemRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
}

// MoneyRequest carries client-computed totals as decimal strings.
type MoneyRequest struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type SubmitDineInRequest struct {
	TableID string        `json:"table_id"`
	Channel string        `json:"channel"`
	Status  string        `json:"status"`
	Items   []ItemRequest `json:"items"`
	Money   MoneyRequest  `json:"money"`
}

type SubmitTakeawayRequest struct {
	Channel string        `json:"channel"`
	Status  string        `json:"status"`
	Items   []ItemRequest `json:"items"`
	Money   MoneyRequest  `json:"money"`
}

type SubmitDeliveryRequest struct {
	Channel  string          `json:"channel"`
	Status   string          `json:"status"`
	Items    []ItemRequest   `json:"items"`
	Money    MoneyRequest    `json:"money"`
	Customer CustomerRequest `json:"customer"`
}

// SubmitWebOrderRequest arrives from the public widget. The channel is
// implied, everything else matches a delivery submission.
type SubmitWebOrderRequest struct {
	Status   string          `json:"status"`
	Items    []ItemRequest   `json:"items"`
	Money    MoneyRequest    `json:"money"`
	Customer CustomerRequest `json:"customer"`
}

// UpdateOrderRequest is a partial update. Absent fields keep stored values.
type UpdateOrderRequest struct {
	Status string        `json:"status,omitempty"`
	Items  []ItemRequest `json:"items,omitempty"`
	Money  *MoneyRequest `json:"money,omitempty"`
}

type SubmitOrderResponse struct {
	OrderID string `json:"order_id"`
}

type SubmitTakeawayResponse struct {
	OrderID string `json:"order_id"`
	Token   int    `json:"token"`
}

type SubmitDeliveryResponse struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
}

type TicketItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	Status   string `json:"status"`
}

type TicketResponse struct {
	OrderID   string               `json:"order_id"`
	OrderType string               `json:"order_type"`
	Status    string               `json:"status"`
	Token     *int                 `json:"token,omitempty"`
	TableID   *string              `json:"table_id,omitempty"`
	Items     []TicketItemResponse `json:"items"`
}

type TableResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Area          string    `json:"area"`
	Capacity      int       `json:"capacity"`
	Status        string    `json:"status"`
	ActiveOrderID *string   `json:"active_order_id,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Error is the uniform error body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func itemParams(items []ItemRequest) ([]commands.ItemParam, error) {
	params := make([]commands.ItemParam, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("unit_price", err)
		}

		param := commands.ItemParam{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Notes:     item.Notes,
			Status:    item.Status,
		}

		if item.ID != "" {
			id, idErr := kernel.UUIDFromString(item.ID)
			if idErr != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("item id", idErr)
			}
			param.ID = &id
		}

		params = append(params, param)
	}

	return params, nil
}

func moneyParam(money MoneyRequest) (commands.MoneyParam, error) {
	subtotal, err := decimal.NewFromString(money.Subtotal)
	if err != nil {
		return commands.MoneyParam{}, errs.NewValueIsInvalidErrorWithCause("subtotal", err)
	}
	discount, err := decimal.NewFromString(money.Discount)
	if err != nil {
		return commands.MoneyParam{}, errs.NewValueIsInvalidErrorWithCause("discount", err)
	}
	tax, err := decimal.NewFromString(money.Tax)
	if err != nil {
		return commands.MoneyParam{}, errs.NewValueIsInvalidErrorWithCause("tax", err)
	}
	total, err := decimal.NewFromString(money.Total)
	if err != nil {
		return commands.MoneyParam{}, errs.NewValueIsInvalidErrorWithCause("total", err)
	}

	return commands.MoneyParam{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}, nil
}

func customerParam(customer CustomerRequest) commands.CustomerParam {
	return commands.CustomerParam{
		Name:    customer.Name,
		Phone:   customer.Phone,
		Email:   customer.Email,
		Address: customer.Address,
	}
}

func ticketResponses(tickets []queries.TicketResponse) []TicketResponse {
	response := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		out := TicketResponse{
			OrderID:   ticket.OrderID.String(),
			OrderType: ticket.OrderType,
			Status:    ticket.Status,
			Token:     ticket.Token,
			Items:     make([]TicketItemResponse, 0, len(ticket.Items)),
		}
		if ticket.TableID != nil {
			tableID := ticket.TableID.String()
			out.TableID = &tableID
		}
		for _, item := range ticket.Items {
			out.Items = append(out.Items, TicketItemResponse{
				ID:       item.ID.String(),
				Name:     item.Name,
				Quantity: item.Quantity,
				Notes:    item.Notes,
				Status:   item.Status,
			})
		}
		response = append(response, out)
	}

	return response
}

func tableResponses(tables []queries.TableResponse) []TableResponse {
	response := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		out := TableResponse{
			ID:        t.ID.String(),
			Name:      t.Name,
			Area:      t.Area,
			Capacity:  t.Capacity,
			Status:    t.Status,
			UpdatedAt: t.UpdatedAt,
		}
		if t.ActiveOrderID != nil {
			orderID := t.ActiveOrderID.String()
			out.ActiveOrderID = &orderID
		}
		response = append(response, out)
	}

	return response
}
