package table

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Status is the coarse occupancy state of a table as shown on the floor map.
type Status int

const (
	StatusUnknown Status = iota
	StatusEmpty
	StatusSaved
	StatusKitchenTicketed
	StatusPaidPendingClear
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusEmpty:            "empty",
		StatusSaved:            "saved",
		StatusKitchenTicketed:  "kitchen_ticketed",
		StatusPaidPendingClear: "paid_pending_clear",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"empty":              StatusEmpty,
		"saved":              StatusSaved,
		"kitchen_ticketed":   StatusKitchenTicketed,
		"paid_pending_clear": StatusPaidPendingClear,
	}
}

func StatusFromString(name string) (Status, error) {
	if status, ok := getValidStatusStrings()[name]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// StatusForOrder maps an order's status to the table status that mirrors it.
// A pending order keeps the table in Saved: the table is occupied either way
// and the distinction only matters on the order itself. PaidPendingClear only
// arises when an order is seated already paid; settling an order that holds
// the table clears it instead (see MirrorOrderStatus). Returns StatusUnknown
// for statuses with no occupancy mapping, including Cancelled.
func StatusForOrder(orderStatus order.Status) Status {
	switch orderStatus {
	case order.StatusPending, order.StatusSaved:
		return StatusSaved
	case order.StatusKitchenTicketed:
		return StatusKitchenTicketed
	case order.StatusPaid:
		return StatusPaidPendingClear
	default:
		return StatusUnknown
	}
}
