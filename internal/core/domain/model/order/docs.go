// Package order provides domain entities and business logic for order management
// in the restaurant platform. It implements the Order aggregate root with a
// two-axis state machine: the order status and the preparation status of each
// line item.
//
// The package includes:
//   - Order: The aggregate root managing identity, channel rules, line items,
//     monetary breakdown, and lifecycle transitions
//   - Status: The order state machine
//     (Pending -> {Saved, KitchenTicketed} -> Paid; any non-terminal -> Cancelled)
//   - Item / ItemStatus: Line items with forward-only preparation states
//     (Pending -> Preparing -> Completed; Cancelled reachable from any state)
//   - Channel / Type: The originating terminal and the fulfillment mode
//
// Key business rules:
//   - Paid and Cancelled are terminal; no mutation of a terminal order is allowed
//   - Entering KitchenTicketed, or originating from the QuickService channel,
//     forces every Pending item to Preparing
//   - Cancelling an order forces every item to Cancelled regardless of state
//   - Dine-in orders may reference a table; takeaway orders may carry a daily
//     queue token; delivery orders must reference a customer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
