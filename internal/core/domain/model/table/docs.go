// Package table provides the Table aggregate of the shared table-occupancy
// ledger. Each table belongs to a named area of a tenant's floor plan, holds
// at most one active order reference, and carries a coarse status that always
// mirrors the referenced order's status.
//
// Key invariant: the order reference is nil if and only if the table status is
// Empty. The dine-in controller is the only writer; it attaches an order when
// seating a table, mirrors the order's status on every update, and clears the
// table when the order is paid or cancelled.
package table
