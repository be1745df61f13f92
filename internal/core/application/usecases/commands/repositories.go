// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// TokenRepoFactory provides access to the token repository within a transaction.
	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// DineInUoW manages transactions for dine-in submissions, order updates
	// and cancellations. These operations touch the order and, when the order
	// is seated at a table, the table occupancy ledger in the same transaction.
	DineInUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// DineInUoWFactory creates new dine-in unit of work instances.
	DineInUoWFactory interface {
		Create() DineInUoW
	}

	// TakeawayUoW manages transactions for takeaway submissions, which draw a
	// pickup token and persist the order atomically.
	TakeawayUoW interface {
		TxManager
		OrderRepoFactory
		TokenRepoFactory
	}

	// TakeawayUoWFactory creates new takeaway unit of work instances.
	TakeawayUoWFactory interface {
		Create() TakeawayUoW
	}

	// DeliveryUoW manages transactions for delivery and web submissions,
	// which resolve or create the customer alongside the order.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// TokenUoW manages transactions for token-counter maintenance.
	TokenUoW interface {
		TxManager
		TokenRepoFactory
	}

	// TokenUoWFactory creates new token unit of work instances.
	TokenUoWFactory interface {
		Create() TokenUoW
	}
)
