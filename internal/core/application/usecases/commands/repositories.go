// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordernotify/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
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

	// TemplateRepoFactory provides access to the template repository within a transaction.
	TemplateRepoFactory interface {
		TemplateRepository() ports.TemplateRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotifyUoW manages transactions for the notification pipeline, which
	// reads templates and settings alongside the order it mutates.
	NotifyUoW interface {
		TxManager
		OrderRepoFactory
		TemplateRepoFactory
		SettingsRepoFactory
	}

	// NotifyUoWFactory creates new notification unit of work instances.
	NotifyUoWFactory interface {
		Create() NotifyUoW
	}
)
