// Package ports defines the contracts between the orchestration core and the
// outside world: persistence, the courier status feed, and the notification
// gateway. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordernotify/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle and notification state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns the complete order with both histories restored.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAllTrackable retrieves all orders with an assigned tracking number
	// whose lifecycle status is not terminal. The courier polling job walks
	// this set each cycle.
	GetAllTrackable(ctx context.Context) ([]*order.Order, error)

	// GetAllAwaitingReminder retrieves orders still pending customer
	// confirmation whose last notification went out at or before the cutoff.
	// The reminder job uses this to find overdue confirmations.
	GetAllAwaitingReminder(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
