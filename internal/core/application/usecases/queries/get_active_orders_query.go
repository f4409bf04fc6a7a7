// Package queries contains read-only operations for dashboards and listings.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return flat response models, bypassing the aggregate.
package queries

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves orders for the operational dashboard.
// Archived orders are excluded by default; the include-archived variant
// returns the full book for audit views.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d orders in play\n", len(orders))
type GetActiveOrdersQuery struct {
	includeArchived bool

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for all non-archived orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetActiveOrdersQueryWithArchived creates a query that also returns
// archived orders.
func NewGetActiveOrdersQueryWithArchived() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{includeArchived: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// IncludeArchived reports whether archived orders are part of the result.
func (q GetActiveOrdersQuery) IncludeArchived() bool {
	return q.includeArchived
}
