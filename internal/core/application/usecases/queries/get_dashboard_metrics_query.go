package queries

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var (
	ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
		"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
	)
)

// GetDashboardMetricsQuery retrieves order counts per lifecycle status for the
// dashboard header. Archived orders are counted separately and never mixed
// into the live totals.
//
// Example:
//
//	query := NewGetDashboardMetricsQuery()
//	handler := NewGetDashboardMetricsQueryHandler(db)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting confirmation\n",
//	    metrics.ByStatus[order.PendingConfirmation])
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a parameterless metrics query.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardMetricsQueryIsNotConstructed if validation fails.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}
