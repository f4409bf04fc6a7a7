package queries

import (
	"context"

	"ordernotify/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryResponse holds the dashboard counters.
type GetDashboardMetricsQueryResponse struct {
	// Total is the number of non-archived orders.
	Total int
	// ByStatus maps each live lifecycle status to its order count. Statuses
	// with no orders are present with a zero count.
	ByStatus map[order.AppStatus]int
	// Archived is the number of archived orders, counted separately.
	Archived int
}

// GetDashboardMetricsQueryHandler computes the dashboard counters with a
// single grouped count over the orders table.
type GetDashboardMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardMetricsQueryHandler creates a handler for metrics queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{db: db}
}

// Handle executes the metrics query.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	resp := GetDashboardMetricsQueryResponse{
		ByStatus: make(map[order.AppStatus]int, len(order.AllAppStatuses())),
	}
	for _, status := range order.AllAppStatuses() {
		if status == order.Archived {
			continue
		}
		resp.ByStatus[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			app_status,
			COUNT(*)
		FROM orders
		GROUP BY app_status
	`).Rows()
	if err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardMetricsQueryResponse{}, err
		}

		appStatus := order.AppStatus(status)
		if appStatus == order.Archived {
			resp.Archived = count
			continue
		}
		resp.ByStatus[appStatus] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	return resp, nil
}
