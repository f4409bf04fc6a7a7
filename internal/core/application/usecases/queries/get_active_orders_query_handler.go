package queries

import (
	"context"
	"time"

	"ordernotify/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryResponse is one row of the dashboard order listing.
// Carries the fields the listing renders directly; the full aggregate is
// only loaded when an order is opened.
type GetActiveOrdersQueryResponse struct {
	ID                  string
	CustomerName        string
	CustomerPhone       string
	City                string
	Price               float64
	CurrencySymbol      string
	OrderedAt           time.Time
	AppStatus           order.AppStatus
	MessageStatus       order.MessageStatus
	TrackingNumber      string
	LatestCourierStatus string
}

// GetActiveOrdersQueryHandler reads the order listing from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first so the
// dashboard leads with the orders most likely to need attention.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_city,
			customer_price,
			customer_currency_symbol,
			ordered_at,
			app_status,
			message_status,
			tracking_number,
			latest_courier_status
		FROM orders
		WHERE app_status != ?
		ORDER BY ordered_at DESC, id
	`
	excluded := order.Archived
	if query.IncludeArchived() {
		excluded = order.AppStatusUnknown
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, excluded).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var appStatus, messageStatus int

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.City,
			&resp.Price,
			&resp.CurrencySymbol,
			&resp.OrderedAt,
			&appStatus,
			&messageStatus,
			&resp.TrackingNumber,
			&resp.LatestCourierStatus,
		)
		if err != nil {
			return nil, err
		}

		resp.AppStatus = order.AppStatus(appStatus)
		resp.MessageStatus = order.MessageStatus(messageStatus)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
