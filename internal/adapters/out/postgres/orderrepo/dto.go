// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordernotify/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and both histories are stored as JSON documents inside the order row:
// they are only ever read back as part of the whole aggregate, never queried
// on their own.
type OrderDTO struct {
	ID                     string      `gorm:"primaryKey"`
	Customer               CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Items                  []byte      `gorm:"type:jsonb"`
	OrderedAt              time.Time   `gorm:"index"`
	AppStatus              int         `gorm:"index"`
	MessageStatus          int         `gorm:"index"`
	MessageSentAt          *time.Time
	TrackingNumber         string `gorm:"index"`
	CourierHistory         []byte `gorm:"type:jsonb"`
	LatestCourierStatus    string
	OutForDeliveryNotified bool
	AddressIssueNotified   bool
	MessageHistory         []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer details within the order table.
type CustomerDTO struct {
	Name           string
	Phone          string
	Address        string
	City           string
	PaymentMethod  string
	DeliveryMethod string
	CurrencySymbol string
	Price          float64
}

type itemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type courierEventDTO struct {
	Timestamp  time.Time `json:"timestamp"`
	StatusText string    `json:"statusText"`
}

type historyEntryDTO struct {
	Timestamp      time.Time `json:"timestamp"`
	Action         string    `json:"action"`
	ContentSnippet string    `json:"contentSnippet"`
	Actor          string    `json:"actor"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{Name: item.Name, Quantity: item.Quantity})
	}

	courierHistory := make([]courierEventDTO, 0, len(aggregate.CourierHistory()))
	for _, event := range aggregate.CourierHistory() {
		courierHistory = append(courierHistory, courierEventDTO{
			Timestamp:  event.Timestamp,
			StatusText: event.StatusText,
		})
	}

	messageHistory := make([]historyEntryDTO, 0, len(aggregate.MessageHistory()))
	for _, entry := range aggregate.MessageHistory() {
		messageHistory = append(messageHistory, historyEntryDTO{
			Timestamp:      entry.Timestamp,
			Action:         entry.Action,
			ContentSnippet: entry.ContentSnippet,
			Actor:          entry.Actor,
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}
	courierJSON, err := json.Marshal(courierHistory)
	if err != nil {
		return OrderDTO{}, err
	}
	messageJSON, err := json.Marshal(messageHistory)
	if err != nil {
		return OrderDTO{}, err
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID: aggregate.ID(),
		Customer: CustomerDTO{
			Name:           customer.Name,
			Phone:          customer.Phone,
			Address:        customer.Address,
			City:           customer.City,
			PaymentMethod:  customer.PaymentMethod,
			DeliveryMethod: customer.DeliveryMethod,
			CurrencySymbol: customer.CurrencySymbol,
			Price:          customer.Price,
		},
		Items:                  itemsJSON,
		OrderedAt:              aggregate.OrderedAt(),
		AppStatus:              int(aggregate.AppStatus()),
		MessageStatus:          int(aggregate.MessageStatus()),
		MessageSentAt:          aggregate.MessageSentAt(),
		TrackingNumber:         aggregate.TrackingNumber(),
		CourierHistory:         courierJSON,
		LatestCourierStatus:    aggregate.LatestCourierStatus(),
		OutForDeliveryNotified: aggregate.OutForDeliveryNotified(),
		AddressIssueNotified:   aggregate.AddressIssueNotified(),
		MessageHistory:         messageJSON,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both histories using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var itemDTOs []itemDTO
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}
	items := make([]order.Item, 0, len(itemDTOs))
	for _, item := range itemDTOs {
		items = append(items, order.Item{Name: item.Name, Quantity: item.Quantity})
	}

	var courierDTOs []courierEventDTO
	if len(dto.CourierHistory) > 0 {
		if err := json.Unmarshal(dto.CourierHistory, &courierDTOs); err != nil {
			return nil, err
		}
	}
	courierHistory := make([]order.CourierEvent, 0, len(courierDTOs))
	for _, event := range courierDTOs {
		courierHistory = append(courierHistory, order.CourierEvent{
			Timestamp:  event.Timestamp,
			StatusText: event.StatusText,
		})
	}

	var entryDTOs []historyEntryDTO
	if len(dto.MessageHistory) > 0 {
		if err := json.Unmarshal(dto.MessageHistory, &entryDTOs); err != nil {
			return nil, err
		}
	}
	messageHistory := make([]order.HistoryEntry, 0, len(entryDTOs))
	for _, entry := range entryDTOs {
		messageHistory = append(messageHistory, order.HistoryEntry{
			Timestamp:      entry.Timestamp,
			Action:         entry.Action,
			ContentSnippet: entry.ContentSnippet,
			Actor:          entry.Actor,
		})
	}

	return order.RestoreOrder(
		dto.ID,
		order.CustomerDetails{
			Name:           dto.Customer.Name,
			Phone:          dto.Customer.Phone,
			Address:        dto.Customer.Address,
			City:           dto.Customer.City,
			PaymentMethod:  dto.Customer.PaymentMethod,
			DeliveryMethod: dto.Customer.DeliveryMethod,
			CurrencySymbol: dto.Customer.CurrencySymbol,
			Price:          dto.Customer.Price,
		},
		items,
		dto.OrderedAt,
		order.AppStatus(dto.AppStatus),
		order.MessageStatus(dto.MessageStatus),
		dto.MessageSentAt,
		dto.TrackingNumber,
		courierHistory,
		dto.LatestCourierStatus,
		dto.OutForDeliveryNotified,
		dto.AddressIssueNotified,
		messageHistory,
	)
}
