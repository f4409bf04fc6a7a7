package services_test

import (
	"testing"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestStatusClassifierClassify(t *testing.T) {
	classifier := services.NewStatusClassifier()

	tests := []struct {
		name       string
		statusText string
		current    order.AppStatus
		want       order.AppStatus
	}{
		{"delivered keyword", "Delivered Successfully", order.InTransit, order.Delivered},
		{"delivered keyword case insensitive", "parcel DELIVERED SUCCESSFULLY today", order.OutForDelivery, order.Delivered},
		{"out for delivery keyword", "Shipment Out for Delivery", order.InTransit, order.OutForDelivery},
		{"address needed keyword", "Address Information Needed", order.InTransit, order.AddressIssue},
		{"incomplete address keyword", "Delivery Attempted - Incomplete Address", order.OutForDelivery, order.AddressIssue},
		{"premises closed keyword", "Recipient Premises Closed", order.InTransit, order.AddressIssue},
		{"no answer keyword", "Delivery attempt failed: no answer", order.InTransit, order.AddressIssue},
		{"delivered outranks out for delivery", "Out for Delivery then Delivered Successfully", order.InTransit, order.Delivered},
		{"unmatched falls through to in transit", "Departed from Lahore Hub", order.OutForDelivery, order.InTransit},
		{"unmatched keeps dispatched", "Booked", order.Dispatched, order.Dispatched},
		{"unmatched keeps processing", "Arrived at Origin Station", order.Processing, order.Processing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.statusText, tt.current))
		})
	}
}

func TestIndicatesPremisesClosed(t *testing.T) {
	assert.True(t, services.IndicatesPremisesClosed("Recipient Premises Closed"))
	assert.True(t, services.IndicatesPremisesClosed("delivery failed, premises closed"))
	assert.False(t, services.IndicatesPremisesClosed("No Answer at door"))
	assert.False(t, services.IndicatesPremisesClosed("Consignee No Answer at given address"))
	assert.False(t, services.IndicatesPremisesClosed("Incomplete Address"))
	assert.False(t, services.IndicatesPremisesClosed(""))
}

func TestIndicatesPickup(t *testing.T) {
	assert.True(t, services.IndicatesPickup("Booked"))
	assert.True(t, services.IndicatesPickup("Shipment Picked Up by rider"))
	assert.False(t, services.IndicatesPickup("In Transit"))
}
