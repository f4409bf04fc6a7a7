package order_test

import (
	"testing"
	"time"

	"ordernotify/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func validCustomer() order.CustomerDetails {
	return order.CustomerDetails{
		Name:           "Ahmed Khan",
		Phone:          "0300 1234567",
		Address:        "House 12, Street 4",
		City:           "Lahore",
		PaymentMethod:  "COD",
		DeliveryMethod: "TCS",
		CurrencySymbol: "Rs.",
		Price:          2500,
	}
}

func validItems() []order.Item {
	return []order.Item{
		{Name: "Blue Kurta", Quantity: 2},
		{Name: "Leather Sandals", Quantity: 1},
	}
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ORD-1001", validCustomer(), validItems(), "Admin", time.Now())
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("ORD-1001", validCustomer(), validItems(), "Admin", now)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-1001", o.ID())
		assert.Equal(t, order.PendingConfirmation, o.AppStatus())
		assert.Equal(t, order.MessagePending, o.MessageStatus())
		assert.Nil(t, o.MessageSentAt())
		assert.Equal(t, now, o.OrderedAt())
		assert.False(t, o.HasTrackingNumber())
		assert.Empty(t, o.CourierHistory())
		assert.False(t, o.OutForDeliveryNotified())
		assert.False(t, o.AddressIssueNotified())

		history := o.MessageHistory()
		require.Len(t, history, 1)
		assert.Equal(t, "System: Order Created", history[0].Action)
		assert.Equal(t, "Admin", history[0].Actor)
	})

	t.Run("should return error for empty id", func(t *testing.T) {
		o, err := order.NewOrder("", validCustomer(), validItems(), "Admin", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order id")
	})

	t.Run("should return error for empty customer name", func(t *testing.T) {
		customer := validCustomer()
		customer.Name = ""

		o, err := order.NewOrder("ORD-1001", customer, validItems(), "Admin", now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for invalid item", func(t *testing.T) {
		items := []order.Item{{Name: "Kurta", Quantity: 0}}

		o, err := order.NewOrder("ORD-1001", validCustomer(), items, "Admin", now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should allow empty items", func(t *testing.T) {
		o, err := order.NewOrder("ORD-1001", validCustomer(), nil, "Admin", now)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("should restore order without new history entries", func(t *testing.T) {
		sentAt := now.Add(-time.Hour)
		history := []order.HistoryEntry{{Timestamp: sentAt, Action: "System: Order Created", Actor: "Admin"}}
		events := []order.CourierEvent{{Timestamp: sentAt, StatusText: "Booked"}}

		o, err := order.RestoreOrder("ORD-2001", validCustomer(), validItems(), now.Add(-2*time.Hour),
			order.Dispatched, order.MessageSent, &sentAt,
			"CN123456", events, "Booked", false, false, history)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Dispatched, o.AppStatus())
		assert.Equal(t, order.MessageSent, o.MessageStatus())
		assert.Equal(t, "CN123456", o.TrackingNumber())
		assert.Equal(t, "Booked", o.LatestCourierStatus())
		assert.Len(t, o.MessageHistory(), 1)
	})

	t.Run("should return error for unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder("ORD-2001", validCustomer(), nil, now,
			order.AppStatusUnknown, order.MessagePending, nil,
			"", nil, "", false, false, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should return error for zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should return error for nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAssignTracking(t *testing.T) {
	t.Run("should assign tracking number", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.AssignTracking("CN777", "Admin", time.Now())

		require.NoError(t, err)
		assert.True(t, o.HasTrackingNumber())
		assert.Equal(t, "CN777", o.TrackingNumber())
	})

	t.Run("should return error for empty tracking number", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.AssignTracking("", "Admin", time.Now())

		require.Error(t, err)
		assert.False(t, o.HasTrackingNumber())
	})
}

func TestOrderAppendCourierEvent(t *testing.T) {
	t.Run("should append events in order and cache latest status", func(t *testing.T) {
		o := createValidOrder(t)
		now := time.Now()

		require.NoError(t, o.AppendCourierEvent(order.CourierEvent{Timestamp: now, StatusText: "Booked"}, now))
		require.NoError(t, o.AppendCourierEvent(order.CourierEvent{Timestamp: now.Add(time.Hour), StatusText: "Arrived at Origin Station"}, now.Add(time.Hour)))

		events := o.CourierHistory()
		require.Len(t, events, 2)
		assert.Equal(t, "Booked", events[0].StatusText)
		assert.Equal(t, "Arrived at Origin Station", events[1].StatusText)
		assert.Equal(t, "Arrived at Origin Station", o.LatestCourierStatus())

		history := o.MessageHistory()
		last := history[len(history)-1]
		assert.Equal(t, "Courier: Status Polled - Arrived at Origin Station", last.Action)
		assert.Equal(t, "System: Courier Polling", last.Actor)
	})

	t.Run("should not mutate history through accessor copy", func(t *testing.T) {
		o := createValidOrder(t)
		now := time.Now()
		require.NoError(t, o.AppendCourierEvent(order.CourierEvent{Timestamp: now, StatusText: "Booked"}, now))

		events := o.CourierHistory()
		events[0].StatusText = "Tampered"

		assert.Equal(t, "Booked", o.CourierHistory()[0].StatusText)
	})
}

func TestOrderApplyNotificationSuccess(t *testing.T) {
	now := time.Now()

	t.Run("initial notification advances to Sent", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.IntentNewOrderInitial, "Assalam o Alaikum...", "System", now)

		require.NoError(t, err)
		assert.Equal(t, order.MessageSent, o.MessageStatus())
		assert.Equal(t, order.PendingConfirmation, o.AppStatus())
		require.NotNil(t, o.MessageSentAt())
	})

	t.Run("reminder advances to ConfirmationSent", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.IntentConfirmationReminder, "Reminder...", "System", now)

		require.NoError(t, err)
		assert.Equal(t, order.ConfirmationSent, o.MessageStatus())
	})

	t.Run("dispatch notification also moves lifecycle to Dispatched", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.IntentDispatchNotification, "Dispatched...", "Admin", now)

		require.NoError(t, err)
		assert.Equal(t, order.MessageSent, o.MessageStatus())
		assert.Equal(t, order.Dispatched, o.AppStatus())
	})

	t.Run("out for delivery raises one-shot flag", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.IntentOutForDelivery, "Aaj deliver...", "System", now)

		require.NoError(t, err)
		assert.Equal(t, order.Notified, o.MessageStatus())
		assert.True(t, o.OutForDeliveryNotified())
		assert.False(t, o.AddressIssueNotified())
	})

	t.Run("address issue intents raise address flag", func(t *testing.T) {
		for _, intent := range []order.MessageIntent{order.IntentAddressNeeded, order.IntentPremisesClosed} {
			o := createValidOrder(t)

			err := o.ApplyNotificationSuccess(intent, "Address...", "System", now)

			require.NoError(t, err)
			assert.True(t, o.AddressIssueNotified(), intent)
		}
	})

	t.Run("courier updates advance to Notified", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.IntentInTransitUpdate, "In transit...", "System", now)

		require.NoError(t, err)
		assert.Equal(t, order.Notified, o.MessageStatus())
	})

	t.Run("should truncate long snippet", func(t *testing.T) {
		o := createValidOrder(t)
		long := make([]byte, 150)
		for i := range long {
			long[i] = 'x'
		}

		err := o.ApplyNotificationSuccess(order.IntentNewOrderInitial, string(long), "System", now)

		require.NoError(t, err)
		history := o.MessageHistory()
		last := history[len(history)-1]
		assert.Len(t, last.ContentSnippet, 103)
		assert.Contains(t, last.ContentSnippet, "...")
	})

	t.Run("should reject unknown intent", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationSuccess(order.MessageIntent("NOPE"), "x", "System", now)

		require.Error(t, err)
		assert.Equal(t, order.MessagePending, o.MessageStatus())
	})

	t.Run("should reject archived order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ForceStatus(order.Archived, "Admin", now))

		err := o.ApplyNotificationSuccess(order.IntentNewOrderInitial, "x", "System", now)

		assert.ErrorIs(t, err, order.ErrOrderIsArchived)
	})
}

func TestOrderApplyNotificationFailure(t *testing.T) {
	t.Run("should record failure without touching lifecycle status", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ApplyNotificationFailure(order.IntentNewOrderInitial, "gateway timeout", "System", time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.ErrorSendingFailed, o.MessageStatus())
		assert.Equal(t, order.PendingConfirmation, o.AppStatus())

		history := o.MessageHistory()
		last := history[len(history)-1]
		assert.Contains(t, last.ContentSnippet, "gateway timeout")
	})
}

func TestOrderRecordSendValidationError(t *testing.T) {
	t.Run("should record missing consignment number", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.RecordSendValidationError(order.ErrorMissingCN, "no tracking number assigned", "Admin", time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.ErrorMissingCN, o.MessageStatus())
	})

	t.Run("should reject non-error status", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.RecordSendValidationError(order.MessageSent, "x", "Admin", time.Now())

		require.Error(t, err)
		assert.Equal(t, order.MessagePending, o.MessageStatus())
	})
}

func TestOrderConfirmByCustomer(t *testing.T) {
	now := time.Now()

	t.Run("should confirm after initial notification", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ApplyNotificationSuccess(order.IntentNewOrderInitial, "Hi", "System", now))

		err := o.ConfirmByCustomer("Admin", now)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.AppStatus())
		assert.Equal(t, order.CustomerConfirmed, o.MessageStatus())
	})

	t.Run("should confirm after reminder", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ApplyNotificationSuccess(order.IntentConfirmationReminder, "Hi", "System", now))

		err := o.ConfirmByCustomer("Admin", now)

		require.NoError(t, err)
		assert.Equal(t, order.CustomerConfirmed, o.MessageStatus())
	})

	t.Run("should reject before any notification", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ConfirmByCustomer("Admin", now)

		assert.ErrorIs(t, err, order.ErrOrderNotAwaitingConfirmation)
	})

	t.Run("should reject outside pending confirmation", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ForceStatus(order.Dispatched, "Admin", now))

		err := o.ConfirmByCustomer("Admin", now)

		assert.ErrorIs(t, err, order.ErrOrderNotAwaitingConfirmation)
	})
}

func TestOrderMarkCancelled(t *testing.T) {
	t.Run("should cancel and seed pending notification", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.MarkCancelled("Admin", time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.AppStatus())
		assert.Equal(t, order.MessagePending, o.MessageStatus())
	})

	t.Run("should reject archived order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ForceStatus(order.Archived, "Admin", time.Now()))

		err := o.MarkCancelled("Admin", time.Now())

		assert.ErrorIs(t, err, order.ErrOrderIsArchived)
	})
}

func TestOrderForceStatus(t *testing.T) {
	now := time.Now()

	t.Run("notifiable target seeds pending notification", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ForceStatus(order.OutForDelivery, "Admin", now)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.AppStatus())
		assert.Equal(t, order.MessagePending, o.MessageStatus())
	})

	t.Run("silent target marks as notified", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ForceStatus(order.Delivered, "Admin", now)

		require.NoError(t, err)
		assert.Equal(t, order.Notified, o.MessageStatus())
	})

	t.Run("records old and new status in history", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.ForceStatus(order.Dispatched, "Admin", now))

		history := o.MessageHistory()
		last := history[len(history)-1]
		assert.Equal(t, "Admin: Status change to Dispatched", last.Action)
		assert.Contains(t, last.ContentSnippet, "Pending Confirmation")
		assert.Contains(t, last.ContentSnippet, "Dispatched")
	})

	t.Run("archived is a hard wall", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ForceStatus(order.Archived, "Admin", now))

		err := o.ForceStatus(order.Processing, "Admin", now)

		assert.ErrorIs(t, err, order.ErrOrderIsArchived)
		assert.Equal(t, order.Archived, o.AppStatus())
	})

	t.Run("one-shot flags survive manual status changes", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ApplyNotificationSuccess(order.IntentOutForDelivery, "x", "System", now))
		require.NoError(t, o.ForceStatus(order.Processing, "Admin", now))

		assert.True(t, o.OutForDeliveryNotified())
	})
}

func TestOrderApplyEdit(t *testing.T) {
	t.Run("should replace details and keep orchestration state", func(t *testing.T) {
		o := createValidOrder(t)
		now := time.Now()
		require.NoError(t, o.ApplyNotificationSuccess(order.IntentNewOrderInitial, "Hi", "System", now))

		edited := validCustomer()
		edited.Address = "New Address 99"
		err := o.ApplyEdit(edited, []order.Item{{Name: "Shawl", Quantity: 3}}, "Admin", now)

		require.NoError(t, err)
		assert.Equal(t, "New Address 99", o.Customer().Address)
		assert.Equal(t, order.MessageSent, o.MessageStatus())
		require.Len(t, o.Items(), 1)
	})

	t.Run("should reject invalid details", func(t *testing.T) {
		o := createValidOrder(t)
		bad := validCustomer()
		bad.Phone = ""

		err := o.ApplyEdit(bad, nil, "Admin", time.Now())

		require.Error(t, err)
		assert.Equal(t, "0300 1234567", o.Customer().Phone)
	})
}
