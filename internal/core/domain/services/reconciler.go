package services

import (
	"context"
	"errors"
	"time"

	"ordernotify/internal/core/domain/model/order"
)

// BootstrapStatusText is the synthetic first courier event recorded when a
// tracked order has no courier history yet.
const BootstrapStatusText = "Booked"

// ErrCourierEventSourceIsRequired is returned when a Reconciler is created
// without an event source.
var ErrCourierEventSourceIsRequired = errors.New("courier event source is required")

// CourierEventSource supplies the next event in a tracking number's
// authoritative sequence. The sequence is keyed by tracking number, not by
// order; the source owns ordering. A nil event with a nil error means no
// successor exists yet.
type CourierEventSource interface {
	NextEvent(ctx context.Context, trackingNumber string, lastSeen *order.CourierEvent) (*order.CourierEvent, error)
}

// Reconciler advances an order's courier history by at most one event per
// call and re-derives the application status from the new status line.
//
// Behavior per call:
//   - Orders without a tracking number, or in a terminal status, are skipped.
//   - The source is asked for the event following the last recorded one. No
//     successor means no-op: no history change, no status change.
//   - An order with no courier history whose feed is still empty gets a
//     synthetic "Booked" bootstrap event so it shows as tracked. Once the
//     feed has events, those take precedence over the synthetic entry.
//   - A found event is appended, the audit trail records the poll, and the
//     status classifier decides the new application status.
//
// One event per call keeps each poll cycle's work bounded and gives the
// notification flow a chance to react to every intermediate status.
type Reconciler struct {
	source     CourierEventSource
	classifier StatusClassifier
}

// NewReconciler creates a Reconciler reading from the given source.
func NewReconciler(source CourierEventSource) (Reconciler, error) {
	if source == nil {
		return Reconciler{}, ErrCourierEventSourceIsRequired
	}
	return Reconciler{source: source, classifier: NewStatusClassifier()}, nil
}

// Reconcile advances the order by one courier event if one is available.
// Returns true when the order changed.
func (r Reconciler) Reconcile(ctx context.Context, o *order.Order, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if !o.HasTrackingNumber() || o.AppStatus().IsTerminal() {
		return false, nil
	}

	last := o.LastCourierEvent()
	event, err := r.source.NextEvent(ctx, o.TrackingNumber(), last)
	if err != nil {
		return false, err
	}
	if event == nil && last == nil {
		event = &order.CourierEvent{Timestamp: now, StatusText: BootstrapStatusText}
	}
	if event == nil {
		return false, nil
	}

	if err := o.AppendCourierEvent(*event, now); err != nil {
		return false, err
	}

	newStatus := r.classifier.Classify(event.StatusText, o.AppStatus())
	if newStatus != o.AppStatus() {
		if err := o.ReviseAppStatus(newStatus); err != nil {
			return false, err
		}
	}
	return true, nil
}
