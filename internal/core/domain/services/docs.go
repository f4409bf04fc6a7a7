// Package services contains the stateless domain services of the notification
// core.
//
// StatusClassifier maps free-text courier status lines to an application
// status through a prioritized keyword table. Reconciler advances an order's
// courier history by one event per poll and re-derives the application status
// from the new line. IntentSelector is the decision table that answers the one
// question the rest of the system keeps asking: given this order's state
// right now, which customer notification, if any, is due?
//
// All three are pure with respect to their inputs and safe to call repeatedly
// with the same order snapshot.
package services
