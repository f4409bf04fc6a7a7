// Package order provides domain entities and business logic for the order
// lifecycle and notification orchestration core. It implements the Order
// aggregate root with two coupled state machines and append-only audit trails.
//
// The package includes:
//   - Order: The aggregate root carrying customer data, items, statuses,
//     courier history, and the message audit trail
//   - AppStatus: the store/courier-facing lifecycle state machine
//   - MessageStatus: the customer-notification state machine, tracked
//     independently of AppStatus
//   - MessageIntent: the notification purposes the intent selector can decide
//     are due
//
// Key business rules:
//   - Courier history and message history are append-only; entries are never
//     rewritten or removed
//   - Delivered, Cancelled, and Archived are terminal; Archived is a hard wall
//     no automatic or manual transition may leave
//   - Out-for-delivery and address-issue notifications are one-shot per order
//     lifetime, enforced by explicit boolean flags
//   - Every lifecycle mutation appends a history entry, so the audit trail is
//     a complete ordered narrative of what the system attempted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
