package ports

import (
	"context"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/template"
)

// TemplateRepository defines the persistence contract for operator-edited
// message templates. The core only reads overrides; writes happen through the
// external settings workflow.
type TemplateRepository interface {
	// GetOverrides retrieves all stored template overrides keyed by intent.
	// Intents without an override fall back to the built-in defaults.
	GetOverrides(ctx context.Context) (map[order.MessageIntent]template.Definition, error)

	// Upsert stores or replaces the override for one intent.
	Upsert(ctx context.Context, intent order.MessageIntent, def template.Definition) error

	// Delete removes the override for one intent, restoring the default.
	Delete(ctx context.Context, intent order.MessageIntent) error
}
