package ports

import (
	"context"

	"ordernotify/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the runtime
// configuration bag. Get returns the defaults when nothing is stored yet.
type SettingsRepository interface {
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, cfg settings.Settings) error
}
