package settingsrepo

import (
	"context"
	"errors"

	"ordernotify/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the stored configuration. Returns the defaults when nothing
// has been saved yet.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Settings{}, err
	}

	return toDomain(dto)
}

// Save stores the configuration, replacing any previous version.
func (r *GormSettingsRepository) Save(ctx context.Context, cfg settings.Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cfg)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
