package templaterepo

import (
	"context"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/template"
	"ordernotify/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template override repository.
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// GetOverrides retrieves all stored template overrides keyed by intent.
func (r *GormTemplateRepository) GetOverrides(ctx context.Context) (map[order.MessageIntent]template.Definition, error) {
	var dtos []TemplateDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	overrides := make(map[order.MessageIntent]template.Definition, len(dtos))
	for _, dto := range dtos {
		overrides[order.MessageIntent(dto.Intent)] = toDomain(dto)
	}
	return overrides, nil
}

// Upsert stores or replaces the override for one intent.
func (r *GormTemplateRepository) Upsert(ctx context.Context, intent order.MessageIntent, def template.Definition) error {
	if err := intent.Validate(); err != nil {
		return err
	}
	if def.Template == "" {
		return errs.NewValueIsRequiredError("template body")
	}

	dto := fromDomain(intent, def)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "intent"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Delete removes the override for one intent, restoring the default. Deleting
// an intent with no override is a no-op.
func (r *GormTemplateRepository) Delete(ctx context.Context, intent order.MessageIntent) error {
	if err := intent.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&TemplateDTO{}, "intent = ?", string(intent)).Error
}
