// Package templaterepo persists operator-edited message template overrides.
// Only overridden intents are stored; intents without a row fall back to the
// built-in defaults at resolution time.
package templaterepo

import (
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/template"
)

// TemplateDTO represents the database structure for one template override.
type TemplateDTO struct {
	Intent      string `gorm:"primaryKey"`
	Name        string
	Template    string
	Description string
}

// TableName specifies the database table name for template overrides.
func (TemplateDTO) TableName() string {
	return "template_overrides"
}

func fromDomain(intent order.MessageIntent, def template.Definition) TemplateDTO {
	return TemplateDTO{
		Intent:      string(intent),
		Name:        def.Name,
		Template:    def.Template,
		Description: def.Description,
	}
}

func toDomain(dto TemplateDTO) template.Definition {
	return template.Definition{
		Name:        dto.Name,
		Template:    dto.Template,
		Description: dto.Description,
	}
}
