// Package settingsrepo persists the runtime configuration bag as a single row.
package settingsrepo

import (
	"ordernotify/internal/core/domain/model/settings"
)

// settingsRowID pins the configuration to one well-known row.
const settingsRowID = 1

// SettingsDTO represents the database structure for the stored configuration.
type SettingsDTO struct {
	ID                        int `gorm:"primaryKey"`
	ConfirmationDelayHours    int
	PollingIntervalSeconds    int
	PaymentAccountNumber      string
	PaymentAccountName        string
	AdvanceDiscountPercentage float64
	TrackingLinkPrefix        string
}

// TableName specifies the database table name for the configuration row.
func (SettingsDTO) TableName() string {
	return "settings"
}

func fromDomain(cfg settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:                        settingsRowID,
		ConfirmationDelayHours:    cfg.ConfirmationDelayHours(),
		PollingIntervalSeconds:    cfg.PollingIntervalSeconds(),
		PaymentAccountNumber:      cfg.PaymentAccountNumber(),
		PaymentAccountName:        cfg.PaymentAccountName(),
		AdvanceDiscountPercentage: cfg.AdvanceDiscountPercentage(),
		TrackingLinkPrefix:        cfg.TrackingLinkPrefix(),
	}
}

func toDomain(dto SettingsDTO) (settings.Settings, error) {
	return settings.NewSettings(
		dto.ConfirmationDelayHours,
		dto.PollingIntervalSeconds,
		dto.PaymentAccountNumber,
		dto.PaymentAccountName,
		dto.AdvanceDiscountPercentage,
		dto.TrackingLinkPrefix,
	)
}
