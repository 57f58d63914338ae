package service

import "bodytracker/entities"

// SettingsService owns the singleton preferences record.
type SettingsService interface {
	Get() (entities.Settings, error)
	// Save merges the patch over the stored record and persists the result.
	Save(p entities.SettingsPatch) (entities.Settings, error)
}
