package serviceImp

import (
	"bodytracker/entities"
	"bodytracker/pkg/settings/service"
	"bodytracker/pkg/storage/repository"
)

type settingsSvc struct{ backend repository.Backend }

func New(backend repository.Backend) service.SettingsService {
	return &settingsSvc{backend: backend}
}

func (s *settingsSvc) Get() (entities.Settings, error) {
	return s.backend.GetSettings()
}

func (s *settingsSvc) Save(p entities.SettingsPatch) (entities.Settings, error) {
	cur, err := s.backend.GetSettings()
	if err != nil {
		return entities.Settings{}, err
	}
	merged := p.Apply(cur)
	if err := s.backend.SaveSettings(merged); err != nil {
		return entities.Settings{}, err
	}
	return merged, nil
}
