package serviceImp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"bodytracker/entities"
	"bodytracker/pkg/settings/serviceImp"
	"bodytracker/pkg/storage/repository"
)

// settingsOnlyBackend implements just enough of the port for these tests.
type settingsOnlyBackend struct {
	repository.Backend
	mu       sync.Mutex
	settings *entities.Settings
}

func (b *settingsOnlyBackend) GetSettings() (entities.Settings, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.settings == nil {
		return entities.DefaultSettings(), nil
	}
	return *b.settings, nil
}

func (b *settingsOnlyBackend) SaveSettings(s entities.Settings) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.settings = &s
	return nil
}

func f(v float64) *float64 { return &v }

func TestGet_DefaultsWhenUnset(t *testing.T) {
	s := serviceImp.New(&settingsOnlyBackend{})
	got, err := s.Get()
	assert.NoError(t, err)
	assert.Equal(t, entities.ThemeLight, got.Theme)
	assert.Nil(t, got.GoalWeight)
}

func TestSave_MergesOverStored(t *testing.T) {
	s := serviceImp.New(&settingsOnlyBackend{})

	_, err := s.Save(entities.SettingsPatch{GoalWeight: f(78)})
	assert.NoError(t, err)

	dark := entities.ThemeDark
	got, err := s.Save(entities.SettingsPatch{Theme: &dark})
	assert.NoError(t, err)

	// partial update keeps the earlier goal
	if assert.NotNil(t, got.GoalWeight) {
		assert.Equal(t, 78.0, *got.GoalWeight)
	}
	assert.Equal(t, entities.ThemeDark, got.Theme)
}

func TestSave_CaliperDefaults(t *testing.T) {
	s := serviceImp.New(&settingsOnlyBackend{})
	male := entities.GenderMale
	age := 35
	got, err := s.Save(entities.SettingsPatch{DefaultGender: &male, DefaultAge: &age})
	assert.NoError(t, err)
	assert.Equal(t, entities.GenderMale, got.DefaultGender)
	if assert.NotNil(t, got.DefaultAge) {
		assert.Equal(t, 35, *got.DefaultAge)
	}
}
