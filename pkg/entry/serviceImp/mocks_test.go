package serviceImp_test

import (
	"sync"

	"bodytracker/entities"
	"bodytracker/pkg/storage/repository"
)

// Compile-time check to ensure MockBackend implements repository.Backend.
var _ repository.Backend = (*MockBackend)(nil)

// MockBackend is a configurable in-memory stand-in for the storage port.
// Unset funcs fall back to simple in-memory behavior. Methods are
// serialized by an internal mutex because the service saves images from
// multiple goroutines.
type MockBackend struct {
	mu sync.Mutex

	GetEntriesFunc   func() ([]entities.Entry, error)
	SaveEntriesFunc  func(entries []entities.Entry) error
	GetSettingsFunc  func() (entities.Settings, error)
	SaveSettingsFunc func(s entities.Settings) error
	SaveImageFunc    func(id string, img entities.ImageAsset) error
	GetImageFunc     func(id string) (*entities.ImageAsset, error)
	DeleteImageFunc  func(id string) error
	ClearAllFunc     func() error

	Entries  []entities.Entry
	Settings *entities.Settings
	Images   map[string]entities.ImageAsset

	SaveEntriesCalls int
	SaveImageCalls   int
}

func NewMockBackend() *MockBackend {
	return &MockBackend{Images: map[string]entities.ImageAsset{}}
}

func (m *MockBackend) GetEntries() ([]entities.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEntriesFunc != nil {
		return m.GetEntriesFunc()
	}
	if m.Entries == nil {
		return []entities.Entry{}, nil
	}
	return m.Entries, nil
}

func (m *MockBackend) SaveEntries(entries []entities.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveEntriesCalls++
	if m.SaveEntriesFunc != nil {
		return m.SaveEntriesFunc(entries)
	}
	m.Entries = entries
	return nil
}

func (m *MockBackend) GetSettings() (entities.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	if m.Settings == nil {
		return entities.DefaultSettings(), nil
	}
	return *m.Settings, nil
}

func (m *MockBackend) SaveSettings(s entities.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveSettingsFunc != nil {
		return m.SaveSettingsFunc(s)
	}
	m.Settings = &s
	return nil
}

func (m *MockBackend) SaveImage(id string, img entities.ImageAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveImageCalls++
	if m.SaveImageFunc != nil {
		return m.SaveImageFunc(id, img)
	}
	m.Images[id] = img
	return nil
}

func (m *MockBackend) GetImage(id string) (*entities.ImageAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetImageFunc != nil {
		return m.GetImageFunc(id)
	}
	if img, ok := m.Images[id]; ok {
		return &img, nil
	}
	return nil, nil
}

func (m *MockBackend) DeleteImage(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteImageFunc != nil {
		return m.DeleteImageFunc(id)
	}
	delete(m.Images, id)
	return nil
}

func (m *MockBackend) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearAllFunc != nil {
		return m.ClearAllFunc()
	}
	m.Entries = nil
	m.Settings = nil
	m.Images = map[string]entities.ImageAsset{}
	return nil
}
