package repositoryImp

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bodytracker/entities"
	"bodytracker/pkg/storage/repository"
)

// Store keys match the original browser-local layout.
const (
	entriesKey  = "bodytracker_entries"
	settingsKey = "bodytracker_settings"
)

// KVRecord holds one JSON blob under a string key (entries and settings).
type KVRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// ImageRecord is one stored image asset keyed by identifier.
type ImageRecord struct {
	ID           string `gorm:"primaryKey"`
	Full         string
	Thumbnail    string
	OriginalName string
}

type sqliteBackend struct{ db *gorm.DB }

// NewSQLite wraps an opened gorm sqlite handle as a storage backend,
// creating the kv and image tables when absent.
func NewSQLite(db *gorm.DB) (repository.Backend, error) {
	if err := db.AutoMigrate(&KVRecord{}, &ImageRecord{}); err != nil {
		return nil, fmt.Errorf("automigrate storage: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) getBlob(key string, out any) (bool, error) {
	var rec KVRecord
	err := b.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (b *sqliteBackend) putBlob(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.db.Save(&KVRecord{Key: key, Value: string(data)}).Error
}

func (b *sqliteBackend) GetEntries() ([]entities.Entry, error) {
	var out []entities.Entry
	if _, err := b.getBlob(entriesKey, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Entry{}
	}
	return out, nil
}

func (b *sqliteBackend) SaveEntries(entries []entities.Entry) error {
	return b.putBlob(entriesKey, entries)
}

func (b *sqliteBackend) GetSettings() (entities.Settings, error) {
	s := entities.DefaultSettings()
	if _, err := b.getBlob(settingsKey, &s); err != nil {
		return entities.DefaultSettings(), err
	}
	if s.Theme == "" {
		s.Theme = entities.ThemeLight
	}
	return s, nil
}

func (b *sqliteBackend) SaveSettings(s entities.Settings) error {
	return b.putBlob(settingsKey, s)
}

func (b *sqliteBackend) SaveImage(id string, img entities.ImageAsset) error {
	rec := ImageRecord{ID: id, Full: img.Full, Thumbnail: img.Thumbnail, OriginalName: img.OriginalName}
	return b.db.Save(&rec).Error
}

func (b *sqliteBackend) GetImage(id string) (*entities.ImageAsset, error) {
	var rec ImageRecord
	err := b.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entities.ImageAsset{Full: rec.Full, Thumbnail: rec.Thumbnail, OriginalName: rec.OriginalName}, nil
}

func (b *sqliteBackend) DeleteImage(id string) error {
	return b.db.Delete(&ImageRecord{}, "id = ?", id).Error
}

func (b *sqliteBackend) ClearAll() error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&KVRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&ImageRecord{}).Error
	})
}
