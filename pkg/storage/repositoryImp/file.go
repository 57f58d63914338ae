package repositoryImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bodytracker/entities"
	"bodytracker/pkg/storage/repository"
)

const (
	entriesFile  = "entries.json"
	settingsFile = "settings.json"
	imagesDir    = "images"
)

type fileBackend struct{ dir string }

// NewFile opens a file-tree backend rooted at dir. Entries and settings are
// whole-document JSON files rewritten on every save, each image is its own
// file under images/.
func NewFile(dir string) (repository.Backend, error) {
	if err := os.MkdirAll(filepath.Join(dir, imagesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileBackend{dir: dir}, nil
}

func (b *fileBackend) readJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeJSON replaces path atomically via a temp file in the same directory.
func (b *fileBackend) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (b *fileBackend) GetEntries() ([]entities.Entry, error) {
	var out []entities.Entry
	if _, err := b.readJSON(filepath.Join(b.dir, entriesFile), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Entry{}
	}
	return out, nil
}

func (b *fileBackend) SaveEntries(entries []entities.Entry) error {
	return b.writeJSON(filepath.Join(b.dir, entriesFile), entries)
}

func (b *fileBackend) GetSettings() (entities.Settings, error) {
	s := entities.DefaultSettings()
	if _, err := b.readJSON(filepath.Join(b.dir, settingsFile), &s); err != nil {
		return entities.DefaultSettings(), err
	}
	if s.Theme == "" {
		s.Theme = entities.ThemeLight
	}
	return s, nil
}

func (b *fileBackend) SaveSettings(s entities.Settings) error {
	return b.writeJSON(filepath.Join(b.dir, settingsFile), s)
}

func (b *fileBackend) imagePath(id string) string {
	return filepath.Join(b.dir, imagesDir, id+".json")
}

func (b *fileBackend) SaveImage(id string, img entities.ImageAsset) error {
	return b.writeJSON(b.imagePath(id), img)
}

func (b *fileBackend) GetImage(id string) (*entities.ImageAsset, error) {
	var img entities.ImageAsset
	found, err := b.readJSON(b.imagePath(id), &img)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &img, nil
}

func (b *fileBackend) DeleteImage(id string) error {
	err := os.Remove(b.imagePath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (b *fileBackend) ClearAll() error {
	for _, name := range []string{entriesFile, settingsFile} {
		if err := os.Remove(filepath.Join(b.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	dir := filepath.Join(b.dir, imagesDir)
	files, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, f := range files {
		if err := os.Remove(filepath.Join(dir, f.Name())); err != nil {
			return err
		}
	}
	return nil
}
