package repository

import "bodytracker/entities"

// Backend is the persistence port shared by both storage variants (file
// tree and sqlite). Reads of missing data return empty defaults, never an
// error.
type Backend interface {
	GetEntries() ([]entities.Entry, error)
	SaveEntries(entries []entities.Entry) error
	GetSettings() (entities.Settings, error)
	SaveSettings(s entities.Settings) error
	SaveImage(id string, img entities.ImageAsset) error
	GetImage(id string) (*entities.ImageAsset, error)
	DeleteImage(id string) error
	ClearAll() error
}
