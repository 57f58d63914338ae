package service

import (
	"errors"
	"time"

	"bodytracker/entities"
)

// ErrInvalidFormat rejects an import document without an entries sequence.
// No stored data is touched when it is returned.
var ErrInvalidFormat = errors.New("invalid data format")

// ExportEntry is an entry with its image assets denormalized inline for
// JSON portability.
type ExportEntry struct {
	entities.Entry
	ImageData []entities.ImageAsset `json:"imageData,omitempty"`
}

// Document is the portable backup format. Exports carry images inline per
// entry; imports additionally accept the legacy top-level Images map keyed
// by the entry's original image ids.
type Document struct {
	Version    string                         `json:"version"`
	ExportDate time.Time                      `json:"exportDate"`
	Entries    []ExportEntry                  `json:"entries"`
	Settings   *entities.Settings             `json:"settings,omitempty"`
	Images     map[string]entities.ImageAsset `json:"images,omitempty"`
}

// ExportService serializes the full dataset for backup and restores it on
// import. ImportData is a destructive full replace.
type ExportService interface {
	ExportData() (*Document, error)
	ExportCSV() (string, error)
	ExportXLSX() ([]byte, error)
	ImportData(doc *Document) error
}
