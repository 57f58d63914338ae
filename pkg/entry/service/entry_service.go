package service

import (
	"errors"
	"time"

	"bodytracker/entities"
)

// ErrNotFound is returned by Update when the id is not in the collection.
// Delete is idempotent and does not use it.
var ErrNotFound = errors.New("entry not found")

// ImageUpload is a raw photo handed in with a new entry.
type ImageUpload struct {
	Name string
	Data []byte
}

// EntryDraft is the input to Add. BodyFat is the manual value; it is
// overridden by the caliper calculation when gender, age and a complete
// skinfold set are present.
type EntryDraft struct {
	Date      time.Time
	Weight    float64
	BodyFat   *float64
	Gender    entities.Gender
	Age       *int
	Skinfolds *entities.Skinfolds
	Notes     string
	Images    []ImageUpload
}

// EntryPatch is a partial update. Nil fields keep the stored value; the
// Clear flags remove optional fields outright. Images replaces the image id
// list only when non-nil.
type EntryPatch struct {
	Date      *time.Time
	Weight    *float64
	BodyFat   *float64
	Gender    *entities.Gender
	Age       *int
	Skinfolds *entities.Skinfolds
	Notes     *string
	Images    *[]string

	ClearGender    bool
	ClearAge       bool
	ClearSkinfolds bool
}

// EntryService owns the measurement collection: in-memory snapshot, derived
// body fat, image assets and write-through persistence. Mutating calls must
// not be issued concurrently by the same caller without awaiting the
// previous one; the service serializes them internally.
type EntryService interface {
	Init() error
	Add(d EntryDraft) (*entities.Entry, error)
	Update(id string, p EntryPatch) (*entities.Entry, error)
	Delete(id string) error
	List() []entities.Entry
	GetByID(id string) (*entities.Entry, bool)
	ByDateRange(start, end time.Time) []entities.Entry
	Search(query string) []entities.Entry
	GetImage(id string) (*entities.ImageAsset, error)
	ClearAll() error
	// Restore replaces the whole collection with already-built records,
	// keeping their ids. Used by the import path after a ClearAll.
	Restore(entries []entities.Entry) error
}
