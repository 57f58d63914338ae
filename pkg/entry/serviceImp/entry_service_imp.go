package serviceImp

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bodytracker/entities"
	"bodytracker/pkg/bodyfat"
	"bodytracker/pkg/entry/service"
	"bodytracker/pkg/images"
	"bodytracker/pkg/storage/repository"
)

// ImageProcessor turns an uploaded file into the stored asset shape.
type ImageProcessor func(name string, data []byte) (entities.ImageAsset, error)

type entrySvc struct {
	mu      sync.Mutex
	backend repository.Backend
	process ImageProcessor
	entries []entities.Entry
}

// New creates the entry service on top of a storage backend. proc may be nil,
// in which case the default image pipeline is used.
func New(backend repository.Backend, proc ImageProcessor) service.EntryService {
	if proc == nil {
		proc = images.Process
	}
	return &entrySvc{backend: backend, process: proc}
}

// Init loads the persisted snapshot.
func (s *entrySvc) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.backend.GetEntries()
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	sortByDateDesc(entries)
	s.entries = entries
	return nil
}

func sortByDateDesc(entries []entities.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

func (s *entrySvc) Add(d service.EntryDraft) (*entities.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entities.Entry{
		ID:        uuid.NewString(),
		Date:      d.Date,
		Weight:    d.Weight,
		BodyFat:   d.BodyFat,
		Gender:    d.Gender,
		Age:       d.Age,
		Skinfolds: d.Skinfolds,
		Notes:     d.Notes,
		Images:    []string{},
		CreatedAt: time.Now(),
	}
	if calc := bodyfat.Calculate(d.Gender, d.Age, d.Skinfolds); calc != nil {
		e.BodyFat = calc
	}

	ids, err := s.storeImages(d.Images)
	if err != nil {
		return nil, err
	}
	e.Images = ids

	s.entries = append(s.entries, e)
	sortByDateDesc(s.entries)
	if err := s.backend.SaveEntries(s.entries); err != nil {
		return nil, fmt.Errorf("persist entries: %w", err)
	}
	return &e, nil
}

// storeImages encodes and saves every upload, one goroutine per file. All
// saves must land before the owning entry is persisted, so results are
// joined here and the first failure aborts the add.
func (s *entrySvc) storeImages(uploads []service.ImageUpload) ([]string, error) {
	ids := make([]string, len(uploads))
	errs := make([]error, len(uploads))

	var wg sync.WaitGroup
	for i, up := range uploads {
		wg.Add(1)
		go func(i int, up service.ImageUpload) {
			defer wg.Done()
			asset, err := s.process(up.Name, up.Data)
			if err != nil {
				errs[i] = err
				return
			}
			id := uuid.NewString()
			if err := s.backend.SaveImage(id, asset); err != nil {
				errs[i] = fmt.Errorf("save image %q: %w", up.Name, err)
				return
			}
			ids[i] = id
		}(i, up)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return []string{}, nil
	}
	return ids, nil
}

func (s *entrySvc) Update(id string, p service.EntryPatch) (*entities.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, service.ErrNotFound
	}
	e := s.entries[idx]

	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Weight != nil {
		e.Weight = *p.Weight
	}
	if p.BodyFat != nil {
		e.BodyFat = p.BodyFat
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.ClearGender {
		e.Gender = ""
	}
	if p.Age != nil {
		e.Age = p.Age
	}
	if p.ClearAge {
		e.Age = nil
	}
	if p.Skinfolds != nil {
		e.Skinfolds = p.Skinfolds
	}
	if p.ClearSkinfolds {
		e.Skinfolds = nil
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Images != nil {
		e.Images = *p.Images
	}

	// The merged record wins: a complete caliper triple recomputes body fat
	// even when the patch also carried a manual value.
	if calc := bodyfat.Calculate(e.Gender, e.Age, e.Skinfolds); calc != nil {
		e.BodyFat = calc
	}

	s.entries[idx] = e
	sortByDateDesc(s.entries)
	if err := s.backend.SaveEntries(s.entries); err != nil {
		return nil, fmt.Errorf("persist entries: %w", err)
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			out := s.entries[i]
			return &out, nil
		}
	}
	return &e, nil
}

func (s *entrySvc) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	// Best-effort cascade: a failed image delete never blocks entry removal.
	for _, imgID := range s.entries[idx].Images {
		if err := s.backend.DeleteImage(imgID); err != nil {
			log.Printf("[entry] delete image %s: %v", imgID, err)
		}
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	if err := s.backend.SaveEntries(s.entries); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	return nil
}

func (s *entrySvc) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *entrySvc) List() []entities.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *entrySvc) GetByID(id string) (*entities.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		e := s.entries[idx]
		return &e, true
	}
	return nil, false
}

func (s *entrySvc) ByDateRange(start, end time.Time) []entities.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Entry{}
	for _, e := range s.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entrySvc) Search(query string) []entities.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	out := []entities.Entry{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Notes), q) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entrySvc) GetImage(id string) (*entities.ImageAsset, error) {
	return s.backend.GetImage(id)
}

func (s *entrySvc) Restore(entries []entities.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entries == nil {
		entries = []entities.Entry{}
	}
	sortByDateDesc(entries)
	if err := s.backend.SaveEntries(entries); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	s.entries = entries
	return nil
}

func (s *entrySvc) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.ClearAll(); err != nil {
		return err
	}
	s.entries = []entities.Entry{}
	return nil
}
