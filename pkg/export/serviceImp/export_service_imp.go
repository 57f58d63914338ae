package serviceImp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"bodytracker/entities"
	entrySvc "bodytracker/pkg/entry/service"
	"bodytracker/pkg/export/service"
	"bodytracker/pkg/storage/repository"
)

const exportVersion = "1.0.0"

// Fixed tabular column order shared by the CSV and XLSX exports.
var tableHeader = []string{
	"Datum", "Gewicht (kg)", "Körperfett (%)", "Geschlecht", "Alter",
	"Brust (mm)", "Bauch (mm)", "Trizeps (mm)", "Hüfte (mm)",
	"Oberschenkel (mm)", "Notizen",
}

type exportSvc struct {
	entries entrySvc.EntryService
	backend repository.Backend
	now     func() time.Time
}

// New creates the codec over the entry service and its backend. now may be
// nil and defaults to time.Now.
func New(entries entrySvc.EntryService, backend repository.Backend, now func() time.Time) service.ExportService {
	if now == nil {
		now = time.Now
	}
	return &exportSvc{entries: entries, backend: backend, now: now}
}

func (s *exportSvc) ExportData() (*service.Document, error) {
	entries := s.entries.List()
	out := make([]service.ExportEntry, 0, len(entries))
	for _, e := range entries {
		ee := service.ExportEntry{Entry: e}
		for _, id := range e.Images {
			img, err := s.backend.GetImage(id)
			if err != nil {
				return nil, fmt.Errorf("resolve image %s: %w", id, err)
			}
			if img != nil {
				ee.ImageData = append(ee.ImageData, *img)
			}
		}
		out = append(out, ee)
	}

	settings, err := s.backend.GetSettings()
	if err != nil {
		return nil, err
	}
	return &service.Document{
		Version:    exportVersion,
		ExportDate: s.now(),
		Entries:    out,
		Settings:   &settings,
	}, nil
}

func (s *exportSvc) ImportData(doc *service.Document) error {
	if doc == nil || doc.Entries == nil {
		return service.ErrInvalidFormat
	}

	// Destructive replace, but only after the format check above.
	if err := s.entries.ClearAll(); err != nil {
		return err
	}

	restored := make([]entities.Entry, 0, len(doc.Entries))
	for _, in := range doc.Entries {
		assets := in.ImageData
		if len(assets) == 0 {
			// Legacy form: image payloads live in the top-level map under
			// the entry's original ids.
			for _, oldID := range in.Images {
				if img, ok := doc.Images[oldID]; ok {
					assets = append(assets, img)
				}
			}
		}

		imageIDs := []string{}
		for _, img := range assets {
			id := uuid.NewString()
			if err := s.backend.SaveImage(id, img); err != nil {
				return fmt.Errorf("import image: %w", err)
			}
			imageIDs = append(imageIDs, id)
		}

		e := in.Entry
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = s.now()
		}
		e.Images = imageIDs
		restored = append(restored, e)
	}

	if err := s.entries.Restore(restored); err != nil {
		return err
	}

	if doc.Settings != nil {
		cur, err := s.backend.GetSettings()
		if err != nil {
			return err
		}
		merged := mergeSettings(cur, *doc.Settings)
		if err := s.backend.SaveSettings(merged); err != nil {
			return err
		}
	}
	return nil
}

func mergeSettings(cur, in entities.Settings) entities.Settings {
	if in.GoalWeight != nil {
		cur.GoalWeight = in.GoalWeight
	}
	if in.GoalBodyFat != nil {
		cur.GoalBodyFat = in.GoalBodyFat
	}
	if in.Theme != "" {
		cur.Theme = in.Theme
	}
	if in.DefaultGender != "" {
		cur.DefaultGender = in.DefaultGender
	}
	if in.DefaultAge != nil {
		cur.DefaultAge = in.DefaultAge
	}
	return cur
}

func (s *exportSvc) ExportCSV() (string, error) {
	var b strings.Builder
	b.WriteString(strings.Join(tableHeader, ";"))
	for _, e := range s.entries.List() {
		b.WriteString("\n")
		b.WriteString(strings.Join(tableRow(e, true), ";"))
	}
	return b.String(), nil
}

func (s *exportSvc) ExportXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, e := range s.entries.List() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cells := tableRow(e, false)
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tableRow renders one entry in the fixed column order. quoteNotes wraps the
// notes cell in doubled-quote escaping for the semicolon CSV; the XLSX path
// takes the raw text.
func tableRow(e entities.Entry, quoteNotes bool) []string {
	sf := e.Skinfolds
	if sf == nil {
		sf = &entities.Skinfolds{}
	}
	notes := e.Notes
	if quoteNotes {
		notes = `"` + strings.ReplaceAll(notes, `"`, `""`) + `"`
	}
	return []string{
		germanTimestamp(e.Date),
		formatFloat(&e.Weight),
		formatFloat(e.BodyFat),
		genderLabel(e.Gender),
		formatInt(e.Age),
		formatFloat(sf.Chest),
		formatFloat(sf.Abdomen),
		formatFloat(sf.Triceps),
		formatFloat(sf.Suprailiac),
		formatFloat(sf.Thigh),
		notes,
	}
}

// germanTimestamp matches the de-DE locale rendering, e.g. "2.1.2026, 07:30:00".
func germanTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d, %02d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}

func genderLabel(g entities.Gender) string {
	switch g {
	case entities.GenderMale:
		return "Männlich"
	case entities.GenderFemale:
		return "Weiblich"
	}
	return ""
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
