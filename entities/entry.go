package entities

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Skinfolds holds caliper measurements in millimetres. Which sites are
// required depends on gender: chest/abdomen/thigh for male,
// triceps/suprailiac/thigh for female.
type Skinfolds struct {
	Chest      *float64 `json:"chest,omitempty"`
	Abdomen    *float64 `json:"abdomen,omitempty"`
	Triceps    *float64 `json:"triceps,omitempty"`
	Suprailiac *float64 `json:"suprailiac,omitempty"`
	Thigh      *float64 `json:"thigh,omitempty"`
}

// SumFor returns the three-site sum for the given gender. ok is false when
// any required site is missing.
func (s *Skinfolds) SumFor(g Gender) (float64, bool) {
	if s == nil {
		return 0, false
	}
	switch g {
	case GenderMale:
		if s.Chest == nil || s.Abdomen == nil || s.Thigh == nil {
			return 0, false
		}
		return *s.Chest + *s.Abdomen + *s.Thigh, true
	case GenderFemale:
		if s.Triceps == nil || s.Suprailiac == nil || s.Thigh == nil {
			return 0, false
		}
		return *s.Triceps + *s.Suprailiac + *s.Thigh, true
	}
	return 0, false
}

// MaleSkinfolds builds a chest/abdomen/thigh set.
func MaleSkinfolds(chest, abdomen, thigh float64) *Skinfolds {
	return &Skinfolds{Chest: &chest, Abdomen: &abdomen, Thigh: &thigh}
}

// FemaleSkinfolds builds a triceps/suprailiac/thigh set.
func FemaleSkinfolds(triceps, suprailiac, thigh float64) *Skinfolds {
	return &Skinfolds{Triceps: &triceps, Suprailiac: &suprailiac, Thigh: &thigh}
}

// Entry is a single body measurement event.
type Entry struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Weight    float64    `json:"weight"` // kg
	BodyFat   *float64   `json:"bodyFat"`
	Gender    Gender     `json:"gender,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Skinfolds *Skinfolds `json:"skinfolds,omitempty"`
	Notes     string     `json:"notes"`
	Images    []string   `json:"images"`
	CreatedAt time.Time  `json:"createdAt"`
}

// HasCaliperData reports whether the entry carries everything needed to
// derive body fat from skinfolds.
func (e *Entry) HasCaliperData() bool {
	if e.Gender == "" || e.Age == nil || e.Skinfolds == nil {
		return false
	}
	_, ok := e.Skinfolds.SumFor(e.Gender)
	return ok
}
