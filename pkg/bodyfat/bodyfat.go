// Package bodyfat estimates body fat percentage from skinfold caliper
// measurements using the Jackson/Pollock 3-site regression and the Siri
// equation.
package bodyfat

import (
	"math"

	"bodytracker/entities"
)

const (
	MinPercent = 3.0
	MaxPercent = 60.0
)

// Calculate returns the estimated body fat percentage, or nil when gender,
// age or any required skinfold site is missing. The result is clamped to
// [3, 60] and rounded to one decimal place; out-of-range values are clipped,
// not rejected.
func Calculate(gender entities.Gender, age *int, folds *entities.Skinfolds) *float64 {
	if gender == "" || age == nil || folds == nil {
		return nil
	}
	sum, ok := folds.SumFor(gender)
	if !ok {
		return nil
	}

	a := float64(*age)
	var density float64
	switch gender {
	case entities.GenderMale:
		density = 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574*a
	case entities.GenderFemale:
		density = 1.0994921 - 0.0009929*sum + 0.0000023*sum*sum - 0.0001392*a
	default:
		return nil
	}

	pct := 495/density - 450
	pct = math.Round(pct*10) / 10
	pct = math.Max(MinPercent, math.Min(MaxPercent, pct))
	return &pct
}
