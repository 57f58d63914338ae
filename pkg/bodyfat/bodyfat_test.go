package bodyfat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"bodytracker/entities"
	"bodytracker/pkg/bodyfat"
)

func intPtr(v int) *int { return &v }

func TestCalculate_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		gender entities.Gender
		age    int
		folds  *entities.Skinfolds
		want   float64
	}{
		{"male 3-site", entities.GenderMale, 35, entities.MaleSkinfolds(15, 25, 18), 18.0},
		{"female 3-site", entities.GenderFemale, 30, entities.FemaleSkinfolds(18, 14, 20), 21.5},
		{"female high folds", entities.GenderFemale, 99, entities.FemaleSkinfolds(60, 60, 60), 54.3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bodyfat.Calculate(tc.gender, intPtr(tc.age), tc.folds)
			if assert.NotNil(t, got) {
				assert.InDelta(t, tc.want, *got, 1e-9)
			}
		})
	}
}

func TestCalculate_ClampsToLowerBound(t *testing.T) {
	// Implausibly lean input drives the raw estimate negative.
	got := bodyfat.Calculate(entities.GenderMale, intPtr(20), entities.MaleSkinfolds(1, 1, 1))
	if assert.NotNil(t, got) {
		assert.Equal(t, bodyfat.MinPercent, *got)
	}
}

func TestCalculate_MissingInput(t *testing.T) {
	age := 35
	tests := []struct {
		name   string
		gender entities.Gender
		age    *int
		folds  *entities.Skinfolds
	}{
		{"no gender", "", &age, entities.MaleSkinfolds(15, 25, 18)},
		{"no age", entities.GenderMale, nil, entities.MaleSkinfolds(15, 25, 18)},
		{"no skinfolds", entities.GenderMale, &age, nil},
		{"male set missing abdomen", entities.GenderMale, &age, &entities.Skinfolds{Chest: float64Ptr(15), Thigh: float64Ptr(18)}},
		{"female fields for male", entities.GenderMale, &age, entities.FemaleSkinfolds(18, 14, 20)},
		{"unknown gender", entities.Gender("other"), &age, entities.MaleSkinfolds(15, 25, 18)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, bodyfat.Calculate(tc.gender, tc.age, tc.folds))
		})
	}
}

func TestCalculate_RangeAndPrecision(t *testing.T) {
	// Sweep a grid of plausible male inputs: every result stays inside the
	// clamp window and carries at most one decimal place.
	for age := 10; age <= 100; age += 10 {
		for base := 2.0; base <= 60; base += 7 {
			got := bodyfat.Calculate(entities.GenderMale, intPtr(age), entities.MaleSkinfolds(base, base+5, base+2))
			if !assert.NotNil(t, got) {
				continue
			}
			assert.GreaterOrEqual(t, *got, bodyfat.MinPercent)
			assert.LessOrEqual(t, *got, bodyfat.MaxPercent)
			scaled := *got * 10
			assert.InDelta(t, math.Round(scaled), scaled, 1e-6)
		}
	}
}

func float64Ptr(v float64) *float64 { return &v }
