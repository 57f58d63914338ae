package service

import (
	"time"

	"bodytracker/entities"
)

// Range selects the statistics window.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
	RangeAll   Range = "all"
)

// Summary aggregates the entries inside a window. Body-fat fields are nil
// when no entry in the window carries a value. Entries is the window's
// content sorted ascending by date, ready for charting.
type Summary struct {
	CurrentWeight  float64          `json:"currentWeight"`
	CurrentBodyFat *float64         `json:"currentBodyFat"`
	WeightChange   float64          `json:"weightChange"`
	BodyFatChange  *float64         `json:"bodyFatChange"`
	MinWeight      float64          `json:"minWeight"`
	MaxWeight      float64          `json:"maxWeight"`
	AvgWeight      float64          `json:"avgWeight"`
	MinBodyFat     *float64         `json:"minBodyFat"`
	MaxBodyFat     *float64         `json:"maxBodyFat"`
	AvgBodyFat     *float64         `json:"avgBodyFat"`
	TotalEntries   int              `json:"totalEntries"`
	LastEntryDate  time.Time        `json:"lastEntryDate"`
	Entries        []entities.Entry `json:"entries"`
}

// StatsService computes window summaries over the current entry snapshot.
type StatsService interface {
	// GetStatistics returns nil when no entry falls inside the window.
	GetStatistics(r Range) (*Summary, error)
}
