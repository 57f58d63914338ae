package serviceImp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bodytracker/entities"
	entrySvc "bodytracker/pkg/entry/service"
	svc "bodytracker/pkg/stats/service"
	"bodytracker/pkg/stats/serviceImp"
)

// entryStub serves a fixed snapshot; only List is consulted by the
// aggregator.
type entryStub struct {
	entrySvc.EntryService
	entries []entities.Entry
}

func (s *entryStub) List() []entities.Entry { return s.entries }

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func f(v float64) *float64 { return &v }

func entry(id string, daysAgo int, weight float64, fat *float64) entities.Entry {
	return entities.Entry{ID: id, Date: now.AddDate(0, 0, -daysAgo), Weight: weight, BodyFat: fat}
}

func newStats(entries ...entities.Entry) svc.StatsService {
	return serviceImp.New(&entryStub{entries: entries}, fixedNow)
}

func TestGetStatistics_EmptyCollection(t *testing.T) {
	sum, err := newStats().GetStatistics(svc.RangeWeek)
	assert.NoError(t, err)
	assert.Nil(t, sum)
}

func TestGetStatistics_NoEntryInWindow(t *testing.T) {
	sum, err := newStats(entry("a", 30, 80, nil)).GetStatistics(svc.RangeWeek)
	assert.NoError(t, err)
	assert.Nil(t, sum)
}

func TestGetStatistics_SingleEntryToday(t *testing.T) {
	sum, err := newStats(entry("a", 0, 81.2, f(18.0))).GetStatistics(svc.RangeWeek)
	assert.NoError(t, err)
	if !assert.NotNil(t, sum) {
		return
	}
	assert.Equal(t, 0.0, sum.WeightChange)
	if assert.NotNil(t, sum.BodyFatChange) {
		assert.Equal(t, 0.0, *sum.BodyFatChange)
	}
	assert.Equal(t, 81.2, sum.CurrentWeight)
	assert.Equal(t, 1, sum.TotalEntries)
}

func TestGetStatistics_WindowFiltersAndAggregates(t *testing.T) {
	sum, err := newStats(
		entry("old", 40, 90, f(25)), // outside the month window
		entry("a", 20, 84, f(20)),
		entry("b", 10, 82, nil),
		entry("c", 1, 81, f(18)),
	).GetStatistics(svc.RangeMonth)
	assert.NoError(t, err)
	if !assert.NotNil(t, sum) {
		return
	}
	assert.Equal(t, 3, sum.TotalEntries)
	assert.Equal(t, 81.0, sum.CurrentWeight)
	assert.InDelta(t, -3.0, sum.WeightChange, 1e-9) // 81 - 84
	if assert.NotNil(t, sum.BodyFatChange) {
		assert.InDelta(t, -2.0, *sum.BodyFatChange, 1e-9)
	}
	assert.Equal(t, 81.0, sum.MinWeight)
	assert.Equal(t, 84.0, sum.MaxWeight)
	assert.InDelta(t, (84.0+82.0+81.0)/3, sum.AvgWeight, 1e-9)
	// body fat aggregates skip the entry without a value
	if assert.NotNil(t, sum.AvgBodyFat) {
		assert.InDelta(t, 19.0, *sum.AvgBodyFat, 1e-9)
		assert.Equal(t, 18.0, *sum.MinBodyFat)
		assert.Equal(t, 20.0, *sum.MaxBodyFat)
	}
	assert.Equal(t, now.AddDate(0, 0, -1), sum.LastEntryDate)
}

func TestGetStatistics_EntriesSortedAscendingForCharts(t *testing.T) {
	sum, err := newStats(
		entry("c", 1, 81, nil),
		entry("a", 20, 84, nil),
		entry("b", 10, 82, nil),
	).GetStatistics(svc.RangeAll)
	assert.NoError(t, err)
	if !assert.NotNil(t, sum) {
		return
	}
	assert.Equal(t, []string{"a", "b", "c"}, []string{sum.Entries[0].ID, sum.Entries[1].ID, sum.Entries[2].ID})
}

func TestGetStatistics_BodyFatChangeAbsentWhenEndpointMissing(t *testing.T) {
	sum, err := newStats(
		entry("a", 5, 84, nil), // earliest has no body fat
		entry("b", 1, 82, f(18)),
	).GetStatistics(svc.RangeAll)
	assert.NoError(t, err)
	if !assert.NotNil(t, sum) {
		return
	}
	assert.Nil(t, sum.BodyFatChange)
	assert.NotNil(t, sum.CurrentBodyFat)
}

func TestGetStatistics_CalendarMonthWindow(t *testing.T) {
	// 35 days ago falls outside now-1 calendar month, 27 days ago inside.
	sum, err := newStats(
		entry("out", 35, 90, nil),
		entry("in", 27, 80, nil),
	).GetStatistics(svc.RangeMonth)
	assert.NoError(t, err)
	if !assert.NotNil(t, sum) {
		return
	}
	assert.Equal(t, 1, sum.TotalEntries)
	assert.Equal(t, "in", sum.Entries[0].ID)
}
