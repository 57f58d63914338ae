package serviceImp

import (
	"sort"
	"time"

	entrySvc "bodytracker/pkg/entry/service"
	"bodytracker/pkg/stats/service"
)

type statsSvc struct {
	entries entrySvc.EntryService
	now     func() time.Time
}

// New creates the aggregator over the entry service. now may be nil and
// defaults to time.Now; tests pin it.
func New(entries entrySvc.EntryService, now func() time.Time) service.StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsSvc{entries: entries, now: now}
}

// cutoff maps a range to its window start: now-7d for week, one calendar
// month / year back for month / year, the epoch for everything else.
func (s *statsSvc) cutoff(r service.Range) time.Time {
	now := s.now()
	switch r {
	case service.RangeWeek:
		return now.Add(-7 * 24 * time.Hour)
	case service.RangeMonth:
		return now.AddDate(0, -1, 0)
	case service.RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

func (s *statsSvc) GetStatistics(r service.Range) (*service.Summary, error) {
	all := s.entries.List()
	if len(all) == 0 {
		return nil, nil
	}

	cut := s.cutoff(r)
	windowed := all[:0:0]
	for _, e := range all {
		if !e.Date.Before(cut) {
			windowed = append(windowed, e)
		}
	}
	if len(windowed) == 0 {
		return nil, nil
	}

	sort.SliceStable(windowed, func(i, j int) bool {
		return windowed[i].Date.Before(windowed[j].Date)
	})

	first := windowed[0]
	latest := windowed[len(windowed)-1]

	sum := service.Summary{
		CurrentWeight:  latest.Weight,
		CurrentBodyFat: latest.BodyFat,
		WeightChange:   latest.Weight - first.Weight,
		TotalEntries:   len(windowed),
		LastEntryDate:  latest.Date,
		Entries:        windowed,
	}
	if latest.BodyFat != nil && first.BodyFat != nil {
		d := *latest.BodyFat - *first.BodyFat
		sum.BodyFatChange = &d
	}

	sum.MinWeight = first.Weight
	sum.MaxWeight = first.Weight
	var wTotal float64
	var fMin, fMax, fTotal float64
	fCount := 0
	for _, e := range windowed {
		wTotal += e.Weight
		if e.Weight < sum.MinWeight {
			sum.MinWeight = e.Weight
		}
		if e.Weight > sum.MaxWeight {
			sum.MaxWeight = e.Weight
		}
		if e.BodyFat != nil {
			if fCount == 0 || *e.BodyFat < fMin {
				fMin = *e.BodyFat
			}
			if fCount == 0 || *e.BodyFat > fMax {
				fMax = *e.BodyFat
			}
			fTotal += *e.BodyFat
			fCount++
		}
	}
	sum.AvgWeight = wTotal / float64(len(windowed))
	if fCount > 0 {
		avg := fTotal / float64(fCount)
		min, max := fMin, fMax
		sum.MinBodyFat = &min
		sum.MaxBodyFat = &max
		sum.AvgBodyFat = &avg
	}
	return &sum, nil
}
