package service

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"staffing-server/api/counters"
	redisdao "staffing-server/dao/redis"
	"staffing-server/models"
	"staffing-server/week"
)

// The averaging window is fixed: retail counters report 10:00 through 21:00.
const (
	WINDOW_FIRST_HOUR = 10
	WINDOW_LAST_HOUR  = 21

	// MORNING_END_HOUR is the exclusive upper bound of the morning split.
	MORNING_END_HOUR = 14

	// FETCH_BATCH_SIZE bounds how many per-date fetches run at once.
	FETCH_BATCH_SIZE = 6
)

// TrafficService fetches raw counter data and produces the standard (live,
// non-historical) weekly aggregation.
type TrafficService struct {
	countersAPI counters.CountersAPI
	trafficDao  *redisdao.RedisTrafficDAO // optional read-through cache
}

// NewTrafficService constructs a TrafficService. trafficDao may be nil when
// no cache is wired.
func NewTrafficService(countersAPI counters.CountersAPI, trafficDao *redisdao.RedisTrafficDAO) *TrafficService {
	return &TrafficService{
		countersAPI: countersAPI,
		trafficDao:  trafficDao,
	}
}

// FetchRange fetches one sample per requested date, keyed by date. Duplicate
// dates collapse into a single fetch. The bulk endpoint is tried first; on
// error every date is fetched individually, at most FETCH_BATCH_SIZE in
// flight. A date that fails is simply absent from the result; an error is
// returned only when nothing could be fetched at all.
func (ts *TrafficService) FetchRange(storeCode string, dates []string) (map[string]models.TrafficSample, error) {
	unique := dedupeDates(dates)
	if len(unique) == 0 {
		return map[string]models.TrafficSample{}, nil
	}

	out := make(map[string]models.TrafficSample, len(unique))

	// Cache hits first.
	var toFetch []string
	for _, d := range unique {
		if s := ts.cachedSample(storeCode, d); s != nil {
			out[d] = *s
		} else {
			toFetch = append(toFetch, d)
		}
	}
	if len(toFetch) == 0 {
		return out, nil
	}

	// Bulk fast path.
	if samples, err := ts.countersAPI.GetRangeTraffic(storeCode, toFetch); err == nil {
		for _, s := range samples {
			out[s.Date] = s
			ts.cacheSample(storeCode, s)
		}
		return out, nil
	} else {
		log.Printf("[TrafficService] Bulk fetch failed for %s, falling back to per-date fetches: %v", storeCode, err)
	}

	// Individual fallback with bounded concurrency.
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		sem    = make(chan struct{}, FETCH_BATCH_SIZE)
		failed int
	)
	for _, d := range toFetch {
		wg.Add(1)
		sem <- struct{}{}
		go func(date string) {
			defer wg.Done()
			defer func() { <-sem }()

			s, err := ts.countersAPI.GetDayTraffic(storeCode, date)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || s == nil {
				log.Printf("[TrafficService] Fetch failed for %s %s: %v", storeCode, date, err)
				failed++
				return
			}
			out[date] = *s
			ts.cacheSample(storeCode, *s)
		}(d)
	}
	wg.Wait()

	if len(out) == 0 && failed > 0 {
		return nil, fmt.Errorf("all %d traffic fetches failed for store %s", failed, storeCode)
	}
	return out, nil
}

// AggregateWeek produces the standard live aggregation for the week starting
// at monday: per-weekday buckets plus across-week hourly averages over the
// fixed window, dividing by the full seven days even when some had no data.
// Returns nil when the aggregation as a whole fails; callers must have an
// explicit fallback.
func (ts *TrafficService) AggregateWeek(storeCode string, monday time.Time) *models.AggregatedTraffic {
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i).Format(week.DATE_LAYOUT)
	}

	samples, err := ts.FetchRange(storeCode, dates)
	if err != nil {
		log.Printf("[TrafficService] Week aggregation failed for %s: %v", storeCode, err)
		return nil
	}

	agg := models.NewAggregatedTraffic(false)
	agg.PeriodStart = dates[0]
	agg.PeriodEnd = dates[6]
	agg.ReferenceWeeksUsed = []string{"Semana " + week.Of(monday)}

	// Weekday buckets carry every hour a sample reports; only the running
	// sums are restricted to the fixed window.
	sums := make(map[string]models.HourCounts)
	for i, date := range dates {
		s, ok := samples[date]
		if !ok {
			continue
		}
		dayName := models.WeekdayNames[i]
		for label, counts := range s.Hours {
			agg.ByWeekday[dayName][label] = counts
		}
		for h := WINDOW_FIRST_HOUR; h <= WINDOW_LAST_HOUR; h++ {
			label := models.HourLabel(h)
			counts, ok := s.Hours[label]
			if !ok {
				continue
			}
			sum := sums[label]
			sum.Add(counts)
			sums[label] = sum
		}
	}

	// Missing days count as zeros: the denominator is always seven.
	for label, sum := range sums {
		agg.HoursOfInterest[label] = models.HourCounts{
			Entries: roundDiv(sum.Entries, 7),
			Tickets: roundDiv(sum.Tickets, 7),
			Revenue: round2(sum.Revenue / 7),
		}
	}

	agg.TotalMorning, agg.TotalAfternoon = splitMorningAfternoon(agg.HoursOfInterest)
	return agg
}

// CachedWeekAggregate returns the refresher-warmed aggregate for the week of
// monday, or nil when none is cached.
func (ts *TrafficService) CachedWeekAggregate(storeCode string, monday time.Time) *models.AggregatedTraffic {
	if ts.trafficDao == nil {
		return nil
	}
	agg, err := ts.trafficDao.GetWeekAggregate(storeCode, week.Of(monday))
	if err != nil {
		log.Printf("[TrafficService] Week aggregate cache read failed for %s: %v", storeCode, err)
		return nil
	}
	return agg
}

// cachedSample returns a cached sample or nil; cache errors are treated as
// misses.
func (ts *TrafficService) cachedSample(storeCode, date string) *models.TrafficSample {
	if ts.trafficDao == nil {
		return nil
	}
	s, err := ts.trafficDao.GetDaySample(storeCode, date)
	if err != nil {
		log.Printf("[TrafficService] Cache read failed for %s %s: %v", storeCode, date, err)
		return nil
	}
	return s
}

func (ts *TrafficService) cacheSample(storeCode string, s models.TrafficSample) {
	if ts.trafficDao == nil {
		return
	}
	if err := ts.trafficDao.SetDaySample(storeCode, &s); err != nil {
		log.Printf("[TrafficService] Cache write failed for %s %s: %v", storeCode, s.Date, err)
	}
}

// dedupeDates keeps the first occurrence of each date, preserving order.
func dedupeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	var out []string
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// splitMorningAfternoon totals an hourly profile, splitting at
// MORNING_END_HOUR (morning excludes it).
func splitMorningAfternoon(profile map[string]models.HourCounts) (morning, afternoon models.HourCounts) {
	labels := make([]string, 0, len(profile))
	for label := range profile {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	morningCutoff := models.HourLabel(MORNING_END_HOUR)
	for _, label := range labels {
		if label < morningCutoff {
			morning.Add(profile[label])
		} else {
			afternoon.Add(profile[label])
		}
	}
	return morning, afternoon
}

func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
