package service

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"staffing-server/api/records"
	"staffing-server/models"
	"staffing-server/week"
)

const FOUR_WEEK_AVERAGE_LABEL = "Promedio últimas 4 semanas"
const PRIOR_WEEKS_AVERAGED = 4

// HistoricalService implements the three historical-comparison strategies
// and the selection/fallback chain between them and the standard live path.
type HistoricalService struct {
	trafficService *TrafficService
	recordsAPI     records.RecordsAPI
}

// NewHistoricalService constructs a HistoricalService.
func NewHistoricalService(trafficService *TrafficService, recordsAPI records.RecordsAPI) *HistoricalService {
	return &HistoricalService{
		trafficService: trafficService,
		recordsAPI:     recordsAPI,
	}
}

// Resolve picks the comparison strategy for a store and target date and runs
// it, falling back to the standard live-week aggregation on any failure.
// It never panics; the worst case is nil.
func (hs *HistoricalService) Resolve(params *models.StoreParams, target time.Time) *models.AggregatedTraffic {
	storeCode := params.CounterCode
	if storeCode == "" {
		storeCode = params.StoreID
	}

	if !params.HistoricalEnabled {
		if agg, err := hs.FourWeekAverage(storeCode, target); err == nil {
			return agg
		} else {
			log.Printf("[HistoricalService] Four-week average failed for %s: %v", storeCode, err)
		}
		return hs.standardPath(storeCode, target)
	}

	// Historical stores are configured per exact target week. A week without
	// an entry goes straight to the standard path.
	cfg, err := hs.recordsAPI.GetHistoricalConfig(params.StoreID, week.Of(target))
	if err != nil {
		log.Printf("[HistoricalService] Config lookup failed for %s: %v", params.StoreID, err)
		return hs.standardPath(storeCode, target)
	}
	if cfg == nil {
		return hs.standardPath(storeCode, target)
	}

	var agg *models.AggregatedTraffic
	switch cfg.Type {
	case models.ConfigDayMapping:
		agg, err = hs.DayMapping(storeCode, cfg.DayMapping, weekDatesOf(target), target)
	case models.ConfigReferenceWeeks:
		agg, err = hs.ReferenceWeeksAverage(storeCode, cfg.ReferenceWeeks, target)
	default:
		err = fmt.Errorf("unknown historical config type %d", cfg.Type)
	}
	if err != nil {
		log.Printf("[HistoricalService] Strategy failed for %s: %v", storeCode, err)
		return hs.standardPath(storeCode, target)
	}
	return agg
}

// FourWeekAverage aggregates all seven days of each of the prior four
// calendar weeks, averaging each weekday/hour cell only over the weeks that
// actually returned data for it.
func (hs *HistoricalService) FourWeekAverage(storeCode string, target time.Time) (*models.AggregatedTraffic, error) {
	monday := week.MondayOf(target)

	var dates []string
	for w := 1; w <= PRIOR_WEEKS_AVERAGED; w++ {
		priorMonday := monday.AddDate(0, 0, -7*w)
		for i := 0; i < 7; i++ {
			dates = append(dates, priorMonday.AddDate(0, 0, i).Format(week.DATE_LAYOUT))
		}
	}

	agg, err := hs.averageDates(storeCode, dates, target)
	if err != nil {
		return nil, err
	}
	agg.ReferenceWeeksUsed = []string{FOUR_WEEK_AVERAGE_LABEL}
	return agg, nil
}

// ReferenceWeeksAverage aggregates the seven dates of every configured
// reference week, with the same available-samples-only averaging rule.
func (hs *HistoricalService) ReferenceWeeksAverage(storeCode string, referenceWeeks []string, target time.Time) (*models.AggregatedTraffic, error) {
	if len(referenceWeeks) == 0 {
		return nil, fmt.Errorf("empty reference week list for store %s", storeCode)
	}

	var dates []string
	for _, id := range referenceWeeks {
		days, err := week.DayStrings(id)
		if err != nil {
			return nil, fmt.Errorf("bad reference week %q: %w", id, err)
		}
		dates = append(dates, days...)
	}

	agg, err := hs.averageDates(storeCode, dates, target)
	if err != nil {
		return nil, err
	}
	agg.ReferenceWeeksUsed = append([]string{}, referenceWeeks...)
	return agg, nil
}

// DayMapping fetches each mapped reference date verbatim: no averaging, the
// single reference sample becomes the target weekday's bucket as-is. Target
// dates without a mapping entry are skipped; a single-date request still
// returns the complete shape with one weekday populated. The target date's
// weekday bucket becomes the hours of interest.
func (hs *HistoricalService) DayMapping(storeCode string, mapping map[string]string, targetDates []string, target time.Time) (*models.AggregatedTraffic, error) {
	if len(mapping) == 0 {
		return nil, fmt.Errorf("empty day mapping for store %s", storeCode)
	}

	type pair struct{ target, reference string }
	var pairs []pair
	var refDates []string
	for _, t := range targetDates {
		ref, ok := mapping[t]
		if !ok {
			continue
		}
		pairs = append(pairs, pair{target: t, reference: ref})
		refDates = append(refDates, ref)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no mapping entries for the requested dates of store %s", storeCode)
	}

	samples, err := hs.trafficService.FetchRange(storeCode, refDates)
	if err != nil {
		return nil, err
	}

	agg := models.NewAggregatedTraffic(true)
	var usedRefs []string
	for _, p := range pairs {
		sample, ok := samples[p.reference]
		if !ok {
			continue
		}
		targetDay, err := time.Parse(week.DATE_LAYOUT, p.target)
		if err != nil {
			return nil, fmt.Errorf("bad target date %q in mapping: %w", p.target, err)
		}
		dayName := models.WeekdayName(targetDay.Weekday())
		bucket := agg.ByWeekday[dayName]
		for label, counts := range sample.Hours {
			bucket[label] = counts
		}
		usedRefs = append(usedRefs, p.reference)
	}
	if len(usedRefs) == 0 {
		return nil, fmt.Errorf("no reference samples available for store %s", storeCode)
	}

	sort.Strings(usedRefs)
	agg.PeriodStart = usedRefs[0]
	agg.PeriodEnd = usedRefs[len(usedRefs)-1]
	if len(usedRefs) == 1 {
		agg.ReferenceWeeksUsed = []string{"Día exacto: " + usedRefs[0]}
	} else {
		agg.ReferenceWeeksUsed = []string{"Días específicos: " + strings.Join(usedRefs, ", ")}
	}

	agg.HoursOfInterest = copyHourMap(agg.ByWeekday[models.WeekdayName(target.Weekday())])
	agg.TotalMorning, agg.TotalAfternoon = splitMorningAfternoon(agg.HoursOfInterest)
	return agg, nil
}

// averageDates fetches a set of dates, groups the returned samples by
// weekday, and averages every weekday/hour cell over the samples that carry
// it. Weekdays with no samples stay empty rather than zero-filled.
func (hs *HistoricalService) averageDates(storeCode string, dates []string, target time.Time) (*models.AggregatedTraffic, error) {
	samples, err := hs.trafficService.FetchRange(storeCode, dates)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no historical samples available for store %s", storeCode)
	}

	type cellSum struct {
		counts models.HourCounts
		n      int
	}
	sums := make(map[string]map[string]*cellSum)
	for _, name := range models.WeekdayNames {
		sums[name] = make(map[string]*cellSum)
	}

	var fetched []string
	for date, s := range samples {
		day, err := time.Parse(week.DATE_LAYOUT, date)
		if err != nil {
			continue
		}
		fetched = append(fetched, date)
		bucket := sums[models.WeekdayName(day.Weekday())]
		for label, counts := range s.Hours {
			cell, ok := bucket[label]
			if !ok {
				cell = &cellSum{}
				bucket[label] = cell
			}
			cell.counts.Add(counts)
			cell.n++
		}
	}

	agg := models.NewAggregatedTraffic(true)
	for name, bucket := range sums {
		for label, cell := range bucket {
			agg.ByWeekday[name][label] = models.HourCounts{
				Entries: roundDiv(cell.counts.Entries, cell.n),
				Tickets: roundDiv(cell.counts.Tickets, cell.n),
				Revenue: round2(cell.counts.Revenue / float64(cell.n)),
			}
		}
	}

	sort.Strings(fetched)
	agg.PeriodStart = fetched[0]
	agg.PeriodEnd = fetched[len(fetched)-1]

	agg.HoursOfInterest = copyHourMap(agg.ByWeekday[models.WeekdayName(target.Weekday())])
	agg.TotalMorning, agg.TotalAfternoon = splitMorningAfternoon(agg.HoursOfInterest)
	return agg, nil
}

// standardPath is the live single-week aggregation; the end of the fallback
// chain. A refresher-warmed aggregate is served when present.
func (hs *HistoricalService) standardPath(storeCode string, target time.Time) *models.AggregatedTraffic {
	monday := week.MondayOf(target)
	if agg := hs.trafficService.CachedWeekAggregate(storeCode, monday); agg != nil {
		return agg
	}
	return hs.trafficService.AggregateWeek(storeCode, monday)
}

func weekDatesOf(target time.Time) []string {
	monday := week.MondayOf(target)
	out := make([]string, 7)
	for i := range out {
		out[i] = monday.AddDate(0, 0, i).Format(week.DATE_LAYOUT)
	}
	return out
}

func copyHourMap(src map[string]models.HourCounts) map[string]models.HourCounts {
	out := make(map[string]models.HourCounts, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
