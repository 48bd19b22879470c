package service

import (
	"log"
	"time"

	redisdao "staffing-server/dao/redis"
	"staffing-server/week"
)

// SAMPLE_RETENTION_DAYS is how far back cached day samples are kept: the
// four-week average never reaches further than 28 days before the current
// Monday.
const SAMPLE_RETENTION_DAYS = 28

// TrafficRefresherService periodically warms the traffic cache for a fixed
// set of store codes so day views hit Redis instead of the counters API.
type TrafficRefresherService struct {
	trafficService *TrafficService
	trafficDao     *redisdao.RedisTrafficDAO
	storeCodes     []string
}

// NewTrafficRefresherService constructs a new Refresher with dependencies.
func NewTrafficRefresherService(
	trafficService *TrafficService,
	trafficDao *redisdao.RedisTrafficDAO,
	storeCodes []string,
) *TrafficRefresherService {
	return &TrafficRefresherService{
		trafficService: trafficService,
		trafficDao:     trafficDao,
		storeCodes:     storeCodes,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (tr *TrafficRefresherService) StartPeriodicJob(interval time.Duration) {
	go tr.startPeriodicJob(interval)
}

func (tr *TrafficRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[TrafficRefresherService] Running periodic traffic refresher job.")
		if err := tr.RefreshTrafficData(); err != nil {
			log.Printf("[TrafficRefresherService] RefreshTrafficData returned error: %v", err)
		} else {
			log.Println("[TrafficRefresherService] RefreshTrafficData completed successfully.")
		}
	}
}

// RefreshTrafficData re-aggregates the current week for every configured
// store and caches the result. A failing store is logged and skipped.
func (tr *TrafficRefresherService) RefreshTrafficData() error {
	monday := week.MondayOf(time.Now())
	weekID := week.Of(monday)

	log.Printf("[TrafficRefresherService] Refreshing %d stores for %s", len(tr.storeCodes), weekID)
	for _, code := range tr.storeCodes {
		agg := tr.trafficService.AggregateWeek(code, monday)
		if agg == nil {
			log.Printf("[TrafficRefresherService] Aggregation failed for %s, skipping.", code)
			continue
		}
		if tr.trafficDao == nil {
			continue
		}
		if err := tr.trafficDao.SetWeekAggregate(code, weekID, agg); err != nil {
			log.Printf("[TrafficRefresherService] Cache write failed for %s: %v", code, err)
		} else {
			log.Printf("[TrafficRefresherService] Cached week aggregate for %s %s", code, weekID)
		}
		tr.cleanupStaleSamples(code, monday)
	}
	return nil
}

// cleanupStaleSamples drops cached day samples older than the retention
// window, plus any whose key no longer parses as a date.
func (tr *TrafficRefresherService) cleanupStaleSamples(storeCode string, monday time.Time) {
	dates, err := tr.trafficDao.ListCachedSampleDates(storeCode)
	if err != nil {
		log.Printf("[TrafficRefresherService] Listing cached samples failed for %s: %v", storeCode, err)
		return
	}

	cutoff := monday.AddDate(0, 0, -SAMPLE_RETENTION_DAYS)
	for _, d := range dates {
		day, err := time.Parse(week.DATE_LAYOUT, d)
		if err == nil && !day.Before(cutoff) {
			continue
		}
		if err := tr.trafficDao.DeleteDaySample(storeCode, d); err != nil {
			log.Printf("[TrafficRefresherService] Stale sample delete failed for %s %s: %v", storeCode, d, err)
		}
	}
}
