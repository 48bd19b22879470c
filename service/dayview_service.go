package service

import (
	"fmt"
	"log"
	"time"

	"staffing-server/api/records"
	redisdao "staffing-server/dao/redis"
	"staffing-server/hours"
	"staffing-server/models"
	"staffing-server/slots"
	"staffing-server/week"
)

// DayView is everything the UI needs for one store day: the slot grid, the
// resolved traffic comparison, per-hour staffing recommendations and the
// day's hour accounting.
type DayView struct {
	StoreID string `json:"store_id"`
	Date    string `json:"date"`
	Week    string `json:"week"`

	Slots      []string                  `json:"slots"`
	Aggregated *models.AggregatedTraffic `json:"aggregated,omitempty"`

	Recommendations map[string]float64 `json:"recommendations"`
	EffectiveHours  float64            `json:"effective_hours"`
	PlusByEmployee  map[string]float64 `json:"plus_by_employee"`
}

// DayViewService composes the week identifier, comparison resolution,
// recommendation formula and hour accounting for one request.
type DayViewService struct {
	recordsAPI     records.RecordsAPI
	trafficDao     *redisdao.RedisTrafficDAO // optional params cache
	historical     *HistoricalService
	recommendation *RecommendationService
}

// NewDayViewService constructs a DayViewService. trafficDao may be nil when
// no cache is wired.
func NewDayViewService(
	recordsAPI records.RecordsAPI,
	trafficDao *redisdao.RedisTrafficDAO,
	historical *HistoricalService,
	recommendation *RecommendationService,
) *DayViewService {
	return &DayViewService{
		recordsAPI:     recordsAPI,
		trafficDao:     trafficDao,
		historical:     historical,
		recommendation: recommendation,
	}
}

// GetDayView builds the view for one store and date. Collaborator failures
// degrade to cached params or empty sections; only an unparseable date is an
// error. rounded selects nearest-integer recommendations.
func (s *DayViewService) GetDayView(storeID, date string, rounded bool) (*DayView, error) {
	target, err := time.Parse(week.DATE_LAYOUT, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	params := s.loadStoreParams(storeID)

	view := &DayView{
		StoreID:         storeID,
		Date:            date,
		Week:            week.Of(target),
		Slots:           slots.Generate(params.Country, params.OpenSpec, params.CloseSpec),
		Recommendations: map[string]float64{},
		PlusByEmployee:  map[string]float64{},
	}

	view.Aggregated = s.historical.Resolve(params, target)
	if view.Aggregated != nil {
		recs, err := s.recommendation.RecommendSeries(view.Aggregated, params, nil, rounded)
		if err != nil {
			log.Printf("[DayViewService] Recommendation failed for %s: %v", storeID, err)
		} else {
			view.Recommendations = recs
		}
	}

	assignments, err := s.recordsAPI.GetDayActivities(storeID, date)
	if err != nil {
		log.Printf("[DayViewService] Activities unavailable for %s %s: %v", storeID, date, err)
		assignments = nil
	}
	view.EffectiveHours = hours.Effective(assignments, params.Country, params.OpenSpec, params.CloseSpec)
	for _, a := range assignments {
		view.PlusByEmployee[a.EmployeeID] = hours.EmployeePlus(
			a, a.ContractHours, params.Country, params.OpenSpec, params.CloseSpec)
	}

	return view, nil
}

// loadStoreParams reads the store record, falling back to the cached copy
// when the record store is unreachable, and to bare defaults after that.
// Fresh reads refresh the cache.
func (s *DayViewService) loadStoreParams(storeID string) *models.StoreParams {
	params, err := s.recordsAPI.GetStoreParams(storeID)
	if err == nil && params != nil {
		if s.trafficDao != nil {
			if err := s.trafficDao.SetStoreParams(params); err != nil {
				log.Printf("[DayViewService] Params cache write failed for %s: %v", storeID, err)
			}
		}
		return params
	}
	log.Printf("[DayViewService] Store params unavailable for %s: %v", storeID, err)

	if s.trafficDao != nil {
		cached, err := s.trafficDao.GetStoreParams(storeID)
		if err != nil {
			log.Printf("[DayViewService] Params cache read failed for %s: %v", storeID, err)
		} else if cached != nil {
			return cached
		}
	}

	// Missing store record: defaults still render a usable grid.
	return &models.StoreParams{StoreID: storeID, CounterCode: storeID}
}

// WeekDays returns the seven calendar dates of a week identifier.
func (s *DayViewService) WeekDays(identifier string) ([]string, error) {
	return week.DayStrings(identifier)
}

// UpdateActivitySlot forwards a single-slot change to the record store.
func (s *DayViewService) UpdateActivitySlot(storeID, date, employeeID, slot, status string) error {
	return s.recordsAPI.UpdateActivitySlot(storeID, date, employeeID, slot, status)
}
