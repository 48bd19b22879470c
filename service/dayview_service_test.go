package service_test

import (
	"context"
	"testing"

	redisdao "staffing-server/dao/redis"
	"staffing-server/db"
	"staffing-server/models"
	"staffing-server/service"
)

func newDayViewService(countersFake *fakeCountersAPI, recordsFake *fakeRecordsAPI, dao *redisdao.RedisTrafficDAO) *service.DayViewService {
	ts := service.NewTrafficService(countersFake, nil)
	hs := service.NewHistoricalService(ts, recordsFake)
	return service.NewDayViewService(recordsFake, dao, hs, service.NewRecommendationService())
}

func TestGetDayView_ComposesSections(t *testing.T) {
	countersFake := newFakeCountersAPI(true)
	countersFake.add("2024-06-04", entriesOnly(map[string]int{"12:00": 50}))

	recordsFake := newFakeRecordsAPI()
	recordsFake.stores["S001"] = models.StoreParams{
		StoreID:     "S001",
		CounterCode: "C-0001",
		Country:     "ESPAÑA",
		OpenSpec:    "09:00",
		CloseSpec:   "21:00",
	}

	dv := newDayViewService(countersFake, recordsFake, nil)

	view, err := dv.GetDayView("S001", "2024-06-11", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if view.Week != "W24 2024" {
		t.Errorf("Expected week W24 2024, got %s", view.Week)
	}
	if len(view.Slots) != 24 {
		t.Errorf("Expected 24 half-hour slots for 09:00-21:00, got %d", len(view.Slots))
	}
	if view.Aggregated == nil {
		t.Fatal("Expected an aggregate from the four-week average")
	}
	if !view.Aggregated.IsHistorical {
		t.Error("Non-historical store still gets the four-week comparison")
	}
	// 50 entries on the prior Tuesday: (50 x 1.05) / 12.5 = 4.2
	if view.Recommendations["12:00"] != 4.2 {
		t.Errorf("Expected recommendation 4.2, got %v", view.Recommendations["12:00"])
	}
}

func TestGetDayView_RoundedRecommendations(t *testing.T) {
	countersFake := newFakeCountersAPI(true)
	countersFake.add("2024-06-04", entriesOnly(map[string]int{"12:00": 50}))

	recordsFake := newFakeRecordsAPI()
	recordsFake.stores["S001"] = models.StoreParams{StoreID: "S001", CounterCode: "C-0001"}

	dv := newDayViewService(countersFake, recordsFake, nil)

	view, err := dv.GetDayView("S001", "2024-06-11", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// 4.2 rounds to the nearest whole headcount.
	if view.Recommendations["12:00"] != 4 {
		t.Errorf("Expected rounded recommendation 4, got %v", view.Recommendations["12:00"])
	}
}

func TestGetDayView_MissingStoreStillRenders(t *testing.T) {
	countersFake := newFakeCountersAPI(true)
	recordsFake := newFakeRecordsAPI() // no stores registered

	dv := newDayViewService(countersFake, recordsFake, nil)

	view, err := dv.GetDayView("ghost", "2024-06-11", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view.Slots) == 0 {
		t.Error("Expected the default slot grid for a missing store record")
	}
	if view.EffectiveHours != 0 {
		t.Errorf("Expected zero effective hours, got %v", view.EffectiveHours)
	}
}

// A records-API outage falls back to the last cached store record, so the
// French 15-minute grid survives instead of degrading to defaults.
func TestGetDayView_UsesCachedParamsWhenRecordsDown(t *testing.T) {
	dao := redisdao.NewRedisTrafficDAO(db.NewMockRedisClient(context.Background()))
	if err := dao.SetStoreParams(&models.StoreParams{
		StoreID:   "S001",
		Country:   "FRANCIA",
		OpenSpec:  "10:00",
		CloseSpec: "12:00",
	}); err != nil {
		t.Fatal(err)
	}

	recordsFake := newFakeRecordsAPI() // GetStoreParams errors for every store
	dv := newDayViewService(newFakeCountersAPI(true), recordsFake, dao)

	view, err := dv.GetDayView("S001", "2024-06-11", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// 10:00-12:00 at 15-minute granularity.
	if len(view.Slots) != 8 {
		t.Errorf("Expected the cached French grid (8 slots), got %v", view.Slots)
	}
}

func TestGetDayView_CachesFreshParams(t *testing.T) {
	dao := redisdao.NewRedisTrafficDAO(db.NewMockRedisClient(context.Background()))

	recordsFake := newFakeRecordsAPI()
	recordsFake.stores["S001"] = models.StoreParams{StoreID: "S001", Country: "ESPAÑA"}

	dv := newDayViewService(newFakeCountersAPI(true), recordsFake, dao)

	if _, err := dv.GetDayView("S001", "2024-06-11", false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cached, err := dao.GetStoreParams("S001")
	if err != nil {
		t.Fatal(err)
	}
	if cached == nil || cached.Country != "ESPAÑA" {
		t.Errorf("Expected the fresh record in the cache, got %+v", cached)
	}
}

func TestGetDayView_InvalidDate(t *testing.T) {
	dv := newDayViewService(newFakeCountersAPI(true), newFakeRecordsAPI(), nil)

	if _, err := dv.GetDayView("S001", "11/06/2024", false); err == nil {
		t.Error("Expected an error for a non-ISO date")
	}
}
