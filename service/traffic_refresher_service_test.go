package service_test

import (
	"context"
	"testing"
	"time"

	redisdao "staffing-server/dao/redis"
	"staffing-server/db"
	"staffing-server/models"
	"staffing-server/service"
	"staffing-server/week"
)

func TestRefreshTrafficData_WarmsAndCleans(t *testing.T) {
	dao := redisdao.NewRedisTrafficDAO(db.NewMockRedisClient(context.Background()))

	monday := week.MondayOf(time.Now())
	recent := monday.Format(week.DATE_LAYOUT)
	stale := monday.AddDate(0, 0, -service.SAMPLE_RETENTION_DAYS-7).Format(week.DATE_LAYOUT)

	for _, date := range []string{recent, stale} {
		if err := dao.SetDaySample("S001", &models.TrafficSample{StoreCode: "S001", Date: date}); err != nil {
			t.Fatal(err)
		}
	}

	ts := service.NewTrafficService(newFakeCountersAPI(true), dao)
	refresher := service.NewTrafficRefresherService(ts, dao, []string{"S001"})

	if err := refresher.RefreshTrafficData(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The current week's aggregate is warmed.
	agg, err := dao.GetWeekAggregate("S001", week.Of(monday))
	if err != nil {
		t.Fatal(err)
	}
	if agg == nil {
		t.Fatal("Expected a cached week aggregate after the refresh")
	}

	// Samples beyond the retention window are dropped, recent ones kept.
	if s, err := dao.GetDaySample("S001", stale); err != nil || s != nil {
		t.Errorf("Expected the stale sample to be gone, got %+v / %v", s, err)
	}
	if s, err := dao.GetDaySample("S001", recent); err != nil || s == nil {
		t.Errorf("Expected the recent sample to survive, got %+v / %v", s, err)
	}
}

func TestRefreshTrafficData_SkipsFailingStore(t *testing.T) {
	fake := newFakeCountersAPI(false) // bulk down and no per-date data
	ts := service.NewTrafficService(fake, nil)
	refresher := service.NewTrafficRefresherService(ts, nil, []string{"S001"})

	if err := refresher.RefreshTrafficData(); err != nil {
		t.Errorf("A failing store is skipped, not an error: %v", err)
	}
}
