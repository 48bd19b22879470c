package main

import (
	"fmt"
	"log"
	"time"

	"staffing-server/api/counters"
	"staffing-server/api/records"
	"staffing-server/config"
	"staffing-server/di"
	"staffing-server/util"
	"staffing-server/week"
)

// seedDevData loads the JSON fixtures into the in-memory mocks so a dev
// instance serves realistic data.
func seedDevData(container *di.Container) {
	countersMock, ok := container.CountersAPI.(*counters.CountersApiClientMock)
	if !ok {
		return
	}
	recordsMock, ok := container.RecordsAPI.(*records.RecordsApiClientMock)
	if !ok {
		return
	}

	sample, err := util.ReadTrafficSampleFromJSON(config.GetResourcePath(config.TRAFFIC_SAMPLE_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read traffic sample fixture: %v", err)
	} else {
		countersMock.AddSample(*sample)
	}

	params, err := util.ReadStoreParamsFromJSON(config.GetResourcePath(config.STORE_PARAMS_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read store params fixture: %v", err)
	} else {
		recordsMock.AddStore(*params)
	}

	activities, err := util.ReadActivitiesFromJSON(config.GetResourcePath(config.ACTIVITIES_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read activities fixture: %v", err)
	} else if len(activities) > 0 {
		recordsMock.AddActivities("S001", activities[0].Date, activities)
	}
}

// previewWeek aggregates the current week for the fixture store, prints a
// summary and renders the chart.
func previewWeek(container *di.Container) {
	monday := week.MondayOf(time.Now())
	agg := container.TrafficService.AggregateWeek("S001", monday)
	util.PrintAggregatedTrafficPartially(agg)
	util.PlotWeekTraffic(agg, "traffic_week.html")
}

func main() {
	config.LoadEnv()

	env := config.Env("APP_ENV", "prod")
	container := di.NewContainer(env)

	if env != "prod" {
		seedDevData(container)
		previewWeek(container)
	}

	fmt.Println("warming traffic cache!")
	if err := container.TrafficRefresher.RefreshTrafficData(); err != nil {
		fmt.Println("initial refresh failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.TrafficRefresher.StartPeriodicJob(
		config.TRAFFIC_REFRESHER_SERVICE_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.StaffingHttpServer.Start()
}
