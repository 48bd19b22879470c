package util

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"staffing-server/models"
)

// PlotWeekTraffic generates an HTML file rendering the hourly entry/ticket
// profile of an aggregate. It is a pure rendering sink for already-computed
// numbers.
func PlotWeekTraffic(agg *models.AggregatedTraffic, outPath string) {
	if agg == nil {
		log.Println("PlotWeekTraffic: nothing to plot")
		return
	}

	labels := make([]string, 0, len(agg.HoursOfInterest))
	for label := range agg.HoursOfInterest {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	entries := make([]opts.BarData, 0, len(labels))
	tickets := make([]opts.BarData, 0, len(labels))
	for _, label := range labels {
		counts := agg.HoursOfInterest[label]
		entries = append(entries, opts.BarData{Value: counts.Entries})
		tickets = append(tickets, opts.BarData{Value: counts.Tickets})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Traffic Profile",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Hourly traffic " + agg.PeriodStart + " .. " + agg.PeriodEnd,
			Subtitle: fmt.Sprintf("references: %v", agg.ReferenceWeeksUsed),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Entries", entries).
		AddSeries("Tickets", tickets)

	// Create an HTML file to render the chart.
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Traffic chart generated: " + outPath)
}
