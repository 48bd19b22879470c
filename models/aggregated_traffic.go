package models

import "time"

// WeekdayNames are the seven bucket keys of AggregatedTraffic.ByWeekday,
// Monday first. Every aggregate carries all seven keys even when a weekday
// collected no samples.
var WeekdayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// WeekdayName maps a time.Weekday to its bucket key.
func WeekdayName(d time.Weekday) string {
	// time.Weekday starts on Sunday; our buckets start on Monday.
	idx := (int(d) + 6) % 7
	return WeekdayNames[idx]
}

// AggregatedTraffic is the unit produced by every comparison strategy and by
// the live aggregator, and consumed by the recommendation formula.
type AggregatedTraffic struct {
	// HoursOfInterest is the target day's per-hour profile.
	HoursOfInterest map[string]HourCounts `json:"hours_of_interest"`

	// ByWeekday always holds the seven weekday keys; a weekday with no
	// contributing samples maps to an empty (non-nil) hour map.
	ByWeekday map[string]map[string]HourCounts `json:"by_weekday"`

	// Morning covers hours before 14:00, afternoon the rest.
	TotalMorning   HourCounts `json:"total_morning"`
	TotalAfternoon HourCounts `json:"total_afternoon"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	IsHistorical bool `json:"is_historical"`

	// ReferenceWeeksUsed labels what was aggregated, for UI attribution.
	ReferenceWeeksUsed []string `json:"reference_weeks_used"`
}

// NewAggregatedTraffic returns an aggregate with all seven weekday buckets
// pre-created empty.
func NewAggregatedTraffic(historical bool) *AggregatedTraffic {
	byWeekday := make(map[string]map[string]HourCounts, len(WeekdayNames))
	for _, name := range WeekdayNames {
		byWeekday[name] = make(map[string]HourCounts)
	}
	return &AggregatedTraffic{
		HoursOfInterest: make(map[string]HourCounts),
		ByWeekday:       byWeekday,
		IsHistorical:    historical,
	}
}
