package models

import "fmt"

// TrafficSample is one calendar date's per-hour counters for one store.
// Hour keys use the "HH:00" label form.
type TrafficSample struct {
	StoreCode string                `json:"store_code"`
	Date      string                `json:"date"`
	Hours     map[string]HourCounts `json:"hours"`
}

// HourLabel formats an hour-of-day as the "HH:00" key used across samples
// and aggregates.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func (s *TrafficSample) ToString() string {
	return fmt.Sprintf("TrafficSample(store=%s, date=%s, hours=%d)",
		s.StoreCode, s.Date, len(s.Hours))
}
