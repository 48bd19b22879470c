package counters

import (
	"staffing-server/models"
)

// CountersAPI defines the interface for the people-counter traffic backend.
type CountersAPI interface {
	GetDayTraffic(storeCode, date string) (*models.TrafficSample, error)
	GetRangeTraffic(storeCode string, dates []string) ([]models.TrafficSample, error)
	SetCredentials(apiKey string)
}
