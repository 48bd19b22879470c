package counters

import (
	"fmt"
	"sync"

	"staffing-server/models"
)

// CountersApiClientMock serves canned traffic samples from memory. Dates
// without a registered sample yield a deterministic synthetic profile so dev
// environments always have data to aggregate.
type CountersApiClientMock struct {
	mu      sync.RWMutex
	samples map[string]models.TrafficSample // keyed by date
}

// NewCountersApiClientMock creates a new instance of CountersApiClientMock
func NewCountersApiClientMock() *CountersApiClientMock {
	return &CountersApiClientMock{
		samples: make(map[string]models.TrafficSample),
	}
}

// AddSample registers a canned sample for its date.
func (c *CountersApiClientMock) AddSample(s models.TrafficSample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples[s.Date] = s
}

// SetCredentials is a no-op on the mock.
func (c *CountersApiClientMock) SetCredentials(apiKey string) {}

// GetDayTraffic returns the canned sample for the date, or a synthetic one.
func (c *CountersApiClientMock) GetDayTraffic(storeCode, date string) (*models.TrafficSample, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.samples[date]; ok {
		return &s, nil
	}
	s := syntheticSample(storeCode, date)
	return &s, nil
}

// GetRangeTraffic returns one sample per requested date.
func (c *CountersApiClientMock) GetRangeTraffic(storeCode string, dates []string) ([]models.TrafficSample, error) {
	out := make([]models.TrafficSample, 0, len(dates))
	for _, d := range dates {
		s, err := c.GetDayTraffic(storeCode, d)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// syntheticSample builds a plausible retail day: quiet mornings, a lunch
// bump, busy evenings.
func syntheticSample(storeCode, date string) models.TrafficSample {
	hoursProfile := map[string]int{
		"10:00": 20, "11:00": 35, "12:00": 55, "13:00": 60,
		"14:00": 40, "15:00": 30, "16:00": 45, "17:00": 70,
		"18:00": 90, "19:00": 85, "20:00": 60, "21:00": 25,
	}

	hours := make(map[string]models.HourCounts, len(hoursProfile))
	for label, entries := range hoursProfile {
		hours[label] = models.HourCounts{
			Entries: entries,
			Tickets: entries / 3,
			Revenue: float64(entries) * 4.75,
		}
	}
	return models.TrafficSample{
		StoreCode: storeCode,
		Date:      date,
		Hours:     hours,
	}
}

func (c *CountersApiClientMock) ToString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("CountersApiClientMock(samples=%d)", len(c.samples))
}
