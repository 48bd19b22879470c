package counters

import (
	"net/url"
	"strings"

	"staffing-server/api"
	"staffing-server/models"
)

// CountersApiClient embeds the common HTTPClient
type CountersApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewCountersApiClient creates a new instance of CountersApiClient
func NewCountersApiClient(httpClient *api.HTTPClient) *CountersApiClient {
	return &CountersApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent with every request.
func (c *CountersApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetDayTraffic retrieves one date's per-hour counters for a store.
func (c *CountersApiClient) GetDayTraffic(storeCode, date string) (*models.TrafficSample, error) {
	q := url.Values{}
	q.Set("store", storeCode)
	q.Set("date", date)

	var response models.TrafficSample
	err := c.Request("GET", "/traffic/day?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetRangeTraffic is the bulk variant: one request for a comma-joined date
// list, returning one sample per date that had data.
func (c *CountersApiClient) GetRangeTraffic(storeCode string, dates []string) ([]models.TrafficSample, error) {
	q := url.Values{}
	q.Set("store", storeCode)
	q.Set("dates", strings.Join(dates, ","))

	var response []models.TrafficSample
	err := c.Request("GET", "/traffic/range?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *CountersApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}
