package records

import (
	"errors"
	"net/http"
	"net/url"

	"staffing-server/api"
	"staffing-server/models"
)

// RecordsApiClient embeds the common HTTPClient
type RecordsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewRecordsApiClient creates a new instance of RecordsApiClient
func NewRecordsApiClient(httpClient *api.HTTPClient) *RecordsApiClient {
	return &RecordsApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent with every request.
func (c *RecordsApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetStoreParams retrieves the per-store parameter record.
func (c *RecordsApiClient) GetStoreParams(storeID string) (*models.StoreParams, error) {
	var response models.StoreParams
	err := c.Request("GET", "/stores/"+url.PathEscape(storeID), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetHistoricalConfig retrieves the comparison configuration for one exact
// target week. The backend answers 404 for weeks without an entry, which is
// reported as (nil, nil) rather than an error.
func (c *RecordsApiClient) GetHistoricalConfig(storeID, weekID string) (*models.HistoricalConfig, error) {
	q := url.Values{}
	q.Set("week", weekID)

	var response models.HistoricalConfig
	err := c.Request("GET", "/stores/"+url.PathEscape(storeID)+"/historical?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

// GetDayActivities retrieves the activity grid for one store day.
func (c *RecordsApiClient) GetDayActivities(storeID, date string) ([]models.ActivityAssignment, error) {
	q := url.Values{}
	q.Set("date", date)

	var response []models.ActivityAssignment
	err := c.Request("GET", "/stores/"+url.PathEscape(storeID)+"/activities?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// UpdateActivitySlot sets or clears one slot of one employee's day.
func (c *RecordsApiClient) UpdateActivitySlot(storeID, date, employeeID, slot, status string) error {
	body := map[string]string{
		"date":        date,
		"employee_id": employeeID,
		"slot":        slot,
		"status":      status,
	}
	return c.Request("PUT", "/stores/"+url.PathEscape(storeID)+"/activities", c.headers(), body, nil)
}

func (c *RecordsApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}
