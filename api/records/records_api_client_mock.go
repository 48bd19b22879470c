package records

import (
	"fmt"
	"sync"

	"staffing-server/models"
)

// RecordsApiClientMock is an in-memory record store for dev and tests.
type RecordsApiClientMock struct {
	mu         sync.RWMutex
	stores     map[string]models.StoreParams
	configs    map[string]models.HistoricalConfig     // keyed "storeID|weekID"
	activities map[string][]models.ActivityAssignment // keyed "storeID|date"
}

// NewRecordsApiClientMock creates a new instance of RecordsApiClientMock
func NewRecordsApiClientMock() *RecordsApiClientMock {
	return &RecordsApiClientMock{
		stores:     make(map[string]models.StoreParams),
		configs:    make(map[string]models.HistoricalConfig),
		activities: make(map[string][]models.ActivityAssignment),
	}
}

// SetCredentials is a no-op on the mock.
func (c *RecordsApiClientMock) SetCredentials(apiKey string) {}

// AddStore registers a store parameter record.
func (c *RecordsApiClientMock) AddStore(p models.StoreParams) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores[p.StoreID] = p
}

// AddHistoricalConfig registers a comparison configuration for a target week.
func (c *RecordsApiClientMock) AddHistoricalConfig(storeID, weekID string, cfg models.HistoricalConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configs[storeID+"|"+weekID] = cfg
}

// AddActivities registers a day's activity grid.
func (c *RecordsApiClientMock) AddActivities(storeID, date string, a []models.ActivityAssignment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activities[storeID+"|"+date] = a
}

func (c *RecordsApiClientMock) GetStoreParams(storeID string) (*models.StoreParams, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.stores[storeID]
	if !ok {
		return nil, fmt.Errorf("store not found: %s", storeID)
	}
	return &p, nil
}

func (c *RecordsApiClientMock) GetHistoricalConfig(storeID, weekID string) (*models.HistoricalConfig, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cfg, ok := c.configs[storeID+"|"+weekID]
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

func (c *RecordsApiClientMock) GetDayActivities(storeID, date string) ([]models.ActivityAssignment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activities[storeID+"|"+date], nil
}

func (c *RecordsApiClientMock) UpdateActivitySlot(storeID, date, employeeID, slot, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := storeID + "|" + date
	for i, a := range c.activities[key] {
		if a.EmployeeID != employeeID {
			continue
		}
		if a.Slots == nil {
			a.Slots = make(map[string]string)
		}
		if status == "" {
			delete(a.Slots, slot)
		} else {
			a.Slots[slot] = status
		}
		c.activities[key][i] = a
		return nil
	}

	// First touch of this employee's day creates the record.
	assignment := models.ActivityAssignment{
		EmployeeID: employeeID,
		Date:       date,
		Slots:      map[string]string{},
	}
	if status != "" {
		assignment.Slots[slot] = status
	}
	c.activities[key] = append(c.activities[key], assignment)
	return nil
}
