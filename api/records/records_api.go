package records

import (
	"staffing-server/models"
)

// RecordsAPI defines the interface for the record store holding store
// parameters, historical comparison configuration and activity grids.
type RecordsAPI interface {
	GetStoreParams(storeID string) (*models.StoreParams, error)

	// GetHistoricalConfig looks up the configuration for one exact target
	// week. A store with no entry for that week returns (nil, nil).
	GetHistoricalConfig(storeID, weekID string) (*models.HistoricalConfig, error)

	GetDayActivities(storeID, date string) ([]models.ActivityAssignment, error)

	// UpdateActivitySlot sets one employee's one slot to a status tag; an
	// empty status clears the slot.
	UpdateActivitySlot(storeID, date, employeeID, slot, status string) error

	SetCredentials(apiKey string)
}
