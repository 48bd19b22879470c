package models

import "fmt"

// Defaults applied when the record store returns missing or unusable store
// parameters.
const (
	DEFAULT_DESIRED_ATTENTION = 25.0
	DEFAULT_GROWTH_FACTOR     = 0.05
)

// StoreParams are the per-store parameters read from the record store.
type StoreParams struct {
	StoreID     string `json:"store_id"`
	CounterCode string `json:"counter_code"`
	Country     string `json:"country"`
	OpenSpec    string `json:"open_time"`
	CloseSpec   string `json:"close_time"`

	DesiredAttention      float64 `json:"desired_attention"`
	GrowthFactor          float64 `json:"growth_factor"`
	ContractHoursApproved float64 `json:"contract_hours_approved"`

	// HistoricalEnabled marks stores that compare against configured
	// reference periods instead of recent weeks.
	HistoricalEnabled bool `json:"historical_enabled"`
}

// AttentionOrDefault returns the configured desired attention, or the default
// when the record carries no usable value.
func (p *StoreParams) AttentionOrDefault() float64 {
	if p == nil || p.DesiredAttention <= 0 {
		return DEFAULT_DESIRED_ATTENTION
	}
	return p.DesiredAttention
}

// GrowthOrDefault returns the configured growth factor, or the default when
// the record carries none.
func (p *StoreParams) GrowthOrDefault() float64 {
	if p == nil || p.GrowthFactor == 0 {
		return DEFAULT_GROWTH_FACTOR
	}
	return p.GrowthFactor
}

func (p *StoreParams) ToString() string {
	return fmt.Sprintf("StoreParams(store=%s, country=%s, open=%s, close=%s, historical=%v)",
		p.StoreID, p.Country, p.OpenSpec, p.CloseSpec, p.HistoricalEnabled)
}
