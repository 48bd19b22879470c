package models

import (
	"encoding/json"
	"math"
)

// HourCounts holds the traffic counters for a single hour of a single day.
type HourCounts struct {
	Entries int     `json:"entries"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}

// UnmarshalJSON accepts both the current object shape and the legacy shape
// where an hour is a bare entries number.
func (h *HourCounts) UnmarshalJSON(data []byte) error {
	// Legacy shape: a plain number meaning entries only.
	var legacy float64
	if err := json.Unmarshal(data, &legacy); err == nil {
		h.Entries = int(math.Round(legacy))
		h.Tickets = 0
		h.Revenue = 0
		return nil
	}

	// Create an alias to avoid infinite recursion.
	type Alias HourCounts
	aux := (*Alias)(h)
	return json.Unmarshal(data, aux)
}

// Add accumulates another hour's counters into this one.
func (h *HourCounts) Add(other HourCounts) {
	h.Entries += other.Entries
	h.Tickets += other.Tickets
	h.Revenue += other.Revenue
}

// IsZero reports whether every counter is zero.
func (h HourCounts) IsZero() bool {
	return h.Entries == 0 && h.Tickets == 0 && h.Revenue == 0
}
