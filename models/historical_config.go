package models

import (
	"encoding/json"
	"fmt"
)

// HistoricalConfigType discriminates the two configuration payloads a target
// week may carry.
type HistoricalConfigType int

const (
	// ConfigReferenceWeeks is an ordered list of reference week identifiers
	// to be averaged.
	ConfigReferenceWeeks HistoricalConfigType = iota
	// ConfigDayMapping pairs explicit target dates with explicit reference
	// dates, bypassing averaging.
	ConfigDayMapping
)

// DAY_MAPPING_TYPE_TAG is the wire discriminant of the day-exact payload.
const DAY_MAPPING_TYPE_TAG = "comparable_por_dia"

// HistoricalConfig is the comparison configuration stored for one target
// week. Exactly one of ReferenceWeeks / DayMapping is populated, according
// to Type.
type HistoricalConfig struct {
	Type           HistoricalConfigType
	ReferenceWeeks []string
	// DayMapping maps target ISO dates to reference ISO dates, up to 7 pairs.
	DayMapping map[string]string
}

// UnmarshalJSON resolves the union: a JSON array is a reference-week list, an
// object tagged "comparable_por_dia" is a day-exact mapping.
func (c *HistoricalConfig) UnmarshalJSON(data []byte) error {
	var weeks []string
	if err := json.Unmarshal(data, &weeks); err == nil {
		c.Type = ConfigReferenceWeeks
		c.ReferenceWeeks = weeks
		c.DayMapping = nil
		return nil
	}

	aux := struct {
		Type    string            `json:"type"`
		Mapping map[string]string `json:"mapping"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("failed to unmarshal historical config: %w", err)
	}
	if aux.Type != DAY_MAPPING_TYPE_TAG {
		return fmt.Errorf("unknown historical config type: %q", aux.Type)
	}
	c.Type = ConfigDayMapping
	c.DayMapping = aux.Mapping
	c.ReferenceWeeks = nil
	return nil
}

// MarshalJSON writes the same wire shapes UnmarshalJSON accepts.
func (c HistoricalConfig) MarshalJSON() ([]byte, error) {
	if c.Type == ConfigDayMapping {
		return json.Marshal(struct {
			Type    string            `json:"type"`
			Mapping map[string]string `json:"mapping"`
		}{Type: DAY_MAPPING_TYPE_TAG, Mapping: c.DayMapping})
	}
	return json.Marshal(c.ReferenceWeeks)
}
