package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"staffing-server/models"
)

func TestHistoricalConfig_ReferenceWeekList(t *testing.T) {
	var cfg models.HistoricalConfig
	if err := json.Unmarshal([]byte(`["W25 2024", "W26 2024"]`), &cfg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, models.ConfigReferenceWeeks, cfg.Type)
	assert.Equal(t, []string{"W25 2024", "W26 2024"}, cfg.ReferenceWeeks)
	assert.Nil(t, cfg.DayMapping)
}

func TestHistoricalConfig_DayMapping(t *testing.T) {
	payload := `{
		"type": "comparable_por_dia",
		"mapping": {
			"2024-06-10": "2023-06-12",
			"2024-06-11": "2023-06-13"
		}
	}`

	var cfg models.HistoricalConfig
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, models.ConfigDayMapping, cfg.Type)
	assert.Equal(t, "2023-06-12", cfg.DayMapping["2024-06-10"])
	assert.Nil(t, cfg.ReferenceWeeks)
}

func TestHistoricalConfig_UnknownTypeRejected(t *testing.T) {
	var cfg models.HistoricalConfig
	err := json.Unmarshal([]byte(`{"type": "otra_cosa", "mapping": {}}`), &cfg)
	if err == nil {
		t.Fatal("Expected an error for an unknown type tag")
	}
}

func TestHistoricalConfig_MarshalRoundTrip(t *testing.T) {
	cfg := models.HistoricalConfig{
		Type:       models.ConfigDayMapping,
		DayMapping: map[string]string{"2024-06-10": "2023-06-12"},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var back models.HistoricalConfig
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cfg, back)
}
