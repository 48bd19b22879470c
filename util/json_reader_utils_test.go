package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffing-server/models"
)

func TestReadTrafficSampleFromJSON(t *testing.T) {
	sample, err := ReadTrafficSampleFromJSON("../resources/traffic_sample.json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, "S001", sample.StoreCode)
	assert.Equal(t, "2024-06-10", sample.Date)
	assert.Equal(t, models.HourCounts{Entries: 20, Tickets: 6, Revenue: 95.5}, sample.Hours["10:00"])
	// Legacy bare-number hours.
	assert.Equal(t, models.HourCounts{Entries: 55}, sample.Hours["12:00"])
}

func TestReadStoreParamsFromJSON(t *testing.T) {
	params, err := ReadStoreParamsFromJSON("../resources/store_params.json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, "S001", params.StoreID)
	assert.Equal(t, "ESPAÑA", params.Country)
	assert.Equal(t, "21:30", params.CloseSpec)
	assert.Equal(t, 25.0, params.AttentionOrDefault())
}

func TestReadActivitiesFromJSON(t *testing.T) {
	assignments, err := ReadActivitiesFromJSON("../resources/activities.json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(assignments))
	}
	assert.Equal(t, "E01", assignments[0].EmployeeID)
	assert.Equal(t, models.STATUS_FORMACION, assignments[0].Slots["12:00"])
	assert.Equal(t, models.STATUS_BAJA_MEDICA, assignments[1].Slots["17:00"])
}

func TestReadTrafficSampleFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadTrafficSampleFromJSON("../resources/nope.json"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
