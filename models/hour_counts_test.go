package models_test

import (
	"encoding/json"
	"testing"

	"staffing-server/models"
)

func TestHourCounts_UnmarshalObjectShape(t *testing.T) {
	var h models.HourCounts
	if err := json.Unmarshal([]byte(`{"entries": 42, "tickets": 10, "revenue": 199.95}`), &h); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h.Entries != 42 || h.Tickets != 10 || h.Revenue != 199.95 {
		t.Errorf("Unexpected counts: %+v", h)
	}
}

func TestHourCounts_UnmarshalLegacyBareNumber(t *testing.T) {
	var h models.HourCounts
	if err := json.Unmarshal([]byte(`37`), &h); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h.Entries != 37 || h.Tickets != 0 || h.Revenue != 0 {
		t.Errorf("Legacy shape must normalize to {entries, 0, 0}, got %+v", h)
	}
}

func TestTrafficSample_MixedHourShapes(t *testing.T) {
	payload := `{
		"store_code": "S001",
		"date": "2024-06-10",
		"hours": {
			"10:00": {"entries": 20, "tickets": 6, "revenue": 95.5},
			"11:00": 35
		}
	}`

	var s models.TrafficSample
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Hours["10:00"].Revenue != 95.5 {
		t.Errorf("Object hour lost revenue: %+v", s.Hours["10:00"])
	}
	if s.Hours["11:00"].Entries != 35 || s.Hours["11:00"].Tickets != 0 {
		t.Errorf("Legacy hour not normalized: %+v", s.Hours["11:00"])
	}
}
