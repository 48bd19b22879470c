package counters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"staffing-server/api"
)

func TestGetDayTraffic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/traffic/day" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("store") != "S001" || r.URL.Query().Get("date") != "2024-06-10" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Errorf("Expected the API key header, got %q", r.Header.Get("X-Api-Key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"store_code": "S001",
			"date": "2024-06-10",
			"hours": {
				"12:00": {"entries": 50, "tickets": 17, "revenue": 231.4},
				"13:00": 37
			}
		}`))
	}))
	defer server.Close()

	client := NewCountersApiClient(api.NewHTTPClient(server.URL))
	client.SetCredentials("secret")

	sample, err := client.GetDayTraffic("S001", "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sample.Hours["12:00"].Entries != 50 {
		t.Errorf("Expected 50 entries, got %+v", sample.Hours["12:00"])
	}
	// Legacy bare-number hours decode as entries-only counts.
	if sample.Hours["13:00"].Entries != 37 || sample.Hours["13:00"].Tickets != 0 {
		t.Errorf("Expected legacy hour {37,0,0}, got %+v", sample.Hours["13:00"])
	}
}

func TestGetRangeTraffic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/traffic/range" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("dates") != "2024-06-10,2024-06-11" {
			t.Errorf("Expected a comma-joined date list, got %q", r.URL.Query().Get("dates"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"store_code": "S001", "date": "2024-06-10", "hours": {"12:00": 50}}
		]`))
	}))
	defer server.Close()

	client := NewCountersApiClient(api.NewHTTPClient(server.URL))

	samples, err := client.GetRangeTraffic("S001", []string{"2024-06-10", "2024-06-11"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("Expected 1 sample, got %d", len(samples))
	}
	if samples[0].Date != "2024-06-10" {
		t.Errorf("Unexpected sample %+v", samples[0])
	}
}

func TestGetDayTraffic_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCountersApiClient(api.NewHTTPClient(server.URL))

	if _, err := client.GetDayTraffic("S001", "2024-06-10"); err == nil {
		t.Error("Expected an error for a 500 response")
	}
}
