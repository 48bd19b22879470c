package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// mockDayViewHandler records which handler each request reached.
type mockDayViewHandler struct {
	called string
}

func (m *mockDayViewHandler) GetDayView(w http.ResponseWriter, r *http.Request) {
	m.called = "GetDayView"
	w.WriteHeader(http.StatusOK)
}

func (m *mockDayViewHandler) GetWeekDays(w http.ResponseWriter, r *http.Request) {
	m.called = "GetWeekDays"
	w.WriteHeader(http.StatusOK)
}

func (m *mockDayViewHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	m.called = "UpdateActivity"
	w.WriteHeader(http.StatusOK)
}

func (m *mockDayViewHandler) Ping(w http.ResponseWriter, r *http.Request) {
	m.called = "Ping"
	w.WriteHeader(http.StatusOK)
}

func TestRegisterRoutes(t *testing.T) {
	tests := []struct {
		method  string
		target  string
		body    string
		handler string
		status  int
	}{
		{"GET", "/v1/stores/S001/day?date=2024-06-10", "", "GetDayView", http.StatusOK},
		{"GET", "/v1/stores/S001/weeks/W24%202024/days", "", "GetWeekDays", http.StatusOK},
		{"PUT", "/v1/stores/S001/activities", `{}`, "UpdateActivity", http.StatusOK},
		{"GET", "/ping", "", "Ping", http.StatusOK},
		{"POST", "/ping", "", "", http.StatusMethodNotAllowed},
		{"GET", "/v1/stores/S001/unknown", "", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			handler := &mockDayViewHandler{}
			muxRouter := mux.NewRouter()
			NewRouter(handler, muxRouter).RegisterRoutes()

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			muxRouter.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, rec.Code)
			}
			if handler.called != tc.handler {
				t.Errorf("Expected handler %q, got %q", tc.handler, handler.called)
			}
		})
	}
}
