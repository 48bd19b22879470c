package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"staffing-server/service"
)

const (
	DATE_QUERY_ARG    = "date"
	ROUNDED_QUERY_ARG = "rounded"

	STORE_ID_PATH_ARG = "storeId"
	WEEK_PATH_ARG     = "week"
)

type DayViewHandler struct {
	dayViewService *service.DayViewService
}

func NewDayViewHandler(dayViewService *service.DayViewService) *DayViewHandler {
	return &DayViewHandler{dayViewService: dayViewService}
}

// GetDayView handles GET /v1/stores/{storeId}/day?date=YYYY-MM-DD&rounded=bool
func (h *DayViewHandler) GetDayView(w http.ResponseWriter, r *http.Request) {
	// 1) Parse path and query args
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]
	date := r.URL.Query().Get(DATE_QUERY_ARG)
	if storeID == "" || date == "" {
		http.Error(w, "Missing argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	// Absent or unparseable means exact two-decimal values.
	rounded, _ := strconv.ParseBool(r.URL.Query().Get(ROUNDED_QUERY_ARG))

	// 2) Build the view
	view, err := h.dayViewService.GetDayView(storeID, date, rounded)
	if err != nil {
		log.Println("Error building day view:", err)
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	// 3) Write JSON
	writeJSON(w, view)
}

// GetWeekDays handles GET /v1/stores/{storeId}/weeks/{week}/days
func (h *DayViewHandler) GetWeekDays(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)[WEEK_PATH_ARG]

	days, err := h.dayViewService.WeekDays(identifier)
	if err != nil {
		log.Println("Error resolving week days:", err)
		http.Error(w, "Invalid argument "+WEEK_PATH_ARG, http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"week": identifier,
		"days": days,
	})
}

// activityUpdateRequest is the body of PUT /v1/stores/{storeId}/activities.
// An empty status clears the slot.
type activityUpdateRequest struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
	Slot       string `json:"slot"`
	Status     string `json:"status"`
}

// UpdateActivity handles PUT /v1/stores/{storeId}/activities
func (h *DayViewHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]

	var req activityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Date == "" || req.EmployeeID == "" || req.Slot == "" {
		http.Error(w, "Missing date, employee_id or slot", http.StatusBadRequest)
		return
	}

	if err := h.dayViewService.UpdateActivitySlot(storeID, req.Date, req.EmployeeID, req.Slot, req.Status); err != nil {
		log.Println("Error updating activity slot:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// Ping handles GET /ping
func (h *DayViewHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
