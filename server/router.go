package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DayViewHandler is the handler surface the router wires up.
type DayViewHandler interface {
	GetDayView(w http.ResponseWriter, r *http.Request)
	GetWeekDays(w http.ResponseWriter, r *http.Request)
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dayViewHandler DayViewHandler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dayViewHandler DayViewHandler,
	router *mux.Router) *Router {
	return &Router{
		dayViewHandler: dayViewHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?date={YYYY-MM-DD}&rounded={bool}
	r.router.HandleFunc("/v1/stores/{storeId}/day", r.dayViewHandler.GetDayView).Methods("GET")

	r.router.HandleFunc("/v1/stores/{storeId}/weeks/{week}/days", r.dayViewHandler.GetWeekDays).Methods("GET")

	r.router.HandleFunc("/v1/stores/{storeId}/activities", r.dayViewHandler.UpdateActivity).Methods("PUT")

	r.router.HandleFunc("/ping", r.dayViewHandler.Ping).Methods("GET")
}
