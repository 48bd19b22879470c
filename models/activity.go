package models

// Activity status tags. The set is closed; anything else in a slot is
// treated as unset.
const (
	STATUS_TRABAJO     = "TRABAJO"
	STATUS_VACACIONES  = "VACACIONES"
	STATUS_LIBRE       = "LIBRE"
	STATUS_BAJA_MEDICA = "BAJA MÉDICA"
	STATUS_FORMACION   = "FORMACIÓN"
	STATUS_LACTANCIA   = "LACTANCIA"
)

// ActivityAssignment is one employee's slot-by-slot record for one calendar
// day. Slots maps time-slot labels ("HH:MM") to status tags; absent or empty
// means unassigned. The record store owns these; the core only reads them
// for hour computations.
type ActivityAssignment struct {
	EmployeeID    string            `json:"employee_id"`
	EmployeeName  string            `json:"employee_name"`
	Date          string            `json:"date"`
	ContractHours float64           `json:"contract_hours"`
	Slots         map[string]string `json:"slots"`
}
