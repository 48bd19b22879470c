// Package hours computes effective-hours accounting from a day's slot grid
// and activity assignments.
package hours

import (
	"staffing-server/models"
	"staffing-server/slots"
)

// Effective returns the store's net effective hours for one day: TRABAJO and
// FORMACIÓN slots add one granularity each, BAJA MÉDICA slots subtract one,
// everything else counts zero. Individual employees may go negative on
// partial data; only the storewide total clamps at zero.
func Effective(assignments []models.ActivityAssignment, country, openSpec, closeSpec string) float64 {
	grid := slots.Generate(country, openSpec, closeSpec)
	step := slots.GranularityHours(country)

	total := 0.0
	for _, a := range assignments {
		for _, slot := range grid {
			switch a.Slots[slot] {
			case models.STATUS_TRABAJO, models.STATUS_FORMACION:
				total += step
			case models.STATUS_BAJA_MEDICA:
				total -= step
			}
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// EmployeePlus returns one employee's overtime hours for the day: productive
// hours (TRABAJO + FORMACIÓN) beyond the contract, plus medical-leave hours.
// Pure function of the employee's own slots and declared contract hours.
func EmployeePlus(a models.ActivityAssignment, contractHours float64, country, openSpec, closeSpec string) float64 {
	grid := slots.Generate(country, openSpec, closeSpec)
	step := slots.GranularityHours(country)

	productive := 0.0
	medical := 0.0
	for _, slot := range grid {
		switch a.Slots[slot] {
		case models.STATUS_TRABAJO, models.STATUS_FORMACION:
			productive += step
		case models.STATUS_BAJA_MEDICA:
			medical += step
		}
	}

	over := productive - contractHours
	if over < 0 {
		over = 0
	}
	plus := over + medical
	if plus < 0 {
		return 0
	}
	return plus
}
