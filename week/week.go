// Package week converts between calendar dates and "W<NN> <YYYY>" week
// identifiers.
//
// The numbering is NOT full ISO-8601: the week containing January 4th is
// always week 1 and weeks start on Monday, but there is no correction for
// week-53 boundary years. Stored historical configuration is keyed by these
// identifiers, so the scheme must stay as-is.
package week

import (
	"fmt"
	"time"
)

// DATE_LAYOUT is the ISO date form used for sample dates and mapping keys.
const DATE_LAYOUT = "2006-01-02"

// Of returns the week identifier of a date, formatted "W<2-digit> <year>".
func Of(t time.Time) string {
	num := numberOf(t)
	return Format(num, t.Year())
}

// Format renders a week number and year as an identifier.
func Format(num, year int) string {
	return fmt.Sprintf("W%02d %d", num, year)
}

// Parse splits an identifier back into week number and year.
func Parse(identifier string) (num, year int, err error) {
	if _, err = fmt.Sscanf(identifier, "W%d %d", &num, &year); err != nil {
		return 0, 0, fmt.Errorf("invalid week identifier %q: %w", identifier, err)
	}
	if num < 1 || num > 53 {
		return 0, 0, fmt.Errorf("week number out of range in %q", identifier)
	}
	return num, year, nil
}

// Days returns the seven calendar dates (Monday..Sunday) of a week
// identifier.
func Days(identifier string) ([]time.Time, error) {
	num, year, err := Parse(identifier)
	if err != nil {
		return nil, err
	}
	monday := firstMonday(year).AddDate(0, 0, (num-1)*7)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days, nil
}

// DayStrings is Days with each date formatted as an ISO string.
func DayStrings(identifier string) ([]string, error) {
	days, err := Days(identifier)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(DATE_LAYOUT)
	}
	return out, nil
}

// MondayOf returns the Monday of the week containing t.
func MondayOf(t time.Time) time.Time {
	t = atMidnight(t)
	return t.AddDate(0, 0, -(weekdayFromMonday(t) - 1))
}

// numberOf computes the week number: days since the Monday of week 1
// (the week containing January 4th), divided by 7, plus one.
func numberOf(t time.Time) int {
	t = atMidnight(t)
	anchor := MondayOf(firstAnchor(t.Year()))
	num := 1 + int(t.Sub(anchor).Hours())/(24*7)
	if num < 1 {
		num = 1
	}
	if num > 53 {
		num = 53
	}
	return num
}

// firstAnchor is January 4th, guaranteed to fall in week 1 by convention.
func firstAnchor(year int) time.Time {
	return time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
}

func firstMonday(year int) time.Time {
	return MondayOf(firstAnchor(year))
}

// weekdayFromMonday maps Monday..Sunday to 1..7.
func weekdayFromMonday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
