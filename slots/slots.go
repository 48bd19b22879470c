// Package slots generates the ordered time-slot grid for a store's day.
package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DEFAULT_OPEN  = "09:00"
	DEFAULT_CLOSE = "21:00"

	// FRANCE_COUNTRY is the only country variant running a 15-minute grid.
	FRANCE_COUNTRY = "FRANCIA"
)

// Granularity returns the slot width for a country. France runs 15-minute
// slots, everyone else 30.
func Granularity(country string) time.Duration {
	if strings.ToUpper(strings.TrimSpace(country)) == FRANCE_COUNTRY {
		return 15 * time.Minute
	}
	return 30 * time.Minute
}

// GranularityHours returns the slot width as a fraction of an hour.
func GranularityHours(country string) float64 {
	return Granularity(country).Hours()
}

// Generate produces the ordered "HH:MM" labels covering the store's opening
// hours at the country's granularity. Slots are half-open [open, close): the
// last label is close minus one granularity. A comma-separated
// "start-end,start-end" open spec yields split-shift grids, each sub-interval
// emitted independently in input order. Malformed or inverted specs fall back
// to the default 09:00-21:00 window; Generate never fails.
func Generate(country, openSpec, closeSpec string) []string {
	step := int(Granularity(country).Minutes())

	openSpec = strings.TrimSpace(openSpec)
	closeSpec = strings.TrimSpace(closeSpec)

	if strings.Contains(openSpec, "-") {
		if out := generateSplit(openSpec, step); len(out) > 0 {
			return out
		}
		return generateRange(DEFAULT_OPEN, DEFAULT_CLOSE, step)
	}

	open, errOpen := parseMinutes(openSpec)
	close, errClose := parseMinutes(closeSpec)
	if errOpen != nil || errClose != nil || open >= close {
		open, _ = parseMinutes(DEFAULT_OPEN)
		close, _ = parseMinutes(DEFAULT_CLOSE)
	}
	return emit(open, close, step)
}

// generateSplit handles "09:00-14:00,16:00-21:30" style specs. Returns nil
// when no sub-interval parses.
func generateSplit(spec string, step int) []string {
	var out []string
	for _, part := range strings.Split(spec, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			continue
		}
		start, errStart := parseMinutes(strings.TrimSpace(bounds[0]))
		end, errEnd := parseMinutes(strings.TrimSpace(bounds[1]))
		if errStart != nil || errEnd != nil || start >= end {
			continue
		}
		out = append(out, emit(start, end, step)...)
	}
	return out
}

func generateRange(open, close string, step int) []string {
	o, _ := parseMinutes(open)
	c, _ := parseMinutes(close)
	return emit(o, c, step)
}

// emit walks [open, close) in step-minute increments. Off-grid bounds are
// rounded down to the step boundary first.
func emit(open, close, step int) []string {
	open = (open / step) * step
	close = (close / step) * step

	var out []string
	for m := open; m < close; m += step {
		out = append(out, formatMinutes(m))
	}
	return out
}

// parseMinutes converts an "HH:MM" label to minutes since midnight.
func parseMinutes(label string) (int, error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time label: %q", label)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", label, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", label, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time label out of range: %q", label)
	}
	return h*60 + m, nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
