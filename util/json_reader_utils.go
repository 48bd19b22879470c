package util

import (
	"encoding/json"
	"fmt"
	"os"

	"staffing-server/models"
)

// ReadTrafficSampleFromJSON loads a TrafficSample from JSON on disk.
func ReadTrafficSampleFromJSON(filePath string) (*models.TrafficSample, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var s models.TrafficSample
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TrafficSample: %w", err)
	}
	return &s, nil
}

// ReadStoreParamsFromJSON loads a StoreParams record from JSON on disk.
func ReadStoreParamsFromJSON(filePath string) (*models.StoreParams, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var p models.StoreParams
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal StoreParams: %w", err)
	}
	return &p, nil
}

// ReadActivitiesFromJSON loads a day's activity assignments from JSON on disk.
func ReadActivitiesFromJSON(filePath string) ([]models.ActivityAssignment, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var a []models.ActivityAssignment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity assignments: %w", err)
	}
	return a, nil
}

// PrintAggregatedTrafficPartially prints key fields of an aggregate.
func PrintAggregatedTrafficPartially(agg *models.AggregatedTraffic) {
	if agg == nil {
		fmt.Println("No aggregated traffic available")
		return
	}
	fmt.Printf("Period: %s .. %s\n", agg.PeriodStart, agg.PeriodEnd)
	fmt.Printf("Historical: %v\n", agg.IsHistorical)
	fmt.Printf("References: %v\n", agg.ReferenceWeeksUsed)
	fmt.Printf("Morning: %+v\n", agg.TotalMorning)
	fmt.Printf("Afternoon: %+v\n", agg.TotalAfternoon)
	fmt.Printf("Hours with data: %d\n", len(agg.HoursOfInterest))
}
