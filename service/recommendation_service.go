package service

import (
	"fmt"
	"math"

	"staffing-server/models"
)

// RecommendationService derives recommended headcount per hour from
// aggregated traffic and store parameters.
type RecommendationService struct{}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

// Recommend computes the staff recommendation for one hour:
//
//	entries × (1 + growth) / (attention / 2)
//
// attention is the customers one pair of employees should serve per hour; a
// non-positive value is a configuration error, never a silent division. A
// configured minimum clamps the result up; zero entries stay zero regardless
// of growth. rounded selects nearest-integer output, otherwise two decimals.
func (rs *RecommendationService) Recommend(entries, attention, growth, minimum float64, rounded bool) (float64, error) {
	if attention <= 0 {
		return 0, fmt.Errorf("desired attention must be positive, got %v", attention)
	}

	value := entries * (1 + growth) / (attention / 2)
	if minimum > 0 && value < minimum {
		value = minimum
	}
	if rounded {
		return math.Round(value), nil
	}
	return round2(value), nil
}

// RecommendSeries applies Recommend to every hour of an aggregate's profile.
// minimums carries optional per-hour floors keyed by hour label.
func (rs *RecommendationService) RecommendSeries(
	agg *models.AggregatedTraffic,
	params *models.StoreParams,
	minimums map[string]float64,
	rounded bool,
) (map[string]float64, error) {
	if agg == nil {
		return map[string]float64{}, nil
	}

	attention := params.AttentionOrDefault()
	growth := params.GrowthOrDefault()

	out := make(map[string]float64, len(agg.HoursOfInterest))
	for label, counts := range agg.HoursOfInterest {
		value, err := rs.Recommend(float64(counts.Entries), attention, growth, minimums[label], rounded)
		if err != nil {
			return nil, err
		}
		out[label] = value
	}
	return out, nil
}

// MinimumStaff is the presentation-side ceiling of a recommendation: the
// smallest whole headcount covering it.
func MinimumStaff(recommendation float64) int {
	return int(math.Ceil(recommendation))
}
