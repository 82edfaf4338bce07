package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelWeights are the fixed coefficients of the closed-form ETA and
// risk models. They ship as code defaults and may be overridden by the
// model file loaded at startup.
type ModelWeights struct {
	// Hours added to the ETA per unit of wind proxy.
	WindHoursPerUnit float64 `json:"wind_hours_per_unit"`
	// Half-width of the fixed confidence band around the predicted ETA.
	BandHours float64 `json:"band_hours"`
	// Fractional slack over the nominal transit time still counted on-time.
	OnTimeTolerance float64 `json:"on_time_tolerance"`

	DelayWeight   float64 `json:"delay_weight"`
	WeatherWeight float64 `json:"weather_weight"`
	PriorWeight   float64 `json:"prior_weight"`

	MediumThreshold float64 `json:"medium_threshold"`
	HighThreshold   float64 `json:"high_threshold"`
}

func DefaultWeights() ModelWeights {
	return ModelWeights{
		WindHoursPerUnit: 1.5,
		BandHours:        6.0,
		OnTimeTolerance:  0.10,
		DelayWeight:      0.5,
		WeatherWeight:    0.3,
		PriorWeight:      0.2,
		MediumThreshold:  0.3,
		HighThreshold:    0.7,
	}
}

// LoadWeights reads model coefficients from a JSON file.
// Fields absent from the file keep their defaults.
func LoadWeights(path string) (ModelWeights, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return ModelWeights{}, fmt.Errorf("load weights: read %q: %w", path, err)
	}

	w := DefaultWeights()
	if err := json.Unmarshal(bytes, &w); err != nil {
		return ModelWeights{}, fmt.Errorf("load weights: parse json: %w", err)
	}

	if w.BandHours < 0 {
		return ModelWeights{}, fmt.Errorf("load weights: band_hours must be non-negative, got %v", w.BandHours)
	}
	if w.MediumThreshold <= 0 || w.HighThreshold <= w.MediumThreshold || w.HighThreshold >= 1 {
		return ModelWeights{}, fmt.Errorf(
			"load weights: thresholds must satisfy 0 < medium < high < 1, got medium=%v high=%v",
			w.MediumThreshold, w.HighThreshold,
		)
	}

	return w, nil
}

// RiskTable maps a route region to its prior incident probability.
type RiskTable map[string]float64

const defaultRegionPrior = 0.25

// Prior returns the regional risk prior, falling back to a fixed
// default for regions absent from the table.
func (t RiskTable) Prior(region string) float64 {
	if p, ok := t[region]; ok {
		return p
	}
	return defaultRegionPrior
}

// LoadRiskTable reads the region prior table from a JSON file.
func LoadRiskTable(path string) (RiskTable, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load risk table: read %q: %w", path, err)
	}

	var table RiskTable
	if err := json.Unmarshal(bytes, &table); err != nil {
		return nil, fmt.Errorf("load risk table: parse json: %w", err)
	}

	for region, prior := range table {
		if prior < 0 || prior > 1 {
			return nil, fmt.Errorf("load risk table: region %q: prior must be in [0,1], got %v", region, prior)
		}
	}

	return table, nil
}
