package services

import (
	"container-tracking-service/internal/domain"
	"fmt"
	"math"
)

// ComputeETA applies the closed-form ETA model to one record.
//
// Base transit time is distance over speed in hours; congestion scales
// it multiplicatively and the wind proxy adds a fixed number of hours
// per unit. The confidence band has a fixed width around the estimate.
// The function is deterministic and has no hidden state.
func ComputeETA(rec *domain.ContainerRecord, w ModelWeights) (domain.ETAEstimate, error) {
	if rec == nil {
		return domain.ETAEstimate{}, fmt.Errorf("compute eta: %w: record is nil", domain.ErrInvalidRecord)
	}
	if err := rec.Validate(); err != nil {
		return domain.ETAEstimate{}, fmt.Errorf("compute eta: %w", err)
	}

	base := rec.DistanceNM / rec.SpeedKts
	predicted := base*rec.CongestionFactor + w.WindHoursPerUnit*rec.WindProxy

	return domain.ETAEstimate{
		PredictedHours: predicted,
		BandLowHours:   math.Max(predicted-w.BandHours, 0),
		BandHighHours:  predicted + w.BandHours,
	}, nil
}
