package services

import (
	"container-tracking-service/internal/domain"
	"math"
)

// ComputeRisk blends the schedule slip, the wind proxy, and the
// regional prior into a score clipped to [0, 1], then maps the score
// to a tier via fixed thresholds.
//
// The score is monotone non-decreasing in the prior and in lateness:
// only a predicted ETA beyond the nominal transit time raises the
// delay term, so arriving early never lowers risk below the floor set
// by weather and prior.
func ComputeRisk(rec *domain.ContainerRecord, eta domain.ETAEstimate, prior float64, w ModelWeights) domain.RiskAssessment {
	delay := math.Max(eta.PredictedHours-rec.NominalHours, 0) / math.Max(rec.NominalHours, 1)
	weather := math.Min(rec.WindProxy/15.0, 1)

	score := clip01(w.DelayWeight*delay + w.WeatherWeight*weather + w.PriorWeight*clip01(prior))

	tier := domain.RiskLow
	switch {
	case score > w.HighThreshold:
		tier = domain.RiskHigh
	case score >= w.MediumThreshold:
		tier = domain.RiskMedium
	}

	return domain.RiskAssessment{Score: score, Tier: tier}
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
