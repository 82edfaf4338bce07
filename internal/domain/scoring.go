package domain

// ETAEstimate is the output of the closed-form ETA model for one record.
// PredictedHours is hours from now to the destination port; the band is
// a fixed-width confidence interval around it.
type ETAEstimate struct {
	PredictedHours float64
	BandLowHours   float64
	BandHighHours  float64
}

// Coarse risk bucket derived from the continuous risk score.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskAssessment is the output of the risk model: a score in [0, 1]
// and its tier.
type RiskAssessment struct {
	Score float64
	Tier  RiskTier
}

// ScoredContainer pairs a record with its computed metrics.
// It is immutable derived data and contains no side effects.
type ScoredContainer struct {
	Record *ContainerRecord
	ETA    ETAEstimate
	Risk   RiskAssessment
	OnTime bool
}

// FleetKPIs are the dashboard aggregate numbers over the scored fleet.
type FleetKPIs struct {
	ActiveCount      int
	OnTimePct        float64
	AvgRiskScore     float64
	AvgETAErrorHours float64
}

// ModelMetrics are model-quality figures computed live from the scored
// fleet: mean absolute ETA error, precision of the top-3 predicted
// delays, drift of the mean error, and risk tier counts.
type ModelMetrics struct {
	MAEHours     float64
	PrecisionAt3 float64
	DriftRatio   float64
	TierCounts   map[RiskTier]int
	SampleSize   int
}
