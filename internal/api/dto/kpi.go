package dto

type FleetKPIsResponse struct {
	ActiveCount      int     `json:"active_count"`
	OnTimePct        float64 `json:"on_time_pct"`
	AvgRiskScore     float64 `json:"avg_risk_score"`
	AvgETAErrorHours float64 `json:"avg_eta_error_hours"`
}

type ModelMetricsResponse struct {
	MAEHours     float64        `json:"mae_hours"`
	PrecisionAt3 float64        `json:"precision_at_3"`
	DriftRatio   float64        `json:"drift_ratio"`
	TierCounts   map[string]int `json:"tier_counts"`
	SampleSize   int            `json:"sample_size"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
