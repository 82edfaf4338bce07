package handlers

import (
	"container-tracking-service/internal/api/dto"
	"container-tracking-service/internal/services"
	"log"
	"net/http"
)

// KPIHandler exposes fleet aggregates over the scored dataset.
type KPIHandler struct {
	Scorer *services.Scorer
}

// Fleet returns the dashboard KPI numbers.
func (h *KPIHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	scored, err := h.Scorer.ScoreAll(r.Context())
	if err != nil {
		log.Printf("fleet kpis failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	kpis := services.ComputeFleetKPIs(scored)
	res := dto.FleetKPIsResponse{
		ActiveCount:      kpis.ActiveCount,
		OnTimePct:        kpis.OnTimePct,
		AvgRiskScore:     kpis.AvgRiskScore,
		AvgETAErrorHours: kpis.AvgETAErrorHours,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ModelMetrics returns model-quality figures computed from the scored
// dataset.
func (h *KPIHandler) ModelMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	scored, err := h.Scorer.ScoreAll(r.Context())
	if err != nil {
		log.Printf("model metrics failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	m := services.ComputeModelMetrics(scored)
	tiers := make(map[string]int, len(m.TierCounts))
	for tier, count := range m.TierCounts {
		tiers[string(tier)] = count
	}

	res := dto.ModelMetricsResponse{
		MAEHours:     m.MAEHours,
		PrecisionAt3: m.PrecisionAt3,
		DriftRatio:   m.DriftRatio,
		TierCounts:   tiers,
		SampleSize:   m.SampleSize,
	}

	writeJSON(w, r, http.StatusOK, res)
}
