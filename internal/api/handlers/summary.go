package handlers

import (
	"container-tracking-service/internal/api/dto"
	"container-tracking-service/internal/services"
	"log"
	"net/http"
)

// SummaryHandler produces the fleet-level narrative summary.
type SummaryHandler struct {
	Scorer     *services.Scorer
	Summarizer *services.Summarizer
}

// Fleet scores the dataset and returns summary text. A failing or
// timed-out delegated strategy degrades to the template output, so
// this endpoint never fails because of the external text service.
func (h *SummaryHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	scored, err := h.Scorer.ScoreAll(r.Context())
	if err != nil {
		log.Printf("fleet summary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SummaryResponse{Summary: h.Summarizer.Fleet(r.Context(), scored)}
	writeJSON(w, r, http.StatusOK, res)
}
