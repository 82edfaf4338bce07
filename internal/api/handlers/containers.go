package handlers

import (
	"container-tracking-service/internal/api/dto"
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/services"
	"errors"
	"log"
	"net/http"
	"strings"
)

// ContainerHandler exposes read-only scored container endpoints.
type ContainerHandler struct {
	Scorer     *services.Scorer
	Summarizer *services.Summarizer
}

// List returns every successfully scored container.
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	scored, err := h.Scorer.ScoreAll(r.Context())
	if err != nil {
		log.Printf("list containers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListContainersResponse{
		Containers: make([]dto.ContainerResponse, 0, len(scored)),
	}
	for _, sc := range scored {
		res.Containers = append(res.Containers, toContainerResponse(sc))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get returns one scored container plus its summary text.
// Lookup is by exact container ID (case-insensitive).
func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cn := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("cn")))
	if cn == "" {
		writeError(w, r, http.StatusBadRequest, "cn is required")
		return
	}

	sc, err := h.Scorer.ScoreOne(r.Context(), cn)
	if errors.Is(err, domain.ErrUnknownContainer) {
		writeError(w, r, http.StatusNotFound, "container not found")
		return
	}
	if err != nil {
		log.Printf("get container failed: cn=%s err=%v", cn, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.GetContainerResponse{
		Container: toContainerResponse(sc),
		Summary:   h.Summarizer.Container(r.Context(), sc),
	}

	writeJSON(w, r, http.StatusOK, res)
}
