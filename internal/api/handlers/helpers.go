package handlers

import (
	"container-tracking-service/internal/api/dto"
	"container-tracking-service/internal/domain"
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toContainerResponse(sc domain.ScoredContainer) dto.ContainerResponse {
	return dto.ContainerResponse{
		ContainerID:      sc.Record.ContainerID,
		Carrier:          sc.Record.Carrier,
		OriginPort:       sc.Record.OriginPort,
		DestinationPort:  sc.Record.DestinationPort,
		Vessel:           sc.Record.Vessel,
		Region:           sc.Record.Region,
		Lat:              sc.Record.Position.Lat,
		Lon:              sc.Record.Position.Lon,
		DistanceNM:       sc.Record.DistanceNM,
		SpeedKts:         sc.Record.SpeedKts,
		CongestionFactor: sc.Record.CongestionFactor,
		WindProxy:        sc.Record.WindProxy,
		NominalHours:     sc.Record.NominalHours,
		Metrics: dto.ContainerMetricsResponse{
			PredictedHours: sc.ETA.PredictedHours,
			BandLowHours:   sc.ETA.BandLowHours,
			BandHighHours:  sc.ETA.BandHighHours,
			OnTime:         sc.OnTime,
			RiskScore:      sc.Risk.Score,
			RiskTier:       string(sc.Risk.Tier),
		},
	}
}
