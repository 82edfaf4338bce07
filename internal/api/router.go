package api

import (
	"container-tracking-service/internal/adapters/cache"
	"container-tracking-service/internal/api/handlers"
	"container-tracking-service/internal/ports"
	"container-tracking-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	scorer *services.Scorer,
	summarizer *services.Summarizer,
	weatherProvider ports.WeatherProvider,
	weatherCache *cache.RedisWeatherCache,
) http.Handler {
	mux := http.NewServeMux()

	containerHandler := &handlers.ContainerHandler{
		Scorer:     scorer,
		Summarizer: summarizer,
	}
	kpiHandler := &handlers.KPIHandler{Scorer: scorer}
	summaryHandler := &handlers.SummaryHandler{
		Scorer:     scorer,
		Summarizer: summarizer,
	}
	weatherHandler := &handlers.WeatherHandler{
		Provider: weatherProvider,
		Cache:    weatherCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/containers", containerHandler.List)
	mux.HandleFunc("/container", containerHandler.Get)
	mux.HandleFunc("/kpis", kpiHandler.Fleet)
	mux.HandleFunc("/metrics/model", kpiHandler.ModelMetrics)
	mux.HandleFunc("/summary", summaryHandler.Fleet)
	mux.HandleFunc("/weather", weatherHandler.Current)

	return requestIDMiddleware(loggingMiddleware(mux))
}
