package handlers

import (
	"container-tracking-service/internal/adapters/cache"
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/ports"
	"log"
	"net/http"
	"strconv"
)

// WeatherHandler proxies current conditions at a vessel position for
// the dashboard. Weather is context only and never feeds scoring.
type WeatherHandler struct {
	Provider ports.WeatherProvider
	Cache    *cache.RedisWeatherCache // optional
}

func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be a number in [-90, 90]")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lon must be a number in [-180, 180]")
		return
	}

	at := domain.Coordinates{Lat: lat, Lon: lon}

	if h.Cache != nil {
		report, hit, err := h.Cache.Get(r.Context(), at)
		if err != nil {
			log.Printf("weather cache read failed: %v", err)
		} else if hit {
			writeJSON(w, r, http.StatusOK, report)
			return
		}
	}

	report, err := h.Provider.CurrentConditions(r.Context(), at)
	if err != nil {
		log.Printf("weather lookup failed: lat=%v lon=%v err=%v", lat, lon, err)
		writeError(w, r, http.StatusBadGateway, "weather service unavailable")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), at, report); err != nil {
			log.Printf("weather cache write failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, report)
}
