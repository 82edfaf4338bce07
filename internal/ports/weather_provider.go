package ports

import (
	"container-tracking-service/internal/domain"
	"context"
)

// Current conditions at a vessel position.
type WeatherReport struct {
	TemperatureC         float64 `json:"temperature_c"`
	RelativeHumidityPct  float64 `json:"relative_humidity_pct"`
	ApparentTemperatureC float64 `json:"apparent_temperature_c"`
	WindSpeedMS          float64 `json:"wind_speed_ms"`
	WeatherCode          int     `json:"weather_code"`
}

// Contract for looking up current weather at a position.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, at domain.Coordinates) (WeatherReport, error)
}
