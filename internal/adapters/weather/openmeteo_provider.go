package weather

import (
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/platform/obs"
	"container-tracking-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// OpenMeteoProvider implements WeatherProvider against the public
// open-meteo forecast API. No credential is required; transient
// failures are retried with backoff.
type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
}

func NewOpenMeteoProvider() *OpenMeteoProvider {
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://api.open-meteo.com",
	}
}

type currentConditionsResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		Apparent    float64 `json:"apparent_temperature"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// CurrentConditions fetches the current weather at a vessel position.
func (o *OpenMeteoProvider) CurrentConditions(
	ctx context.Context,
	at domain.Coordinates,
) (_ ports.WeatherReport, err error) {
	defer obs.Time(ctx, "openmeteo.CurrentConditions")(&err)

	endpoint := o.baseURL + "/v1/forecast"

	makeReq := func() (*http.Request, error) {
		req, err := o.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
		q.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,wind_speed_10m,weather_code")
		q.Set("wind_speed_unit", "ms")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := o.doWithRetry(ctx, makeReq)
	if err != nil {
		return ports.WeatherReport{}, fmt.Errorf("open-meteo request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded currentConditionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.WeatherReport{}, fmt.Errorf("decode open-meteo response: %w", err)
	}

	return ports.WeatherReport{
		TemperatureC:         decoded.Current.Temperature,
		RelativeHumidityPct:  decoded.Current.Humidity,
		ApparentTemperatureC: decoded.Current.Apparent,
		WindSpeedMS:          decoded.Current.WindSpeed,
		WeatherCode:          decoded.Current.WeatherCode,
	}, nil
}
