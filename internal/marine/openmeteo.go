// Package marine assembles current swim conditions for a coordinate by
// querying the Open-Meteo forecast, marine, and air quality APIs and merging
// the results into a single snapshot.
package marine

import (
	"context"
	"net/url"
	"strconv"

	"swimcast/internal/external"
)

// upstream HTTP client surface used by the provider clients. Satisfied by
// *external.BaseClient.
type httpGetter interface {
	GetJSON(ctx context.Context, baseURL, path string, query url.Values, dst any) error
}

var _ httpGetter = (*external.BaseClient)(nil)

type currentWeather struct {
	Time                string  `json:"time"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Precipitation       float64 `json:"precipitation"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WindGusts10m        float64 `json:"wind_gusts_10m"`
	WindDirection10m    float64 `json:"wind_direction_10m"`
	CloudCover          float64 `json:"cloud_cover"`
}

type forecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Current   currentWeather `json:"current"`
	Hourly    struct {
		Time          []string  `json:"time"`
		Precipitation []float64 `json:"precipitation"`
		Visibility    []float64 `json:"visibility"`
	} `json:"hourly"`
}

type marineResponse struct {
	Current struct {
		Time                  string  `json:"time"`
		SeaSurfaceTemperature float64 `json:"sea_surface_temperature"`
		WaveHeight            float64 `json:"wave_height"`
	} `json:"current"`
}

type airQualityResponse struct {
	Current struct {
		Time    string  `json:"time"`
		USAQI   float64 `json:"us_aqi"`
		UVIndex float64 `json:"uv_index"`
	} `json:"current"`
}

// forecastClient queries the Open-Meteo weather forecast API.
type forecastClient struct {
	http    httpGetter
	baseURL string
}

func (c *forecastClient) fetch(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	q := coordQuery(lat, lon)
	q.Set("current", "apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_gusts_10m,wind_direction_10m,cloud_cover")
	q.Set("hourly", "precipitation,visibility")
	q.Set("past_hours", "24")
	q.Set("forecast_hours", "1")
	q.Set("wind_speed_unit", "kmh")
	q.Set("timezone", "UTC")

	var out forecastResponse
	if err := c.http.GetJSON(ctx, c.baseURL, "/forecast", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// marineClient queries the Open-Meteo marine API for sea state.
type marineClient struct {
	http    httpGetter
	baseURL string
}

func (c *marineClient) fetch(ctx context.Context, lat, lon float64) (*marineResponse, error) {
	q := coordQuery(lat, lon)
	q.Set("current", "sea_surface_temperature,wave_height")
	q.Set("timezone", "UTC")

	var out marineResponse
	if err := c.http.GetJSON(ctx, c.baseURL, "/marine", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// airQualityClient queries the Open-Meteo air quality API.
type airQualityClient struct {
	http    httpGetter
	baseURL string
}

func (c *airQualityClient) fetch(ctx context.Context, lat, lon float64) (*airQualityResponse, error) {
	q := coordQuery(lat, lon)
	q.Set("current", "us_aqi,uv_index")
	q.Set("timezone", "UTC")

	var out airQualityResponse
	if err := c.http.GetJSON(ctx, c.baseURL, "/air-quality", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func coordQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	return q
}
