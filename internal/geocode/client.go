// Package geocode resolves place names to coordinates and back using the
// Open-Meteo geocoding API, with an in-memory LRU cache in front of the
// provider to keep repeat lookups off the network.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"swimcast/internal/config"
	"swimcast/internal/external"
	"swimcast/internal/types"
)

// Geocoder resolves place names and coordinates.
type Geocoder interface {
	Search(ctx context.Context, name string, limit int) ([]types.GeoPlace, error)
	Reverse(ctx context.Context, lat, lon float64) (types.GeoPlace, error)
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Client is the HTTP geocoding client. Wrap it with NewCachedGeocoder for
// production use.
type Client struct {
	http       *external.BaseClient
	baseURL    string
	maxResults int
}

// NewClient builds a geocoding client from configuration.
func NewClient(cfg config.GeocodeConfig, userAgent string) *Client {
	return &Client{
		http: external.NewBaseClient(
			&http.Client{Timeout: cfg.Timeout},
			"open-meteo-geocoding",
			external.DefaultRetryPolicy(),
			userAgent,
			external.WithFailureCode(types.ErrCodeUpstreamGeocoder),
		),
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
	}
}

// Search resolves a free-text place name to candidate coordinates, best
// match first. An unknown name yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, name string, limit int) ([]types.GeoPlace, error) {
	if limit <= 0 || limit > c.maxResults {
		limit = c.maxResults
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(limit))
	q.Set("language", "en")
	q.Set("format", "json")

	var resp searchResponse
	if err := c.http.GetJSON(ctx, c.baseURL, "/search", q, &resp); err != nil {
		return nil, err
	}

	places := make([]types.GeoPlace, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, types.GeoPlace{
			Name:      r.Name,
			Region:    r.Admin1,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return places, nil
}

// Reverse resolves a coordinate to the nearest named place.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (types.GeoPlace, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("language", "en")
	q.Set("format", "json")

	var resp searchResponse
	if err := c.http.GetJSON(ctx, c.baseURL, "/reverse", q, &resp); err != nil {
		return types.GeoPlace{}, err
	}

	if len(resp.Results) == 0 {
		return types.GeoPlace{}, types.NewAppError(
			types.ErrCodeNotFoundLocation,
			fmt.Sprintf("no place found near %.4f,%.4f", lat, lon),
			nil,
		)
	}

	r := resp.Results[0]
	return types.GeoPlace{
		Name:      r.Name,
		Region:    r.Admin1,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

var _ Geocoder = (*Client)(nil)
