package types

import "time"

// Favorite is a saved coastal location. Favorites are scoped to an anonymous
// device identifier; computed scores are never persisted alongside them.
type Favorite struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Label     string    `json:"label"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// GeoPlace is a geocoding candidate returned by search and reverse lookups.
type GeoPlace struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
