package types

import "time"

// SwimInputs is the snapshot of current-condition measurements the scoring
// core consumes. All twelve fields are required; windDirection is accepted as
// informational context and is not consulted by any scorer.
type SwimInputs struct {
	WindSpeed     float64 `json:"windSpeed"`     // km/h
	WindGust      float64 `json:"windGust"`      // km/h
	WindDirection float64 `json:"windDirection"` // degrees, 0-360
	WeatherCode   string  `json:"weatherCode"`   // numeric code as text ("95") or descriptive token
	PrecipAmount  float64 `json:"precipAmount"`  // mm, current period
	PrecipLast24h float64 `json:"precipLast24h"` // mm, trailing 24h
	Visibility    float64 `json:"visibility"`    // meters
	AirQuality    float64 `json:"airQualityIndex"`
	UVIndex       float64 `json:"uvIndex"`
	CloudCover    float64 `json:"cloudCover"` // percent, 0-100
	ApparentTemp  float64 `json:"apparentTemp"` // °C, feels-like
	SeaTemp       float64 `json:"sst"`          // °C, sea surface temperature
}

// ScoreBreakdown holds the three independent 0-100 sub-scores.
type ScoreBreakdown struct {
	Safety      int `json:"safety"`
	Comfort     int `json:"comfort"`
	Performance int `json:"performance"`
}

// SwimScoreOutput is the composite swim-suitability assessment. The
// Explanation list is never empty; its first entry is always the summary
// banner selected by TotalScore.
type SwimScoreOutput struct {
	TotalScore     int            `json:"totalScore"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Explanation    []string       `json:"explanation"`
	Recommendation string         `json:"recommendation"`
	BestTimeToSwim string         `json:"bestTimeToSwim"`
}

// CurrentConditions pairs assembled scoring inputs with retrieval metadata.
// Estimated is true when a provider was unavailable and one or more inputs
// were filled from the fallback estimates instead of observed data.
type CurrentConditions struct {
	Inputs     SwimInputs `json:"inputs"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Estimated  bool       `json:"estimated"`
	ObservedAt time.Time  `json:"observedAt"`
}
