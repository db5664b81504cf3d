package swim

import (
	"strings"

	"swimcast/internal/types"
)

// safetyBase is the starting safety score before banded deductions.
const safetyBase = 60

// hazardRule is a short-circuit guard clause: the first matching hazard fixes
// the safety score outright and bypasses the additive model. Storms and
// extreme wind are categorically unsafe regardless of every other reading.
type hazardRule struct {
	desc  string
	match func(in types.SwimInputs) bool
	score int
}

// safetyHazardRules are evaluated in strict priority order, first match wins.
var safetyHazardRules = []hazardRule{
	{
		desc:  "thunderstorm",
		match: func(in types.SwimInputs) bool { return isStormCode(in.WeatherCode) },
		score: 5,
	},
	{
		desc:  "extreme_wind",
		match: func(in types.SwimInputs) bool { return in.WindSpeed >= 50 || in.WindGust >= 60 },
		score: 8,
	},
	{
		desc:  "severe_wind",
		match: func(in types.SwimInputs) bool { return in.WindSpeed >= 40 || in.WindGust >= 50 },
		score: 12,
	},
}

var safetyWindRules = []valueRule{
	{desc: "wind>=30", match: func(v float64) bool { return v >= 30 }, delta: -20},
	{desc: "wind>=25", match: func(v float64) bool { return v >= 25 }, delta: -15},
	{desc: "wind>=20", match: func(v float64) bool { return v >= 20 }, delta: -10},
	{desc: "wind>=15", match: func(v float64) bool { return v >= 15 }, delta: -5},
}

// precipRule deducts when either the current-period or the trailing-24h
// precipitation crosses its threshold (OR-composition per band).
type precipRule struct {
	current  float64 // mm, current period
	trailing float64 // mm, trailing 24h
	delta    int
}

var safetyPrecipRules = []precipRule{
	{current: 15, trailing: 50, delta: -15},
	{current: 10, trailing: 30, delta: -10},
	{current: 5, trailing: 15, delta: -5},
}

var safetyVisibilityRules = []valueRule{
	{desc: "vis<500", match: func(v float64) bool { return v < 500 }, delta: -15},
	{desc: "vis<1000", match: func(v float64) bool { return v < 1000 }, delta: -10},
	{desc: "vis<3000", match: func(v float64) bool { return v < 3000 }, delta: -5},
}

var safetySeaTempRules = []valueRule{
	{desc: "sst<15", match: func(v float64) bool { return v < 15 }, delta: -20},
	{desc: "sst<18", match: func(v float64) bool { return v < 18 }, delta: -15},
	{desc: "sst>32", match: func(v float64) bool { return v > 32 }, delta: -10},
	{desc: "sst>30", match: func(v float64) bool { return v > 30 }, delta: -5},
}

var safetyAirQualityRules = []valueRule{
	{desc: "aqi>=150", match: func(v float64) bool { return v >= 150 }, delta: -10},
	{desc: "aqi>=100", match: func(v float64) bool { return v >= 100 }, delta: -5},
}

// isStormCode reports whether a weather code token signals thunderstorm
// activity: either the descriptive substring or the WMO code 95 as text.
func isStormCode(code string) bool {
	return strings.Contains(strings.ToLower(code), "thunderstorm") || code == "95"
}

// SafetyScore computes the 0-100 safety sub-score. Hazard rules short-circuit
// first; otherwise deductions from each category apply additively on top of
// the base, one band per category.
func SafetyScore(in types.SwimInputs) int {
	for _, h := range safetyHazardRules {
		if h.match(in) {
			return h.score
		}
	}

	score := safetyBase
	score += applyFirst(in.WindSpeed, safetyWindRules)
	score += precipDelta(in.PrecipAmount, in.PrecipLast24h, safetyPrecipRules)
	score += applyFirst(in.Visibility, safetyVisibilityRules)
	score += applyFirst(in.SeaTemp, safetySeaTempRules)
	score += applyFirst(in.AirQuality, safetyAirQualityRules)

	return clampScore(score)
}

// precipDelta returns the delta of the first band matched by either the
// current-period or trailing-24h precipitation.
func precipDelta(current, trailing float64, rules []precipRule) int {
	for _, r := range rules {
		if current >= r.current || trailing >= r.trailing {
			return r.delta
		}
	}
	return 0
}
