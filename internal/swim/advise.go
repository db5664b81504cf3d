package swim

import "swimcast/internal/types"

// Recommendation strings.
const (
	RecStormDanger   = "Do not swim: thunderstorm risk in the area."
	RecDangerousWind = "Do not swim: dangerous wind conditions."
	RecColdWater     = "Not recommended: the water is dangerously cold."
	RecGoSwim        = "Good to swim. Enjoy the water."
	RecCaution       = "Swimming is possible, but stay close to shore and watch conditions."
	RecAvoid         = "Swimming is not recommended right now."
)

// Best-time strings.
const (
	BestTimeRainy     = "Rain is falling; there is no good swim window today."
	BestTimeAfternoon = "Early afternoon (13:00 to 16:00) usually brings the warmest water and steadiest wind."
)

// recommendRule is one guard clause of the recommendation advisor.
type recommendRule struct {
	desc   string
	match  func(in types.SwimInputs, total int) bool
	advice string
}

// recommendRules are evaluated top to bottom, first match wins. The hazard
// checks mirror the safety short-circuits so a storm always yields the danger
// recommendation even when the weighted total alone would read milder.
var recommendRules = []recommendRule{
	{
		desc:   "thunderstorm",
		match:  func(in types.SwimInputs, _ int) bool { return isStormCode(in.WeatherCode) },
		advice: RecStormDanger,
	},
	{
		desc:   "dangerous_wind",
		match:  func(in types.SwimInputs, _ int) bool { return in.WindSpeed >= 40 },
		advice: RecDangerousWind,
	},
	{
		desc:   "cold_water",
		match:  func(in types.SwimInputs, _ int) bool { return in.SeaTemp < 15 },
		advice: RecColdWater,
	},
	{
		desc:   "total_good",
		match:  func(_ types.SwimInputs, total int) bool { return total >= 80 },
		advice: RecGoSwim,
	},
	{
		desc:   "total_fair",
		match:  func(_ types.SwimInputs, total int) bool { return total >= 50 },
		advice: RecCaution,
	},
	{
		desc:   "fallback",
		match:  func(types.SwimInputs, int) bool { return true },
		advice: RecAvoid,
	},
}

// Recommend derives the advisory string from the raw inputs and total score.
func Recommend(in types.SwimInputs, total int) string {
	for _, r := range recommendRules {
		if r.match(in, total) {
			return r.advice
		}
	}
	return RecAvoid // unreachable: the fallback rule always matches
}

// RecommendKey returns the short identifier of the advisor rule that fired.
// Used for telemetry labels, where the full advice sentence would be noise.
func RecommendKey(in types.SwimInputs, total int) string {
	for _, r := range recommendRules {
		if r.match(in, total) {
			return r.desc
		}
	}
	return "fallback"
}

// BestTime is a two-branch placeholder: rain means no window, otherwise a
// fixed afternoon slot. A meaningful answer needs hourly forecast input,
// which this core deliberately does not consume.
func BestTime(in types.SwimInputs) string {
	if in.PrecipAmount > 0 {
		return BestTimeRainy
	}
	return BestTimeAfternoon
}
