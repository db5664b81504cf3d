package swim

import "swimcast/internal/types"

// performanceBase is the starting performance score before banded adjustments.
const performanceBase = 25

var performanceWindRules = []valueRule{
	{desc: "wind<5", match: func(v float64) bool { return v < 5 }, delta: 2},
	{desc: "wind10-15", match: func(v float64) bool { return v >= 10 && v < 15 }, delta: -3},
	{desc: "wind15-20", match: func(v float64) bool { return v >= 15 && v < 20 }, delta: -5},
	{desc: "wind20-25", match: func(v float64) bool { return v >= 20 && v < 25 }, delta: -8},
	{desc: "wind>=25", match: func(v float64) bool { return v >= 25 }, delta: -12},
}

var performanceSeaTempRules = []valueRule{
	{desc: "sst22-26", match: func(v float64) bool { return v >= 22 && v <= 26 }, delta: 5},
	{desc: "sst20-28", match: func(v float64) bool { return v >= 20 && v <= 28 }, delta: 2},
	{desc: "sst<18|>30", match: func(v float64) bool { return v < 18 || v > 30 }, delta: -8},
	{desc: "sst<20|>28", match: func(v float64) bool { return v < 20 || v > 28 }, delta: -4},
}

var performanceAirQualityRules = []valueRule{
	{desc: "aqi<25", match: func(v float64) bool { return v < 25 }, delta: 2},
	{desc: "aqi50-100", match: func(v float64) bool { return v >= 50 && v < 100 }, delta: -2},
	{desc: "aqi100-150", match: func(v float64) bool { return v >= 100 && v < 150 }, delta: -6},
	{desc: "aqi>=150", match: func(v float64) bool { return v >= 150 }, delta: -10},
}

var performanceApparentTempRules = []valueRule{
	{desc: "feels26-30", match: func(v float64) bool { return v >= 26 && v <= 30 }, delta: 3},
	{desc: "feels>35", match: func(v float64) bool { return v > 35 }, delta: -6},
	{desc: "feels<20", match: func(v float64) bool { return v < 20 }, delta: -4},
}

var performanceVisibilityRules = []valueRule{
	{desc: "vis<2000", match: func(v float64) bool { return v < 2000 }, delta: -10},
	{desc: "vis<5000", match: func(v float64) bool { return v < 5000 }, delta: -5},
}

var performanceCloudRules = []valueRule{
	{desc: "cloud30-70", match: func(v float64) bool { return v >= 30 && v <= 70 }, delta: 2},
}

// PerformanceScore computes the 0-100 performance sub-score: base 25 plus one
// banded adjustment per category.
func PerformanceScore(in types.SwimInputs) int {
	score := performanceBase
	score += applyFirst(in.WindSpeed, performanceWindRules)
	score += applyFirst(in.SeaTemp, performanceSeaTempRules)
	score += applyFirst(in.AirQuality, performanceAirQualityRules)
	score += applyFirst(in.ApparentTemp, performanceApparentTempRules)
	score += applyFirst(in.Visibility, performanceVisibilityRules)
	score += applyFirst(in.CloudCover, performanceCloudRules)

	return clampScore(score)
}
