package swim

import "swimcast/internal/types"

// comfortBase is the starting comfort score before banded adjustments.
const comfortBase = 35

var comfortApparentTempRules = []valueRule{
	{desc: "feels>42", match: func(v float64) bool { return v > 42 }, delta: -15},
	{desc: "feels>38", match: func(v float64) bool { return v > 38 }, delta: -10},
	{desc: "feels>35", match: func(v float64) bool { return v > 35 }, delta: -5},
	{desc: "feels24-32", match: func(v float64) bool { return v >= 24 && v <= 32 }, delta: 5},
	{desc: "feels<18", match: func(v float64) bool { return v < 18 }, delta: -15},
	{desc: "feels<22", match: func(v float64) bool { return v < 22 }, delta: -8},
}

var comfortUVRules = []valueRule{
	{desc: "uv>=11", match: func(v float64) bool { return v >= 11 }, delta: -12},
	{desc: "uv>=9", match: func(v float64) bool { return v >= 9 }, delta: -8},
	{desc: "uv>=7", match: func(v float64) bool { return v >= 7 }, delta: -5},
	{desc: "uv3-6", match: func(v float64) bool { return v >= 3 && v <= 6 }, delta: 2},
}

var comfortCloudRules = []valueRule{
	{desc: "cloud20-70", match: func(v float64) bool { return v >= 20 && v <= 70 }, delta: 3},
	{desc: "cloud>95", match: func(v float64) bool { return v > 95 }, delta: -5},
	{desc: "cloud<10", match: func(v float64) bool { return v < 10 }, delta: -2},
}

var comfortSeaTempRules = []valueRule{
	{desc: "sst24-28", match: func(v float64) bool { return v >= 24 && v <= 28 }, delta: 8},
	{desc: "sst22-30", match: func(v float64) bool { return v >= 22 && v <= 30 }, delta: 3},
	{desc: "sst<20|>31", match: func(v float64) bool { return v < 20 || v > 31 }, delta: -8},
}

var comfortPrecipRules = []valueRule{
	{desc: "precip>5", match: func(v float64) bool { return v > 5 }, delta: -5},
}

var comfortWindRules = []valueRule{
	{desc: "wind>25", match: func(v float64) bool { return v > 25 }, delta: -5},
	{desc: "wind>20", match: func(v float64) bool { return v > 20 }, delta: -3},
}

// ComfortScore computes the 0-100 comfort sub-score: base 35 plus one banded
// adjustment per category.
func ComfortScore(in types.SwimInputs) int {
	score := comfortBase
	score += applyFirst(in.ApparentTemp, comfortApparentTempRules)
	score += applyFirst(in.UVIndex, comfortUVRules)
	score += applyFirst(in.CloudCover, comfortCloudRules)
	score += applyFirst(in.SeaTemp, comfortSeaTempRules)
	score += applyFirst(in.PrecipAmount, comfortPrecipRules)
	score += applyFirst(in.WindSpeed, comfortWindRules)

	return clampScore(score)
}
