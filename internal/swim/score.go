package swim

import (
	"math"

	"swimcast/internal/types"
)

// Composite weights. They sum to 1.0, so the weighted total of three clamped
// sub-scores stays within [0,100] without further clamping.
const (
	safetyWeight      = 0.5
	comfortWeight     = 0.3
	performanceWeight = 0.2
)

// safetyOverrideMax is the safety score at or below which the total equals
// the safety sub-score exactly, overriding the weighted formula.
const safetyOverrideMax = 10

// TotalScore combines the three sub-scores under the safety-override rule.
// Rounding is half-up to the nearest integer.
func TotalScore(b types.ScoreBreakdown) int {
	if b.Safety <= safetyOverrideMax {
		return b.Safety
	}
	weighted := safetyWeight*float64(b.Safety) +
		comfortWeight*float64(b.Comfort) +
		performanceWeight*float64(b.Performance)
	return int(math.Floor(weighted + 0.5))
}

// Compute produces the full swim-suitability assessment for one snapshot of
// conditions. It is a total function over well-typed inputs: every branch
// returns a complete output and no error path exists.
func Compute(in types.SwimInputs) types.SwimScoreOutput {
	breakdown := types.ScoreBreakdown{
		Safety:      SafetyScore(in),
		Comfort:     ComfortScore(in),
		Performance: PerformanceScore(in),
	}
	total := TotalScore(breakdown)

	return types.SwimScoreOutput{
		TotalScore:     total,
		Breakdown:      breakdown,
		Explanation:    Explain(breakdown, in, total),
		Recommendation: Recommend(in, total),
		BestTimeToSwim: BestTime(in),
	}
}
