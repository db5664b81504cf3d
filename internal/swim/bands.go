// Package swim implements the swim-suitability scoring core: three
// independent sub-scorers (safety, comfort, performance), a composite
// aggregator with a safety override, and deterministic advisory text driven
// by the same threshold tables. Every function in this package is a pure,
// stateless function of its inputs.
package swim

// valueRule maps a predicate over a single measurement to a score delta.
// Rules within a category are evaluated top to bottom; the first match wins
// and a non-match contributes 0. Keeping each category as an ordered table
// makes band priority visible and lets tests assert against the table instead
// of re-deriving the arithmetic.
type valueRule struct {
	desc  string
	match func(v float64) bool
	delta int
}

// applyFirst returns the delta of the first rule matching v, or 0 when no
// band applies.
func applyFirst(v float64, rules []valueRule) int {
	for _, r := range rules {
		if r.match(v) {
			return r.delta
		}
	}
	return 0
}

// clampScore bounds a sub-score to [0,100]. With the current band tables the
// additive scorers cannot arithmetically exceed 100; the upper clamp guards
// future band changes.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
