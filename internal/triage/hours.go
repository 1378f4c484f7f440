package triage

import "math"

// baseHours is the starting estimate per story point value.
var baseHours = map[int]int{
	1:  4,
	2:  6,
	3:  8,
	5:  16,
	8:  32,
	13: 56,
}

// Multiplier keyword lists are matched against normalized text, so
// hyphenated source phrases appear here in their normalized form
// ("well-defined" becomes "well defined").
var (
	uncertaintyKeywords  = []string{"spike", "investigate", "unknown", "legacy", "undocumented"}
	simplicityKeywords   = []string{"well defined", "simple", "trivial", "straightforward"}
	coordinationKeywords = []string{"cross team", "multiple services", "coordination", "dependency"}
)

// EstimateHours derives an hour estimate from the story point value and
// risk keywords in the normalized text. Up to three independent multipliers
// compose on the base: ×1.30 for uncertainty, ×0.80 for simplicity,
// ×1.25 for coordination. The result rounds to the nearest whole hour.
func EstimateHours(points int, normalized string) int {
	hours := float64(baseHours[points])

	if containsAny(normalized, uncertaintyKeywords) {
		hours *= 1.30
	}
	if containsAny(normalized, simplicityKeywords) {
		hours *= 0.80
	}
	if containsAny(normalized, coordinationKeywords) {
		hours *= 1.25
	}

	return int(math.Round(hours))
}
