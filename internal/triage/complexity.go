package triage

import (
	"math"
	"strings"
)

// complexityBand is one keyword band of the complexity heuristic. Every
// band keyword found in the normalized text contributes the band weight
// once, and contributions sum across bands.
type complexityBand struct {
	keywords []string
	weight   float64
}

var complexityBands = []complexityBand{
	{keywords: []string{"typo", "copy", "label", "color", "css", "cosmetic"}, weight: -0.20},
	{keywords: []string{"minor", "button", "alignment", "tooltip", "wording", "padding"}, weight: 0.05},
	{keywords: []string{"refactor", "endpoint", "cache", "pagination", "report", "validation"}, weight: 0.15},
	{keywords: []string{"migration", "schema", "architecture", "redesign", "integration", "distributed", "multi tenant"}, weight: 0.35},
}

const (
	complexityTokenScale = 120.0
	complexityMin        = 0.0
	complexityMax        = 1.5
)

// ComplexityScore produces a continuous complexity score in [0, 1.5] from
// raw text: a length-based baseline plus additive keyword band weights.
func ComplexityScore(raw string) float64 {
	normalized := Normalize(raw)

	score := math.Min(1, float64(TokenCount(normalized))/complexityTokenScale)
	for _, band := range complexityBands {
		for _, kw := range band.keywords {
			if strings.Contains(normalized, kw) {
				score += band.weight
			}
		}
	}

	return math.Min(complexityMax, math.Max(complexityMin, score))
}
