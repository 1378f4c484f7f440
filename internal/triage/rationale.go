package triage

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/krisis/internal/domain"
)

// rationaleCues is scanned in order against lowercased raw text; every
// matching cue contributes its label, so a record can collect several.
var rationaleCues = []struct {
	keywords []string
	label    string
}{
	{keywords: []string{"outage", "down", "unreachable"}, label: "service outage"},
	{keywords: []string{"security", "breach", "encryption"}, label: "security risk"},
	{keywords: []string{"payment", "checkout"}, label: "revenue impact"},
	{keywords: []string{"typo", "copy", "color", "css"}, label: "cosmetic"},
	{keywords: []string{"migration", "schema", "api", "integration"}, label: "system integration"},
}

// Rationale builds the human-readable justification line for a prediction.
// With no cue matches the text falls back to "general classification".
func Rationale(raw string, priority domain.Priority, points, hours int) string {
	lower := strings.ToLower(raw)

	var cues []string
	for _, cue := range rationaleCues {
		if containsAny(lower, cue.keywords) {
			cues = append(cues, cue.label)
		}
	}

	cueText := "general classification"
	if len(cues) > 0 {
		cueText = strings.Join(cues, ", ")
	}

	return fmt.Sprintf("Priority %s based on cues: %s. Story Points ~%d, Est ~%dh.",
		priority.Label(), cueText, points, hours)
}
