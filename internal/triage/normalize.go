package triage

import (
	"regexp"
	"strings"
)

// tokenPattern accepts lowercase alphanumeric runs, optionally with a leading
// hash (issue references like "#123" survive normalization).
var tokenPattern = regexp.MustCompile(`#?[a-z0-9]+`)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"of": true, "to": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "from": true, "as": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"it": true, "its": true, "this": true, "that": true, "these": true,
	"those": true, "we": true, "our": true, "they": true, "their": true,
	"there": true, "has": true, "have": true, "had": true, "will": true,
	"would": true, "should": true, "can": true, "do": true, "does": true,
	"not": true, "no": true, "so": true, "if": true, "when": true,
	"into": true, "out": true, "up": true, "about": true, "please": true,
}

// Normalize lowercases raw text, tokenizes it, drops stop words and
// non-alphanumeric tokens, and joins the survivors with single spaces.
// Deterministic; empty or all-stop-word input yields the empty string.
func Normalize(raw string) string {
	tokens := tokenPattern.FindAllString(strings.ToLower(raw), -1)
	kept := tokens[:0]
	for _, tok := range tokens {
		if stopWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// TokenCount returns the number of tokens in already-normalized text.
func TokenCount(normalized string) int {
	if normalized == "" {
		return 0
	}
	return len(strings.Fields(normalized))
}

// containsAny reports whether any of the needles occurs as a substring of s.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
