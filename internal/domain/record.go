package domain

import "strings"

// TextRecord is one input row of issue text. Either field may be empty;
// upstream validation guarantees at least the columns existed, not that
// any given row has content.
type TextRecord struct {
	Summary     string
	Description string
}

// Text returns the combined free text of the record, trimmed.
// An all-blank record yields the empty string.
func (r TextRecord) Text() string {
	return strings.TrimSpace(strings.TrimSpace(r.Summary) + " " + strings.TrimSpace(r.Description))
}
