package domain

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists all priority labels from most to least urgent.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"critical": true, "high": true, "medium": true, "low": true,
}

// PriorityRank returns a sort rank (higher = more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Label returns the human-facing form of the priority ("Critical", "High", ...).
func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// StoryPointScale is the fixed effort scale, ascending.
var StoryPointScale = []int{1, 2, 3, 5, 8, 13}

// ValidStoryPoint reports whether n is on the effort scale.
func ValidStoryPoint(n int) bool {
	for _, v := range StoryPointScale {
		if v == n {
			return true
		}
	}
	return false
}
