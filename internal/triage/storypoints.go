package triage

// storyPointBuckets maps ascending complexity thresholds 1:1 onto the
// fixed effort scale. The first bucket whose threshold covers the score
// wins; anything beyond the last threshold is a 13.
var storyPointBuckets = []struct {
	threshold float64
	points    int
}{
	{0.15, 1},
	{0.30, 2},
	{0.50, 3},
	{0.80, 5},
	{1.10, 8},
	{1.50, 13},
}

// StoryPoints maps a complexity score to the effort scale {1,2,3,5,8,13}.
func StoryPoints(score float64) int {
	for _, b := range storyPointBuckets {
		if score <= b.threshold {
			return b.points
		}
	}
	return 13
}
