package triage

import (
	"sort"
	"strings"

	"github.com/alexanderramin/krisis/internal/domain"
)

// Classifier assigns a priority label to normalized text. Implementations
// must be total: any input, including the empty string, yields a result.
type Classifier interface {
	// Rank returns all labels with their scores, best first.
	Rank(normalized string) []LabelScore
	// Classify returns the winning label and a confidence in [0.4, 0.99].
	Classify(normalized string) (domain.Priority, float64)
}

// LabelScore is one entry of a label ranking.
type LabelScore struct {
	Label domain.Priority
	Score float64
}

const (
	defaultConfidence = 0.6
	minConfidence     = 0.5
	maxConfidence     = 0.99
)

// BayesClassifier is a small multinomial Naive Bayes model trained once
// from the seed corpus. Immutable after construction; safe for concurrent
// reads without synchronization.
type BayesClassifier struct {
	labels      []domain.Priority
	priors      map[domain.Priority]float64
	tokenCounts map[domain.Priority]map[string]float64
	totalTokens map[domain.Priority]float64
	vocabSize   float64
}

// NewBayesClassifier trains the model from the fixed seed corpus.
func NewBayesClassifier() *BayesClassifier {
	return trainClassifier(SeedCorpus)
}

func trainClassifier(corpus []SeedExample) *BayesClassifier {
	c := &BayesClassifier{
		priors:      make(map[domain.Priority]float64),
		tokenCounts: make(map[domain.Priority]map[string]float64),
		totalTokens: make(map[domain.Priority]float64),
	}

	vocab := make(map[string]bool)
	labelDocs := make(map[domain.Priority]int)

	for _, ex := range corpus {
		if c.tokenCounts[ex.Label] == nil {
			c.labels = append(c.labels, ex.Label)
			c.tokenCounts[ex.Label] = make(map[string]float64)
		}
		labelDocs[ex.Label]++

		for _, tok := range strings.Fields(Normalize(ex.Phrase)) {
			c.tokenCounts[ex.Label][tok]++
			c.totalTokens[ex.Label]++
			vocab[tok] = true
		}
	}

	for _, label := range c.labels {
		c.priors[label] = float64(labelDocs[label]) / float64(len(corpus))
	}
	c.vocabSize = float64(len(vocab))

	return c
}

// Rank scores every label against the normalized text and returns the
// ranking best first. Ties break by label urgency, then alphabetically,
// so the ordering is deterministic.
func (c *BayesClassifier) Rank(normalized string) []LabelScore {
	tokens := strings.Fields(normalized)

	scores := make([]LabelScore, 0, len(c.labels))
	for _, label := range c.labels {
		score := c.priors[label]
		for _, tok := range tokens {
			// Laplace smoothing keeps unseen tokens from zeroing the label.
			score *= (c.tokenCounts[label][tok] + 1) / (c.totalTokens[label] + c.vocabSize)
		}
		scores = append(scores, LabelScore{Label: label, Score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if ri, rj := domain.PriorityRank(scores[i].Label), domain.PriorityRank(scores[j].Label); ri != rj {
			return ri > rj
		}
		return scores[i].Label < scores[j].Label
	})

	return scores
}

// Classify returns the top label and a confidence derived from the margin
// over the runner-up: top/(top+second), clamped to [0.5, 0.99]. Empty input
// or degenerate scores fall back to Medium/0.6 rather than failing.
func (c *BayesClassifier) Classify(normalized string) (domain.Priority, float64) {
	if TokenCount(normalized) == 0 {
		return domain.PriorityMedium, defaultConfidence
	}

	ranked := c.Rank(normalized)
	if len(ranked) < 2 || ranked[0].Score <= 0 || ranked[1].Score <= 0 {
		return domain.PriorityMedium, defaultConfidence
	}

	confidence := ranked[0].Score / (ranked[0].Score + ranked[1].Score)
	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return ranked[0].Label, confidence
}
