package triage

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEngine_PaymentOutageScenario(t *testing.T) {
	e := NewEngine()

	got := e.Predict(1, domain.TextRecord{
		Summary: "Payment gateway failing checkout blocked for all customers",
	})

	assert.Equal(t, domain.PriorityCritical, got.Priority)
	assert.GreaterOrEqual(t, got.Confidence, 0.85)
	assert.Contains(t, got.Rationale, "revenue impact")
}

func TestEngine_CosmeticScenario(t *testing.T) {
	e := NewEngine()

	got := e.Predict(1, domain.TextRecord{
		Summary: "Minor CSS fix needed for misaligned button",
	})

	assert.LessOrEqual(t, got.StoryPoints, 3)
	assert.Contains(t, got.Rationale, "cosmetic")
	assert.NotEqual(t, domain.PriorityCritical, got.Priority)
}

func TestEngine_EmptyRecordShortCircuits(t *testing.T) {
	e := NewEngine()

	got := e.Predict(3, domain.TextRecord{Summary: "", Description: "  "})

	assert.Equal(t, 3, got.RowIndex)
	assert.Equal(t, domain.PriorityLow, got.Priority)
	assert.Equal(t, 1, got.StoryPoints)
	assert.Equal(t, 4, got.EstimateHours)
	assert.Equal(t, 0.4, got.Confidence)
	assert.Contains(t, got.Rationale, "No text provided")
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine()
	rec := domain.TextRecord{
		Summary:     "Slow report generation",
		Description: "investigate legacy pagination cache for large accounts",
	}

	first := e.Predict(1, rec)
	second := e.Predict(1, rec)
	assert.Equal(t, first, second)
}

func TestEngine_OverrideBeatsClassifier(t *testing.T) {
	// A stub that insists everything is Low; the emergency override must win.
	e := NewEngineWith(stubClassifier{label: domain.PriorityLow, confidence: 0.5})

	got := e.Predict(1, domain.TextRecord{Summary: "database unreachable, possible data loss"})

	assert.Equal(t, domain.PriorityCritical, got.Priority)
	assert.GreaterOrEqual(t, got.Confidence, 0.85)
}

func TestEngine_OverrideKeepsHigherConfidence(t *testing.T) {
	e := NewEngineWith(stubClassifier{label: domain.PriorityCritical, confidence: 0.97})

	got := e.Predict(1, domain.TextRecord{Summary: "full production outage"})
	assert.Equal(t, 0.97, got.Confidence, "override must not lower an already high confidence")
}

// TestEngine_OutputInvariants property-tests every published bound over
// arbitrary word-salad records.
func TestEngine_OutputInvariants(t *testing.T) {
	e := NewEngine()
	rng := rand.New(rand.NewSource(99))
	vocab := []string{"outage", "payment", "typo", "css", "migration", "schema",
		"spike", "simple", "dependency", "report", "login", "crash", "tooltip",
		"legacy", "coordination", "deploy", "#42", "the", "for", "and"}

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(40)
		words := make([]string, n)
		for i := range words {
			words[i] = vocab[rng.Intn(len(vocab))]
		}
		rec := domain.TextRecord{Summary: strings.Join(words, " ")}

		got := e.Predict(trial+1, rec)
		assert.True(t, domain.ValidStoryPoint(got.StoryPoints), "story points %d", got.StoryPoints)
		assert.GreaterOrEqual(t, got.EstimateHours, 1)
		assert.GreaterOrEqual(t, got.Confidence, 0.4)
		assert.LessOrEqual(t, got.Confidence, 0.99)
		assert.NotZero(t, domain.PriorityRank(got.Priority))
		assert.NotEmpty(t, got.Rationale)
	}
}

type stubClassifier struct {
	label      domain.Priority
	confidence float64
}

func (s stubClassifier) Rank(string) []LabelScore {
	return []LabelScore{{Label: s.label, Score: 1}}
}

func (s stubClassifier) Classify(string) (domain.Priority, float64) {
	return s.label, s.confidence
}
