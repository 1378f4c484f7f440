package triage

import "github.com/alexanderramin/krisis/internal/domain"

// Defaults for records with no usable text: the engine never sees them as
// an error, it routes them to a fixed conservative result.
const (
	emptyConfidence = 0.4
	emptyRationale  = "No text provided; defaulted to lowest effort and priority."
)

// Engine runs the full prediction pipeline for single records. The
// classifier is trained once at construction and shared read-only across
// all calls, so one Engine serves any number of concurrent predictions.
type Engine struct {
	classifier Classifier
}

// NewEngine builds an engine backed by the seed-trained Bayes classifier.
func NewEngine() *Engine {
	return &Engine{classifier: NewBayesClassifier()}
}

// NewEngineWith builds an engine around a caller-supplied classifier.
// Used by tests to substitute a deterministic stub.
func NewEngineWith(c Classifier) *Engine {
	return &Engine{classifier: c}
}

// Predict produces the triage prediction for one record. It is pure and
// idempotent: the same record always yields the same result.
func (e *Engine) Predict(rowIndex int, rec domain.TextRecord) domain.Prediction {
	raw := rec.Text()
	if raw == "" {
		return domain.Prediction{
			RowIndex:      rowIndex,
			Priority:      domain.PriorityLow,
			StoryPoints:   1,
			EstimateHours: baseHours[1],
			Confidence:    emptyConfidence,
			Rationale:     emptyRationale,
		}
	}

	normalized := Normalize(raw)

	priority, confidence := e.classifier.Classify(normalized)
	if EmergencyOverride(raw) {
		priority = domain.PriorityCritical
		if confidence < overrideConfidenceFloor {
			confidence = overrideConfidenceFloor
		}
	}

	points := StoryPoints(ComplexityScore(raw))
	hours := EstimateHours(points, normalized)

	return domain.Prediction{
		RowIndex:      rowIndex,
		Priority:      priority,
		StoryPoints:   points,
		EstimateHours: hours,
		Confidence:    confidence,
		Rationale:     Rationale(raw, priority, points, hours),
	}
}
