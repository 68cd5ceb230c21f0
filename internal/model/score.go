package model

// Axis selects which banding table a 0..100 score is read against.
// Risk and confidence carry independent band tables.
type Axis string

const (
	AxisRisk       Axis = "risk"
	AxisConfidence Axis = "confidence"
)

// Band is a discrete severity label for one contiguous score range on one
// axis. Color is a display hint (hex) for the presentation layer.
type Band struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ScoreResult is the canonical scoring-engine output for a single analysis.
// Both scores are clamped to [0, 100] after all adjustments; the bands are
// always derived from the final clamped scores, never assigned independently.
type ScoreResult struct {
	// Risk is the quote-risk score, 0 (safe) .. 100 (severe).
	Risk int `json:"risk"`

	// Confidence is the data-confidence score, 0 (none) .. 100 (full).
	Confidence int `json:"confidence"`

	RiskBand       Band `json:"risk_band"`
	ConfidenceBand Band `json:"confidence_band"`

	// Explanations lists the adjustments that fired, in the fixed order
	// the engine applies them. Empty when scoring ran baseline-only.
	Explanations []string `json:"explanations,omitempty"`

	// Version identifies the scoring ruleset for auditability.
	Version string `json:"version"`
}
