package model

import "time"

// TriageSummary is the two-sentence intake summary shown to the shop.
// The two-sentence shape is enforced by construction in the triage package:
// each sentence is assembled from clause lists and terminated exactly once,
// so clause folding can never introduce a third sentence.
type TriageSummary struct {
	SentenceOne string `json:"sentence_one"`
	SentenceTwo string `json:"sentence_two"`
}

// Text joins the two sentences for display or copy/paste.
func (t TriageSummary) Text() string {
	return t.SentenceOne + " " + t.SentenceTwo
}

// AnalysisRequest is one intake request: the uploaded file plus the
// customer's material selection. Each request is analyzed independently;
// nothing persists between requests.
type AnalysisRequest struct {
	Filename string `json:"filename"`

	// Extension overrides the extension derived from Filename when set.
	Extension string `json:"extension,omitempty"`

	// Material is a material slug or label; empty means Other / Unknown.
	Material string `json:"material,omitempty"`

	Data []byte `json:"-"`
}

// AnalysisReport is the full result of one intake analysis.
type AnalysisReport struct {
	// ID uniquely identifies this analysis run (for logs and the intake feed).
	ID string `json:"id"`

	Filename  string `json:"filename"`
	Extension string `json:"extension"`

	// Known is false when the extension is not in the format knowledge
	// table. Unknown format is terminal: no metrics, scores, or triage.
	Known bool `json:"known"`

	Format   *FormatDescriptor `json:"format,omitempty"`
	Material MaterialContext   `json:"material"`

	// Exactly one of Mesh/Drawing is set for formats with an extractor;
	// both are nil for formats scored baseline-only or when extraction
	// failed (then Warning carries the reason).
	Mesh    *MeshMetrics    `json:"mesh_metrics,omitempty"`
	Drawing *DrawingMetrics `json:"drawing_metrics,omitempty"`
	Warning string          `json:"warning,omitempty"`

	Score  *ScoreResult   `json:"score,omitempty"`
	Triage *TriageSummary `json:"triage,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
