package model

// FormatDescriptor is the canonical knowledge-table entry for one CAD file
// format. Descriptors are immutable after startup; the format package owns
// the table and hands out copies via Resolve.
type FormatDescriptor struct {
	// Extension is the extension the caller asked about (lower-cased,
	// with leading dot), which may be an alias like ".stp".
	Extension string `json:"extension"`

	// CanonicalExtension is the table key the extension resolved to
	// (e.g. ".step" for ".stp").
	CanonicalExtension string `json:"canonical_extension"`

	// DisplayName is the human-readable format name (e.g. "Neutral Solid (STEP)").
	DisplayName string `json:"display_name"`

	// GeometryClass drives both the scoring baseline and triage phrasing.
	GeometryClass GeometryClass `json:"geometry_class"`

	AuthoringTools []string `json:"typical_authoring_tools,omitempty"`
	CommonUseCases []string `json:"common_use_cases,omitempty"`

	// Survives and Lost describe what the format preserves or drops on export.
	Survives []string `json:"survives,omitempty"`
	Lost     []string `json:"lost,omitempty"`

	// Coarse intake labels from the knowledge table. These are informational
	// only; numeric scoring always starts from the geometry-class baseline.
	QuoteConfidence        string `json:"dfm_quote_confidence"`
	QuoteRiskBaseline      string `json:"quote_risk_baseline"`
	AutomationFriendliness string `json:"automation_friendliness"`

	Notes []string `json:"notes,omitempty"`
}

// MaterialContext carries the material selection into triage text
// composition. It never enters scoring.
type MaterialContext struct {
	// Label is the triage-ready material label (parenthetical notes stripped,
	// e.g. "Aluminum — 6061-T6").
	Label string `json:"label"`

	// Unknown is true when the customer did not specify a material; triage
	// then appends a confirmation clause to the next-ask sentence.
	Unknown bool `json:"unknown"`
}
