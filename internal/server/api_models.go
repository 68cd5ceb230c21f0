package server

import (
	"github.com/opencnc/intake/internal/format"
	"github.com/opencnc/intake/internal/model"
)

// ErrorResponse is the JSON body returned for any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error" example:"unsupported file format"`
}

// FormatRow is one line of the format comparison table: the canonical
// extension with its class, baseline scores and band labels.
type FormatRow struct {
	Extension          string `json:"extension" example:".step"`
	DisplayName        string `json:"display_name" example:"STEP (Standard for the Exchange of Product Data)"`
	GeometryClass      string `json:"geometry_class" example:"B-Rep"`
	BaselineRisk       int    `json:"baseline_risk" example:"15"`
	RiskLabel          string `json:"risk_label" example:"Low"`
	BaselineConfidence int    `json:"baseline_confidence" example:"85"`
	ConfidenceLabel    string `json:"confidence_label" example:"Very high"`
	Automation         string `json:"automation" example:"High"`
	Suitability        string `json:"suitability"`
}

// FormatDetail is the full knowledge-base entry for one extension plus
// the narrative guidance built from it.
type FormatDetail struct {
	Format         model.FormatDescriptor `json:"format"`
	WhatThisIs     string                 `json:"what_this_is"`
	Workflow       string                 `json:"workflow"`
	CommonFailure  string                 `json:"common_failure"`
	QuotingReality string                 `json:"quoting_reality"`
	BulletNotes    format.BulletNotes     `json:"bullet_notes"`
}
