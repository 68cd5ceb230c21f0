package interfaces

import (
	"context"

	"github.com/opencnc/intake/internal/model"
)

// Analyzer is the cross-package contract for a full intake analysis:
// format resolution, metric extraction, scoring, banding, and triage text.
// The Analyzer performs no network or filesystem I/O; every call is a pure
// function of the request bytes, extension, and material selection.
//
// Note: this interface intentionally references model.AnalysisReport so
// callers and implementations agree on the canonical result type.
type Analyzer interface {
	// Analyze runs one intake analysis. An unknown extension is not an
	// error: the report comes back with Known=false and no scores. A
	// decode failure in an extractor is also not an error: scoring falls
	// back to the geometry-class baseline and the report carries a warning.
	Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.AnalysisReport, error)

	// Close releases any resources held by the analyzer.
	Close() error
}
