// Package analyzer wires the intake pipeline together: format resolution,
// metric extraction, scoring, banding, and triage text. It holds no state
// between requests; every Analyze call is a pure function of its input.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencnc/intake/internal/drawing"
	"github.com/opencnc/intake/internal/format"
	"github.com/opencnc/intake/internal/interfaces"
	"github.com/opencnc/intake/internal/material"
	"github.com/opencnc/intake/internal/mesh"
	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/scoring"
	"github.com/opencnc/intake/internal/triage"
)

// DefaultAnalyzer is the production implementation of interfaces.Analyzer.
type DefaultAnalyzer struct {
	cfg    *Config
	logger interfaces.Logger
}

// NewDefaultAnalyzer constructs the analyzer. It returns
// interfaces.Analyzer so callers can depend on the interfaces package
// contract; a nil config uses DefaultConfig.
func NewDefaultAnalyzer(cfg *Config, logger interfaces.Logger) (interfaces.Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("analyzer: nil logger; please pass a valid interfaces.Logger")
	}

	l := logger.With(interfaces.Field{Key: "component", Value: "analyzer"})
	l.Info("analyzer constructed", interfaces.Field{Key: "scoring_version", Value: scoring.Version})

	return &DefaultAnalyzer{cfg: cfg, logger: l}, nil
}

// Analyze runs one intake analysis. Unknown formats and extraction
// failures are valid outcomes, not errors; err is non-nil only for a nil
// or fundamentally malformed request.
func (a *DefaultAnalyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.AnalysisReport, error) {
	if req == nil {
		return nil, errors.New("analyzer: nil request")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := req.Extension
	if ext == "" {
		ext = path.Ext(req.Filename)
	}
	ext = format.Normalize(ext)
	if ext == "" {
		return nil, fmt.Errorf("analyzer: request %q carries no file extension", req.Filename)
	}

	report := &model.AnalysisReport{
		ID:          uuid.NewString(),
		Filename:    req.Filename,
		Extension:   ext,
		Material:    material.Context(req.Material),
		GeneratedAt: time.Now().UTC(),
	}

	desc, known := format.Resolve(ext)
	if !known {
		a.logger.Info("unknown format, skipping analysis",
			interfaces.Field{Key: "analysis_id", Value: report.ID},
			interfaces.Field{Key: "extension", Value: ext})
		return report, nil
	}
	report.Known = true
	report.Format = desc

	a.extractMetrics(report, desc, req.Data)

	report.Score = scoring.Compute(desc.GeometryClass, report.Mesh, report.Drawing)
	summary := triage.Build(desc.GeometryClass, report.Score, report.Material, report.Mesh, report.Drawing)
	report.Triage = &summary

	a.logger.Info("analysis complete",
		interfaces.Field{Key: "analysis_id", Value: report.ID},
		interfaces.Field{Key: "extension", Value: ext},
		interfaces.Field{Key: "geometry_class", Value: string(desc.GeometryClass)},
		interfaces.Field{Key: "risk", Value: report.Score.Risk},
		interfaces.Field{Key: "confidence", Value: report.Score.Confidence})

	return report, nil
}

// extractMetrics runs the format-appropriate extractor and records either
// metrics or a warning on the report. Formats without an extractor (native
// parametric, STEP, IGES, DWG) score baseline-only with no warning.
func (a *DefaultAnalyzer) extractMetrics(report *model.AnalysisReport, desc *model.FormatDescriptor, data []byte) {
	hasExtractor := desc.GeometryClass == model.ClassMesh || desc.CanonicalExtension == ".dxf"
	if !hasExtractor {
		return
	}
	if a.cfg.MaxFileBytes > 0 && len(data) > a.cfg.MaxFileBytes {
		report.Warning = fmt.Sprintf("file exceeds %d bytes; metric extraction skipped", a.cfg.MaxFileBytes)
		a.logger.Warn("oversized upload, extraction skipped",
			interfaces.Field{Key: "analysis_id", Value: report.ID},
			interfaces.Field{Key: "size_bytes", Value: len(data)})
		return
	}

	var err error
	switch {
	case desc.GeometryClass == model.ClassMesh:
		report.Mesh, err = mesh.ExtractMetrics(data, strings.TrimPrefix(desc.CanonicalExtension, "."))
	case desc.CanonicalExtension == ".dxf":
		report.Drawing, err = drawing.ExtractMetrics(data)
	}
	if err == nil {
		return
	}

	// Extraction failure never aborts scoring; surface it as a warning
	// and fall through to baseline-only values.
	var unavailable *model.MetricsUnavailableError
	if errors.As(err, &unavailable) {
		report.Warning = unavailable.Reason
	} else {
		report.Warning = err.Error()
	}
	a.logger.Warn("metric extraction failed",
		interfaces.Field{Key: "analysis_id", Value: report.ID},
		interfaces.Field{Key: "extension", Value: report.Extension},
		interfaces.Field{Key: "error", Value: err.Error()})
}

// Close releases resources (currently a no-op) and logs lifecycle.
func (a *DefaultAnalyzer) Close() error {
	a.logger.Info("analyzer closed")
	return nil
}
