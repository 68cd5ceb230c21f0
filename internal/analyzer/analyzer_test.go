package analyzer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/opencnc/intake/internal/analyzer"
	"github.com/opencnc/intake/internal/interfaces"
	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/testutil"
)

type harness struct {
	an     interfaces.Analyzer
	logger *testutil.DummyLogger
}

func newAnalyzer(t *testing.T) harness {
	t.Helper()
	logger := &testutil.DummyLogger{}
	an, err := analyzer.NewDefaultAnalyzer(nil, logger)
	if err != nil {
		t.Fatalf("NewDefaultAnalyzer: %v", err)
	}
	t.Cleanup(func() { _ = an.Close() })
	return harness{an: an, logger: logger}
}

// ─── End to end ────────────────────────────────────────────────────────

func TestAnalyze_STLCube(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: "bracket.stl",
		Material: "aluminum-6061",
		Data:     testutil.BinarySTLCube([3]float32{0, 0, 0}),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if !report.Known {
		t.Fatal("expected .stl to be a known format")
	}
	if report.ID == "" {
		t.Error("expected a non-empty analysis ID")
	}
	if report.Mesh == nil || report.Mesh.TriangleCount != 12 {
		t.Fatalf("mesh metrics = %+v, want 12 triangles", report.Mesh)
	}
	if report.Drawing != nil {
		t.Error("mesh formats must not carry drawing metrics")
	}
	if report.Score == nil || report.Score.Risk != 75 || report.Score.Confidence != 25 {
		t.Errorf("score = %+v, want baseline (75, 25) for a clean cube", report.Score)
	}
	if report.Triage == nil || !strings.Contains(report.Triage.SentenceOne, "Mesh geometry") {
		t.Errorf("triage = %+v", report.Triage)
	}
	if report.Warning != "" {
		t.Errorf("unexpected warning %q", report.Warning)
	}
}

func TestAnalyze_DXF(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: "plate.dxf",
		Data: testutil.BuildDXF(
			testutil.DXFLine("0", "0", "0", "100", "0"),
			testutil.DXFSpline("0"),
		),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Drawing == nil || report.Drawing.TotalEntities != 2 {
		t.Fatalf("drawing metrics = %+v, want 2 entities", report.Drawing)
	}
	if report.Mesh != nil {
		t.Error("drawing formats must not carry mesh metrics")
	}
	// 45 baseline + 10 spline risk.
	if report.Score.Risk != 55 || report.Score.Confidence != 45 {
		t.Errorf("score = (%d, %d), want (55, 45)", report.Score.Risk, report.Score.Confidence)
	}
	if !report.Material.Unknown {
		t.Error("empty material selection should resolve to unknown")
	}
}

func TestAnalyze_BaselineOnlyFormats(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	for _, name := range []string{"housing.step", "fixture.sldprt", "layout.dwg"} {
		report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{Filename: name})
		if err != nil {
			t.Fatalf("Analyze(%s): %v", name, err)
		}
		if report.Mesh != nil || report.Drawing != nil {
			t.Errorf("%s: expected baseline-only scoring without metrics", name)
		}
		if report.Warning != "" {
			t.Errorf("%s: no-extractor formats must not warn, got %q", name, report.Warning)
		}
		if report.Score == nil || report.Triage == nil {
			t.Errorf("%s: expected score and triage", name)
		}
	}
}

// ─── Terminal and fallback outcomes ────────────────────────────────────

func TestAnalyze_UnknownFormatIsTerminal(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{Filename: "scan.xyz"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Known {
		t.Error("expected .xyz to be unknown")
	}
	if report.Format != nil || report.Score != nil || report.Triage != nil || report.Mesh != nil {
		t.Errorf("unknown format must stop before analysis, got %+v", report)
	}
}

func TestAnalyze_CorruptMeshFallsBackToBaseline(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: "broken.stl",
		Data:     []byte("definitely not an stl"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Warning == "" {
		t.Error("expected a warning for the failed extraction")
	}
	if report.Mesh != nil {
		t.Error("failed extraction must leave mesh metrics nil")
	}
	if report.Score == nil || report.Score.Risk != 75 {
		t.Errorf("score = %+v, want mesh baseline", report.Score)
	}
	if len(h.logger.Warns) == 0 {
		t.Error("expected the extraction failure to be logged")
	}
}

func TestAnalyze_OversizedFileSkipsExtraction(t *testing.T) {
	t.Parallel()

	logger := &testutil.DummyLogger{}
	an, err := analyzer.NewDefaultAnalyzer(&analyzer.Config{MaxFileBytes: 64}, logger)
	if err != nil {
		t.Fatalf("NewDefaultAnalyzer: %v", err)
	}
	defer an.Close()

	report, err := an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: "huge.stl",
		Data:     testutil.BinarySTLCube([3]float32{0, 0, 0}),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(report.Warning, "extraction skipped") {
		t.Errorf("warning = %q, want the oversize note", report.Warning)
	}
	if report.Mesh != nil {
		t.Error("oversized upload must not be decoded")
	}
	if report.Score == nil || report.Score.Risk != 75 {
		t.Errorf("score = %+v, want mesh baseline", report.Score)
	}
}

// ─── Request validation ────────────────────────────────────────────────

func TestAnalyze_ExtensionOverride(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	report, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename:  "export.bin",
		Extension: "STP",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !report.Known || report.Format.CanonicalExtension != ".step" {
		t.Errorf("expected the override to resolve as .step, got %+v", report.Format)
	}
}

func TestAnalyze_NilRequest(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	if _, err := h.an.Analyze(context.Background(), nil); err == nil {
		t.Error("expected an error for a nil request")
	}
}

func TestAnalyze_NoExtension(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	if _, err := h.an.Analyze(context.Background(), &model.AnalysisRequest{Filename: "README"}); err == nil {
		t.Error("expected an error for a filename with no extension")
	}
}

func TestAnalyze_CanceledContext(t *testing.T) {
	t.Parallel()
	h := newAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.an.Analyze(ctx, &model.AnalysisRequest{Filename: "a.stl"}); err == nil {
		t.Error("expected an error for a canceled context")
	}
}

func TestNewDefaultAnalyzer_NilLogger(t *testing.T) {
	t.Parallel()

	if _, err := analyzer.NewDefaultAnalyzer(nil, nil); err == nil {
		t.Error("expected an error for a nil logger")
	}
}
