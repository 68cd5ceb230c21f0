package cli_test

import (
	"strings"
	"testing"

	"github.com/opencnc/intake/internal/cli"
	"github.com/opencnc/intake/internal/format"
	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/scoring"
)

// ─── ParseArgs ─────────────────────────────────────────────────────────

func TestParseArgs(t *testing.T) {
	t.Parallel()

	opts, err := cli.ParseArgs([]string{"-file", "part.stl", "-material", "steel-4140", "-json"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.File != "part.stl" || opts.Material != "steel-4140" || !opts.JSON {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParseArgs_FileRequired(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs(nil); err == nil {
		t.Error("expected an error without -file")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs([]string{"-bogus"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}

// ─── Render ────────────────────────────────────────────────────────────

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	out := cli.Render(&model.AnalysisReport{
		Filename:  "scan.xyz",
		Extension: ".xyz",
		Known:     false,
	})
	if !strings.Contains(out, "unrecognized") {
		t.Errorf("expected the unrecognized note, got:\n%s", out)
	}
}

func TestRender_FullReport(t *testing.T) {
	t.Parallel()

	desc, _ := format.Resolve(".stl")
	one := 1
	mesh := &model.MeshMetrics{
		TriangleCount:  12,
		BBoxDims:       [3]float64{1, 1, 1},
		IsWatertight:   true,
		ComponentCount: &one,
	}
	score := scoring.Compute(desc.GeometryClass, mesh, nil)

	out := cli.Render(&model.AnalysisReport{
		Filename:  "bracket.stl",
		Extension: ".stl",
		Known:     true,
		Format:    desc,
		Material:  model.MaterialContext{Label: "Aluminum — 6061-T6"},
		Mesh:      mesh,
		Score:     score,
		Triage:    &model.TriageSummary{SentenceOne: "One.", SentenceTwo: "Two."},
	})

	for _, want := range []string{
		"bracket.stl",
		"Triangles:  12",
		"Watertight: true",
		"Quote risk:       75/100 (High)",
		"Quote confidence: 25/100 (Low)",
		"One. Two.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_WarningShown(t *testing.T) {
	t.Parallel()

	desc, _ := format.Resolve(".stl")
	out := cli.Render(&model.AnalysisReport{
		Filename: "broken.stl",
		Known:    true,
		Format:   desc,
		Material: model.MaterialContext{Label: "Other / Unknown", Unknown: true},
		Warning:  "mesh parsing failed",
		Score:    scoring.Compute(desc.GeometryClass, nil, nil),
	})
	if !strings.Contains(out, "Warning: mesh parsing failed") {
		t.Errorf("expected the warning line, got:\n%s", out)
	}
}
