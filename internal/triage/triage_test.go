package triage_test

import (
	"strings"
	"testing"

	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/scoring"
	"github.com/opencnc/intake/internal/triage"
)

func intPtr(v int) *int { return &v }

var knownMat = model.MaterialContext{Label: "Aluminum — 6061-T6"}
var unknownMat = model.MaterialContext{Label: "Other / Unknown", Unknown: true}

// sentenceCount counts sentence terminators; every summary must have
// exactly two, one per sentence.
func sentenceCount(s string) int {
	return strings.Count(s, ".")
}

func TestBuild_TwoSentencesAlways(t *testing.T) {
	t.Parallel()

	mesh := &model.MeshMetrics{TriangleCount: 100, IsWatertight: false, ComponentCount: intPtr(3)}
	score := scoring.Compute(model.ClassMesh, mesh, nil)
	sum := triage.Build(model.ClassMesh, score, unknownMat, mesh, nil)

	if !strings.HasSuffix(sum.SentenceOne, ".") || sentenceCount(sum.SentenceOne) != 1 {
		t.Errorf("sentence one is not exactly one sentence: %q", sum.SentenceOne)
	}
	if !strings.HasSuffix(sum.SentenceTwo, ".") || sentenceCount(sum.SentenceTwo) != 1 {
		t.Errorf("sentence two is not exactly one sentence: %q", sum.SentenceTwo)
	}
}

func TestBuild_EqualBandsUseShortForm(t *testing.T) {
	t.Parallel()

	score := scoring.Compute(model.ClassBRep, nil, nil)
	sum := triage.Build(model.ClassBRep, score, knownMat, nil, nil)

	want := "Material: Aluminum — 6061-T6 — B-Rep geometry with low quote risk."
	if sum.SentenceOne != want {
		t.Errorf("sentence one = %q, want %q", sum.SentenceOne, want)
	}
}

func TestBuild_AdjustedBandUsesLongForm(t *testing.T) {
	t.Parallel()

	// Baseline mesh risk 75 (high); non-watertight pushes it to 85 (severe).
	mesh := &model.MeshMetrics{TriangleCount: 100, IsWatertight: false, ComponentCount: intPtr(1)}
	score := scoring.Compute(model.ClassMesh, mesh, nil)
	sum := triage.Build(model.ClassMesh, score, knownMat, mesh, nil)

	if !strings.Contains(sum.SentenceOne, "high baseline risk, adjusted to severe") {
		t.Errorf("expected baseline/adjusted phrasing, got %q", sum.SentenceOne)
	}
	if !strings.Contains(sum.SentenceOne, "mesh is not watertight") {
		t.Errorf("expected watertight flag, got %q", sum.SentenceOne)
	}
}

func TestBuild_CleanupFlagOrder(t *testing.T) {
	t.Parallel()

	mesh := &model.MeshMetrics{TriangleCount: 100, IsWatertight: false, ComponentCount: intPtr(4)}
	d := &model.DrawingMetrics{CountsByType: map[string]int{"SPLINE": 1}}
	score := scoring.Compute(model.ClassMesh, mesh, d)
	sum := triage.Build(model.ClassMesh, score, knownMat, mesh, d)

	i1 := strings.Index(sum.SentenceOne, "mesh is not watertight")
	i2 := strings.Index(sum.SentenceOne, "4 disconnected components detected")
	i3 := strings.Index(sum.SentenceOne, "splines present")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Errorf("flags missing or out of order in %q", sum.SentenceOne)
	}
}

func TestBuild_NextAskByClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		gc   model.GeometryClass
		want string
	}{
		{model.ClassMesh, "Confirm units (mm vs in) and request a STEP or native CAD file if available."},
		{model.ClassDrawing2D, "Confirm dimensions, tolerances, and material thickness are specified in the drawing."},
		{model.ClassBRep, "Confirm tolerances and surface finish requirements."},
		{model.ClassParametric, "Confirm tolerances and surface finish requirements."},
	}
	for _, c := range cases {
		score := scoring.Compute(c.gc, nil, nil)
		sum := triage.Build(c.gc, score, knownMat, nil, nil)
		if sum.SentenceTwo != c.want {
			t.Errorf("%s: sentence two = %q, want %q", c.gc, sum.SentenceTwo, c.want)
		}
	}
}

func TestBuild_UnknownMaterialFoldsIntoSentenceTwo(t *testing.T) {
	t.Parallel()

	score := scoring.Compute(model.ClassMesh, nil, nil)
	sum := triage.Build(model.ClassMesh, score, unknownMat, nil, nil)

	if !strings.Contains(sum.SentenceTwo, "; also confirm material, heat treat condition, and any coatings/special processes") {
		t.Errorf("unknown-material clause missing from %q", sum.SentenceTwo)
	}
	if sentenceCount(sum.SentenceTwo) != 1 {
		t.Errorf("clause folding created extra sentences: %q", sum.SentenceTwo)
	}
}

func TestBuild_UnknownMaterialBRepForm(t *testing.T) {
	t.Parallel()

	score := scoring.Compute(model.ClassBRep, nil, nil)
	sum := triage.Build(model.ClassBRep, score, unknownMat, nil, nil)

	want := "Confirm tolerances, surface finish requirements, material, heat treat condition, and any coatings/special processes."
	if sum.SentenceTwo != want {
		t.Errorf("sentence two = %q, want %q", sum.SentenceTwo, want)
	}
}

func TestText_JoinsWithSingleSpace(t *testing.T) {
	t.Parallel()

	sum := model.TriageSummary{SentenceOne: "One.", SentenceTwo: "Two."}
	if sum.Text() != "One. Two." {
		t.Errorf("Text() = %q", sum.Text())
	}
}
