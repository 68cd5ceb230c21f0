package model_test

import (
	"errors"
	"testing"

	"github.com/opencnc/intake/internal/model"
)

func TestGeometryClass_Valid(t *testing.T) {
	t.Parallel()

	for _, gc := range model.Classes {
		if !gc.Valid() {
			t.Errorf("%q should be valid", gc)
		}
	}
	if model.GeometryClass("Voxel").Valid() {
		t.Error("Voxel should not be valid")
	}
}

func TestMetricsUnavailableError_ErrorsAs(t *testing.T) {
	t.Parallel()

	inner := errors.New("bad magic")
	err := model.Unavailable("mesh", "mesh parsing failed", inner)

	var unavailable *model.MetricsUnavailableError
	if !errors.As(error(err), &unavailable) {
		t.Fatal("errors.As failed")
	}
	if unavailable.Reason != "mesh parsing failed" {
		t.Errorf("reason = %q", unavailable.Reason)
	}
	if !errors.Is(err, inner) {
		t.Error("expected the inner error to be reachable via errors.Is")
	}
}

func TestMetricsUnavailableError_ErrorText(t *testing.T) {
	t.Parallel()

	withCause := model.Unavailable("drawing", "DXF parsing failed", errors.New("odd line count"))
	if withCause.Error() != "drawing metrics unavailable: DXF parsing failed: odd line count" {
		t.Errorf("unexpected text %q", withCause.Error())
	}
	bare := model.Unavailable("mesh", "empty file", nil)
	if bare.Error() != "mesh metrics unavailable: empty file" {
		t.Errorf("unexpected text %q", bare.Error())
	}
}

func TestDrawingExtents_NilSafety(t *testing.T) {
	t.Parallel()

	var e *model.DrawingExtents
	if e.HasZ() {
		t.Error("nil extents must not report Z")
	}
	if e.MaxPlanarDim() != 0 {
		t.Error("nil extents must measure 0")
	}

	e = &model.DrawingExtents{Size: [3]float64{10, 25, 0}}
	if e.MaxPlanarDim() != 25 {
		t.Errorf("MaxPlanarDim = %v, want 25", e.MaxPlanarDim())
	}
	if e.HasZ() {
		t.Error("zero Z size must not report a Z dimension")
	}
}

func TestDrawingMetrics_SplineCount(t *testing.T) {
	t.Parallel()

	var m *model.DrawingMetrics
	if m.SplineCount() != 0 {
		t.Error("nil metrics must count 0 splines")
	}
	m = &model.DrawingMetrics{CountsByType: map[string]int{"SPLINE": 3}}
	if m.SplineCount() != 3 {
		t.Errorf("SplineCount = %d, want 3", m.SplineCount())
	}
}
