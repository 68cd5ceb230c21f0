// Package scoring is the dual-axis (risk, confidence) scoring engine for
// CNC intake. Compute is a pure function: baseline lookup by geometry class,
// a fixed ordered list of additive adjustments driven by extracted metrics,
// then a single clamp of both axes to [0,100]. Material and filename never
// enter scoring.
package scoring

import (
	"fmt"

	"github.com/opencnc/intake/internal/model"
)

// Version identifies the scoring ruleset for auditability.
const Version = "cnc-intake-v1"

// Adjustment weights. The triangle-count tiers stack: a mesh over 2M
// triangles takes both the high and very-high increments (+15 total).
const (
	nonWatertightRisk       = 10
	nonWatertightConfidence = -10
	multiComponentRisk      = 8
	highTriangleRisk        = 5
	veryHighTriangleRisk    = 10
	splineRisk              = 10
	splineConfidence        = -5
	extentsRisk             = 5

	highTriangleThreshold     = 500_000
	veryHighTriangleThreshold = 2_000_000
	largeExtentsThreshold     = 10_000.0
	smallExtentsThreshold     = 1.0
)

// baselines maps each geometry class to its (risk, confidence) starting
// point for CNC machining intake.
var baselines = map[model.GeometryClass][2]int{
	model.ClassBRep:       {15, 85},
	model.ClassSurface:    {40, 55},
	model.ClassMesh:       {75, 25},
	model.ClassParametric: {20, 80},
	model.ClassDrawing2D:  {45, 50},
}

func init() {
	// Every geometry class must have a baseline; scoring is total over the
	// enumeration by construction.
	for _, gc := range model.Classes {
		if _, ok := baselines[gc]; !ok {
			panic(fmt.Sprintf("scoring: geometry class %q has no baseline", gc))
		}
	}
}

// Baseline returns the (risk, confidence) baseline for a geometry class.
// Unknown classes fall back to a neutral (50, 50).
func Baseline(gc model.GeometryClass) (risk, confidence int) {
	b, ok := baselines[gc]
	if !ok {
		return 50, 50
	}
	return b[0], b[1]
}

// Compute scores one analysis. Either or both metric arguments may be nil:
// a nil pair means baseline-only scoring with zero adjustments and zero
// explanations (the metrics-unavailable fallback path). Adjustments fire
// independently, in the fixed order below; both axes are clamped to
// [0,100] once, after all adjustments are summed.
func Compute(gc model.GeometryClass, mesh *model.MeshMetrics, drawing *model.DrawingMetrics) *model.ScoreResult {
	risk, confidence := Baseline(gc)
	var explanations []string

	if mesh != nil {
		if !mesh.IsWatertight {
			risk += nonWatertightRisk
			confidence += nonWatertightConfidence
			explanations = append(explanations,
				fmt.Sprintf("Non-watertight mesh: risk +%d, confidence %d", nonWatertightRisk, nonWatertightConfidence))
		}
		if cc := mesh.ComponentCount; cc != nil && *cc > 1 {
			risk += multiComponentRisk
			explanations = append(explanations,
				fmt.Sprintf("%d disconnected components: risk +%d", *cc, multiComponentRisk))
		}
		if mesh.TriangleCount > highTriangleThreshold {
			risk += highTriangleRisk
			explanations = append(explanations,
				fmt.Sprintf("High triangle count (%s): risk +%d", groupDigits(mesh.TriangleCount), highTriangleRisk))
		}
		if mesh.TriangleCount > veryHighTriangleThreshold {
			risk += veryHighTriangleRisk
			explanations = append(explanations,
				fmt.Sprintf("Very high triangle count (%s): risk +%d", groupDigits(mesh.TriangleCount), veryHighTriangleRisk))
		}
	}

	if drawing != nil {
		if n := drawing.SplineCount(); n > 0 {
			risk += splineRisk
			confidence += splineConfidence
			explanations = append(explanations,
				fmt.Sprintf("Splines present (%d): risk +%d, confidence %d", n, splineRisk, splineConfidence))
		}
		// The two extents checks cover disjoint ranges and can never both fire.
		if m := drawing.Extents.MaxPlanarDim(); m > largeExtentsThreshold {
			risk += extentsRisk
			explanations = append(explanations,
				fmt.Sprintf("Very large extents (%.1f): risk +%d; verify units", m, extentsRisk))
		} else if m > 0 && m < smallExtentsThreshold {
			risk += extentsRisk
			explanations = append(explanations,
				fmt.Sprintf("Very small extents (%.4f): risk +%d; verify units", m, extentsRisk))
		}
	}

	return &model.ScoreResult{
		Risk:           clamp(risk),
		Confidence:     clamp(confidence),
		RiskBand:       ScoreToBand(clamp(risk), model.AxisRisk),
		ConfidenceBand: ScoreToBand(clamp(confidence), model.AxisConfidence),
		Explanations:   explanations,
		Version:        Version,
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// groupDigits formats a non-negative integer with comma separators
// (600000 -> "600,000") for explanation text.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
