// Package triage composes the two-sentence intake summary a shop can paste
// into a quote thread. Each sentence is assembled as an ordered clause
// list and terminated exactly once, so the two-sentence shape holds no
// matter how many optional clauses fold in.
package triage

import (
	"fmt"
	"strings"

	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/scoring"
)

// unknownMaterialClause is folded into the next-ask sentence when the
// material selection is Other / Unknown.
const unknownMaterialClause = "material, heat treat condition, and any coatings/special processes"

// Build composes the triage summary for one analysis. The contextual risk
// label always comes from the score's risk band (itself derived through
// scoring.ScoreToBand); the baseline label is the band of the geometry
// class's baseline risk. Mesh and drawing metrics contribute only the
// cleanup flags and may be nil.
func Build(gc model.GeometryClass, score *model.ScoreResult, mat model.MaterialContext,
	mesh *model.MeshMetrics, drawing *model.DrawingMetrics) model.TriageSummary {

	baseRisk, _ := scoring.Baseline(gc)
	baseLabel := strings.ToLower(scoring.ScoreToBand(baseRisk, model.AxisRisk).Label)
	ctxLabel := strings.ToLower(score.RiskBand.Label)

	return model.TriageSummary{
		SentenceOne: riskSentence(gc, mat, baseLabel, ctxLabel, cleanupFlags(mesh, drawing)),
		SentenceTwo: nextAskSentence(gc, mat),
	}
}

// riskSentence is sentence 1: material, geometry class, baseline vs
// context-adjusted risk band, and any cleanup flags.
func riskSentence(gc model.GeometryClass, mat model.MaterialContext, baseLabel, ctxLabel string, flags []string) string {
	var head string
	if baseLabel == ctxLabel {
		head = fmt.Sprintf("Material: %s — %s geometry with %s quote risk", mat.Label, gc, baseLabel)
	} else {
		head = fmt.Sprintf("Material: %s — %s geometry with %s baseline risk, adjusted to %s for CNC machining intake",
			mat.Label, gc, baseLabel, ctxLabel)
	}
	if len(flags) > 0 {
		head += " — " + strings.Join(flags, "; ")
	}
	return head + "."
}

// cleanupFlags lists the geometry issues worth calling out, in the fixed
// order: watertightness, disconnected bodies, splines.
func cleanupFlags(mesh *model.MeshMetrics, drawing *model.DrawingMetrics) []string {
	var flags []string
	if mesh != nil {
		if !mesh.IsWatertight {
			flags = append(flags, "mesh is not watertight")
		}
		if cc := mesh.ComponentCount; cc != nil && *cc > 1 {
			flags = append(flags, fmt.Sprintf("%d disconnected components detected", *cc))
		}
	}
	if drawing != nil && drawing.SplineCount() > 0 {
		flags = append(flags, "splines present that may need conversion for CAM")
	}
	return flags
}

// nextAskSentence is sentence 2: what the shop should request from the
// customer for this geometry class. The unknown-material confirmation
// folds into the same sentence, never a third one.
func nextAskSentence(gc model.GeometryClass, mat model.MaterialContext) string {
	switch gc {
	case model.ClassMesh:
		ask := "Confirm units (mm vs in) and request a STEP or native CAD file if available"
		if mat.Unknown {
			ask += "; also confirm " + unknownMaterialClause
		}
		return ask + "."
	case model.ClassDrawing2D:
		ask := "Confirm dimensions, tolerances, and material thickness are specified in the drawing"
		if mat.Unknown {
			ask += "; also confirm " + unknownMaterialClause
		}
		return ask + "."
	default:
		if mat.Unknown {
			return "Confirm tolerances, surface finish requirements, " + unknownMaterialClause + "."
		}
		return "Confirm tolerances and surface finish requirements."
	}
}
