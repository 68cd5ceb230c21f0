package format

import (
	"github.com/opencnc/intake/internal/model"
)

// whatThisIs holds the plain-English field-guide paragraph per canonical
// extension (2-4 sentences each).
var whatThisIs = map[string]string{
	".step": "STEP is an ISO standard exchange format for 3D product data. " +
		"It carries exact boundary-representation (B-rep) geometry: surfaces, " +
		"edges, and topology that CAM and inspection software can use directly. " +
		"For CNC quoting it is the preferred neutral format because it preserves " +
		"design intent without requiring the original CAD system.",
	".iges": "IGES is an older neutral format that can represent both surfaces and " +
		"solids. Many legacy and aerospace systems still export it. " +
		"Quality varies: surface-only exports are common, and geometry may need " +
		"healing before machining. STEP is preferred when the sender can provide it.",
	".stl": "STL is a mesh format: the model is stored as a cloud of triangles with " +
		"no exact curves or edges. It is widely used for 3D printing and quick " +
		"exports. For CNC machining it is problematic because units are often " +
		"ambiguous (mm vs in) and the triangulated surface is not suitable for " +
		"precision toolpaths without conversion or reverse engineering.",
	".obj": "OBJ is a mesh format common in animation and visualization (Blender, " +
		"Maya, game engines). It can carry UVs and materials but rarely carries " +
		"engineering units or precise CAD geometry. For CNC intake it shares " +
		"the same drawbacks as STL: no B-rep, unclear units, and limited use " +
		"for direct machining.",
	".sldprt": "A SolidWorks part file contains the full parametric model: features, " +
		"sketches, and history. It can only be opened in SolidWorks. " +
		"For CNC quoting the risk is access: if the recipient does not have " +
		"SolidWorks, they cannot inspect or re-export the geometry. Exporting to " +
		"STEP is the standard workaround for neutral handoff.",
	".sldasm": "A SolidWorks assembly file references multiple parts and stores mates " +
		"and assembly structure. Like .sldprt it is native to SolidWorks only. " +
		"For intake the same rule applies: without SolidWorks the file cannot " +
		"be opened. Request a STEP export (or individual STEP parts) for " +
		"quoting and CAM.",
	".prt": "The .prt extension is shared by Siemens NX and PTC Creo. The file " +
		"contains a full native part model but is tied to the originating " +
		"system. Opening it requires the correct CAD license (NX or Creo). " +
		"For cross-platform quoting, STEP is the safe choice.",
	".catpart": "A CATIA part file holds the complete part model in CATIA V5 or V6 " +
		"format. It can only be opened in CATIA. Common in aerospace and " +
		"automotive; for CNC quoting, suppliers without CATIA need a STEP " +
		"export to evaluate and program the part.",
	".dwg": "DWG is AutoCAD's native format for 2D and 3D drawing data. It carries " +
		"drafting entities, blocks, and layouts and is widely used for " +
		"drawings and documentation. For CNC, 2D DWGs are often used for " +
		"profile or fixture work; 3D is possible but less common in " +
		"machining workflows.",
	".dxf": "DXF is a 2D (and limited 3D) exchange format built around lines, " +
		"arcs, circles, and polylines. It is the usual output for CNC nesting " +
		"and 2D CAM. Quality depends on how it was exported: splines and " +
		"complex entities may require conversion to arcs or polylines before " +
		"toolpath generation.",
}

// Workflow is the typical manufacturing path for a format, with the most
// common way it goes wrong.
type Workflow struct {
	Flow          string `json:"flow"`
	CommonFailure string `json:"common_failure,omitempty"`
}

var workflows = map[string]Workflow{
	".step": {Flow: "STEP → CAM → machining"},
	".iges": {
		Flow:          "IGES → stitch/repair → solidify → CAM → machining",
		CommonFailure: "Surface gaps that prevent solid creation; healing may take multiple rounds.",
	},
	".stl": {
		Flow:          "STL → remodel or surface fit → CAM → machining",
		CommonFailure: "Ambiguous units (mm vs in) and faceted surfaces too coarse for precision toolpaths.",
	},
	".obj": {
		Flow:          "OBJ → remodel or surface fit → CAM → machining",
		CommonFailure: "No engineering units; visualization-quality mesh rarely meets CNC tolerance needs.",
	},
	".sldprt": {
		Flow:          "SLDPRT → export to STEP → CAM → machining",
		CommonFailure: "Recipient lacks SolidWorks; file cannot be opened or re-exported.",
	},
	".sldasm": {
		Flow:          "SLDASM → export to STEP (per-part) → CAM → machining",
		CommonFailure: "Missing referenced parts or broken assembly mates after export.",
	},
	".prt": {
		Flow:          "PRT → export to STEP → CAM → machining",
		CommonFailure: "Wrong CAD system (NX vs Creo); file may not open at all.",
	},
	".catpart": {
		Flow:          "CATPART → export to STEP → CAM → machining",
		CommonFailure: "No CATIA license; part is inaccessible without it.",
	},
	".dwg": {
		Flow:          "DWG → extract 2D profiles → verify dims/tolerances → 2.5D CAM → machining",
		CommonFailure: "3D data mixed with 2D layouts; unclear which entities define the part.",
	},
	".dxf": {
		Flow:          "DXF → verify units + thickness + tolerances → 2.5D CAM/profile → machining",
		CommonFailure: "Splines that CAM cannot process; entity cleanup required.",
	},
}

// BulletNotes are parenthetical asides attached to individual survives/lost
// bullets, keyed by the exact item string from the descriptor's Survives and
// Lost lists. Items without a note render bare.
type BulletNotes struct {
	Survives map[string]string `json:"survives,omitempty"`
	Lost     map[string]string `json:"lost,omitempty"`
}

var bulletNotes = map[string]BulletNotes{
	".step": {
		Survives: map[string]string{
			"Exact B-rep":      "precise surfaces and topology",
			"Assemblies":       "structure and placement",
			"Names/attributes": "PMI and metadata where present",
		},
		Lost: map[string]string{
			"Parametric history": "feature tree and sketch constraints",
		},
	},
	".iges": {
		Survives: map[string]string{
			"Surfaces and solids": "depending on export",
			"Basic topology":      "may need healing",
		},
		Lost: map[string]string{
			"Tight tolerances":      "often approximated",
			"Parametric history":    "not in IGES",
			"Some assembly context": "structure can be flattened",
		},
	},
	".stl": {
		Survives: map[string]string{
			"Triangulated surface": "triangle mesh only",
			"Envelope shape":       "outer shell",
		},
		Lost: map[string]string{
			"Exact geometry":            "no curves or edges",
			"Edges/faces":               "replaced by facets",
			"Units sometimes ambiguous": "mm vs in not encoded",
		},
	},
	".obj": {
		Survives: map[string]string{
			"Triangulated mesh": "vertices and faces",
			"UVs / materials":   "for visualization",
		},
		Lost: map[string]string{
			"Precise CAD geometry": "no B-rep",
			"Units":                "not standardized",
		},
	},
	".sldprt": {
		Survives: map[string]string{
			"Full feature tree": "in SolidWorks only",
			"Parameters":        "dimensions and relations",
			"Materials":         "in the model",
		},
		Lost: map[string]string{
			"Nothing when opened in SolidWorks": "full fidelity in-house only",
		},
	},
	".sldasm": {
		Survives: map[string]string{
			"Structure": "assembly tree",
			"Mates":     "constraints",
			"Parts":     "references to .sldprt",
		},
		Lost: map[string]string{
			"Nothing when opened in SolidWorks": "cross-platform requires STEP export",
		},
	},
	".prt": {
		Survives: map[string]string{
			"Full model in native system": "in NX or Creo only",
		},
		Lost: map[string]string{
			"Cross-platform; need same CAD to open": "STEP for handoff",
		},
	},
	".catpart": {
		Survives: map[string]string{
			"Full part in CATIA": "in CATIA only",
		},
		Lost: map[string]string{
			"Cross-platform": "STEP for non-CATIA shops",
		},
	},
	".dwg": {
		Survives: map[string]string{
			"Drafting entities": "lines, arcs, text, dimensions",
			"Blocks":            "reusable symbols",
			"Layouts":           "paper space",
		},
		Lost: map[string]string{
			"Parametric 3D in some workflows": "3D can be present but not always portable",
		},
	},
	".dxf": {
		Survives: map[string]string{
			"Lines, arcs": "and circles, polylines",
			"Blocks":      "block definitions",
			"Layers":      "layer names and visibility",
		},
		Lost: map[string]string{
			"Proprietary objects": "custom entities may not translate",
			"Full fidelity":       "export options affect what is written",
		},
	},
}

// BulletNotesFor returns the survives/lost bullet annotations for a
// canonical extension. The maps are copied so callers cannot mutate the
// table.
func BulletNotesFor(canonicalExt string) (BulletNotes, bool) {
	bn, ok := bulletNotes[canonicalExt]
	if !ok {
		return BulletNotes{}, false
	}
	out := BulletNotes{
		Survives: make(map[string]string, len(bn.Survives)),
		Lost:     make(map[string]string, len(bn.Lost)),
	}
	for k, v := range bn.Survives {
		out.Survives[k] = v
	}
	for k, v := range bn.Lost {
		out.Lost[k] = v
	}
	return out, true
}

// WhatThisIs returns the field-guide paragraph for a canonical extension,
// or "" when none exists.
func WhatThisIs(canonicalExt string) string {
	return whatThisIs[canonicalExt]
}

// WorkflowFor returns the typical manufacturing workflow for a canonical
// extension.
func WorkflowFor(canonicalExt string) (Workflow, bool) {
	wf, ok := workflows[canonicalExt]
	return wf, ok
}

// QuotingReality turns the descriptor's coarse confidence/risk/automation
// labels into a short narrative paragraph for the format guide.
func QuotingReality(d *model.FormatDescriptor) string {
	var parts []string
	switch d.QuoteConfidence {
	case "High":
		parts = append(parts, "Quote confidence is high: the format usually carries enough information to estimate and program without guesswork.")
	case "Medium":
		parts = append(parts, "Quote confidence is medium: you can often quote from the file, but missing details (units, tolerances, condition) may require a round of clarification.")
	default:
		parts = append(parts, "Quote confidence is low: the file alone is rarely enough to quote accurately; expect to ask for units, native or STEP geometry, or additional specs.")
	}
	switch d.QuoteRiskBaseline {
	case "High":
		parts = append(parts, "Baseline quote risk is high: rework, miscommunication, or conversion failures are more likely.")
	case "Medium":
		parts = append(parts, "Baseline quote risk is medium; access to the right tools or a neutral export reduces risk.")
	default:
		parts = append(parts, "Baseline quote risk is low for CNC intake.")
	}
	switch d.AutomationFriendliness {
	case "High":
		parts = append(parts, "Automation friendliness is high: the format is well suited to scripted checks and toolpath generation.")
	case "Medium":
		parts = append(parts, "Automation is possible but may require format-specific handling or cleanup.")
	default:
		parts = append(parts, "Automation is limited; manual review or conversion is often needed.")
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// Suitability is a one-line CNC suitability summary derived from geometry
// class and quote confidence.
func Suitability(gc model.GeometryClass, confidence string) string {
	switch {
	case gc == model.ClassBRep && confidence == "High":
		return "Ideal for CNC — exact geometry, reliable quoting"
	case gc == model.ClassBRep:
		return "Good for CNC — exact geometry, verify completeness"
	case gc == model.ClassSurface && (confidence == "High" || confidence == "Medium"):
		return "Usable for CNC — may need healing; STEP preferred"
	case gc == model.ClassSurface:
		return "Risky for CNC — surface gaps common; healing required"
	case gc == model.ClassMesh:
		return "Poor for CNC — no exact geometry; reverse engineering likely needed"
	case gc == model.ClassParametric && confidence == "High":
		return "Excellent in-house — requires native CAD; export to STEP for handoff"
	case gc == model.ClassParametric:
		return "Good if accessible — requires native CAD license to open"
	case gc == model.ClassDrawing2D && (confidence == "High" || confidence == "Medium"):
		return "Good for 2D CNC / profiles — confirm dims and tolerances"
	default:
		return "Usable for 2D work — verify completeness"
	}
}
