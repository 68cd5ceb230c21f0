// Package format owns the read-only CAD format knowledge table. It maps
// file extensions (including aliases like .stp -> .step) to immutable
// FormatDescriptor entries and is the only component allowed to decide a
// file's geometry class.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencnc/intake/internal/model"
)

// aliases maps non-canonical extension spellings to their canonical table
// key. True aliases only (same format, different spelling).
var aliases = map[string]string{
	".stp": ".step",
	".igs": ".iges",
}

// knowledge is the canonical extension -> descriptor table. Descriptors are
// returned by value from Resolve so callers cannot mutate the table.
var knowledge = map[string]model.FormatDescriptor{
	".step": {
		DisplayName:   "Neutral Solid (STEP)",
		GeometryClass: model.ClassBRep,
		AuthoringTools: []string{
			"Any major CAD system",
		},
		CommonUseCases: []string{
			"Supplier deliverables",
			"Design handoff",
			"Quoting and tooling",
		},
		Survives:               []string{"Exact B-rep", "Assemblies", "Names/attributes"},
		Lost:                   []string{"Parametric history", "Sketch constraints"},
		QuoteConfidence:        "High",
		QuoteRiskBaseline:      "Low",
		AutomationFriendliness: "High",
		Notes: []string{
			"ISO 10303.",
			"Preferred for quoting and tooling.",
		},
	},
	".iges": {
		DisplayName:   "Neutral Surface/Solid (IGES)",
		GeometryClass: model.ClassSurface,
		AuthoringTools: []string{
			"Legacy CAD systems",
			"Aerospace supply chain tools",
		},
		CommonUseCases:         []string{"2D/3D mix", "Legacy exchange", "Surface-heavy data"},
		Survives:               []string{"Surfaces and solids", "Basic topology"},
		Lost:                   []string{"Tight tolerances", "Parametric history", "Some assembly context"},
		QuoteConfidence:        "Medium",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "Medium",
		Notes: []string{
			"Older standard; STEP preferred when possible.",
			"Solids are possible but surface-only exports are common.",
			"Geometry healing may be required before machining.",
		},
	},
	".stl": {
		DisplayName:   "Mesh (STL)",
		GeometryClass: model.ClassMesh,
		AuthoringTools: []string{
			"Any CAD with STL export",
			"Scan/reverse-engineering tools",
		},
		CommonUseCases: []string{
			"Scan data",
			"Quick visualization exports",
			"Reverse-engineered geometry",
		},
		Survives:               []string{"Triangulated surface", "Envelope shape"},
		Lost:                   []string{"Exact geometry", "Edges/faces", "Units sometimes ambiguous"},
		QuoteConfidence:        "Low",
		QuoteRiskBaseline:      "High",
		AutomationFriendliness: "Medium",
		Notes: []string{
			"Check units (mm vs in).",
			"Not suitable for CNC machining quote alone.",
			"Lacks exact B-rep geometry; reverse engineering may be needed.",
		},
	},
	".obj": {
		DisplayName:   "Mesh (OBJ)",
		GeometryClass: model.ClassMesh,
		AuthoringTools: []string{
			"Blender",
			"Maya",
			"Scan pipelines",
			"Game engines",
		},
		CommonUseCases:         []string{"Visualization", "Games", "Appearance models"},
		Survives:               []string{"Triangulated mesh", "UVs / materials"},
		Lost:                   []string{"Precise CAD geometry", "Units"},
		QuoteConfidence:        "Low",
		QuoteRiskBaseline:      "High",
		AutomationFriendliness: "Medium",
		Notes: []string{
			"Often used for appearance, not engineering.",
		},
	},
	".sldprt": {
		DisplayName:            "SolidWorks Part",
		GeometryClass:          model.ClassParametric,
		AuthoringTools:         []string{"SolidWorks"},
		CommonUseCases:         []string{"Supplier parts", "Design in-house", "Detailing"},
		Survives:               []string{"Full feature tree", "Parameters", "Materials"},
		Lost:                   []string{"Nothing when opened in SolidWorks"},
		QuoteConfidence:        "High",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "High",
		Notes: []string{
			"Risk depends on access to SolidWorks; file cannot be opened without it.",
			"Export to STEP is recommended for CNC quoting workflows.",
		},
	},
	".sldasm": {
		DisplayName:            "SolidWorks Assembly",
		GeometryClass:          model.ClassParametric,
		AuthoringTools:         []string{"SolidWorks"},
		CommonUseCases:         []string{"Assembly design", "BOM", "Large assemblies"},
		Survives:               []string{"Structure", "Mates", "Parts"},
		Lost:                   []string{"Nothing when opened in SolidWorks"},
		QuoteConfidence:        "High",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "High",
		Notes: []string{
			"Risk depends on access to SolidWorks; file cannot be opened without it.",
			"Export to STEP is recommended for CNC quoting workflows.",
		},
	},
	".prt": {
		DisplayName:    "NX / Creo Native",
		GeometryClass:  model.ClassParametric,
		AuthoringTools: []string{"Siemens NX", "PTC Creo"},
		CommonUseCases: []string{
			"Manufacturing CAD",
			"High-end design",
			"Enterprise parts",
		},
		Survives:               []string{"Full model in native system"},
		Lost:                   []string{"Cross-platform; need same CAD to open"},
		QuoteConfidence:        "Medium",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "High",
		Notes: []string{
			"Extension shared by NX and Creo; requires the correct native CAD to open reliably.",
			"Export to STEP when the recipient's CAD system is unknown.",
		},
	},
	".catpart": {
		DisplayName:            "CATIA Part",
		GeometryClass:          model.ClassParametric,
		AuthoringTools:         []string{"CATIA V5", "CATIA V6 (3DEXPERIENCE)"},
		CommonUseCases:         []string{"Aerospace", "Automotive", "Large assembly design"},
		Survives:               []string{"Full part in CATIA"},
		Lost:                   []string{"Cross-platform"},
		QuoteConfidence:        "High",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "Medium",
		Notes: []string{
			"Risk depends on access to CATIA; file cannot be opened without it.",
			"Export to STEP is recommended for CNC quoting workflows.",
		},
	},
	".dwg": {
		DisplayName:            "AutoCAD Native (2D/3D)",
		GeometryClass:          model.ClassDrawing2D,
		AuthoringTools:         []string{"AutoCAD", "DraftSight", "BricsCAD"},
		CommonUseCases:         []string{"Drafting", "Legacy drawings", "2D documentation"},
		Survives:               []string{"Drafting entities", "Blocks", "Layouts"},
		Lost:                   []string{"Parametric 3D in some workflows"},
		QuoteConfidence:        "Medium",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "High",
		Notes: []string{
			"Often used for 2D drawings; 3D possible.",
		},
	},
	".dxf": {
		DisplayName:   "Drawing Exchange Format (2D)",
		GeometryClass: model.ClassDrawing2D,
		AuthoringTools: []string{
			"AutoCAD",
			"CNC nesting software",
			"CAM software",
		},
		CommonUseCases: []string{
			"CNC profile layouts",
			"Fixture and jig drawings",
			"2D CAM",
			"Drawing exchange",
		},
		Survives:               []string{"Lines, arcs", "Blocks", "Layers"},
		Lost:                   []string{"Proprietary objects", "Full fidelity"},
		QuoteConfidence:        "Medium",
		QuoteRiskBaseline:      "Medium",
		AutomationFriendliness: "High",
		Notes: []string{
			"Good for 2D CAM and CNC profile work.",
		},
	},
}

func init() {
	// The table is static data; fail fast on startup if someone edits it
	// into an inconsistent state.
	if err := validate(); err != nil {
		panic(err)
	}
}

func validate() error {
	for alias, canonical := range aliases {
		if _, ok := knowledge[canonical]; !ok {
			return fmt.Errorf("format: alias %q points at missing canonical entry %q", alias, canonical)
		}
		if _, ok := knowledge[alias]; ok {
			return fmt.Errorf("format: alias %q shadows a canonical entry", alias)
		}
	}
	for ext, d := range knowledge {
		if !d.GeometryClass.Valid() {
			return fmt.Errorf("format: entry %q has unknown geometry class %q", ext, d.GeometryClass)
		}
		if d.DisplayName == "" {
			return fmt.Errorf("format: entry %q has no display name", ext)
		}
	}
	for ext, bn := range bulletNotes {
		d, ok := knowledge[ext]
		if !ok {
			return fmt.Errorf("format: bullet notes for %q have no canonical entry", ext)
		}
		for item := range bn.Survives {
			if !containsItem(d.Survives, item) {
				return fmt.Errorf("format: %q survives note %q matches no survives item", ext, item)
			}
		}
		for item := range bn.Lost {
			if !containsItem(d.Lost, item) {
				return fmt.Errorf("format: %q lost note %q matches no lost item", ext, item)
			}
		}
	}
	return nil
}

func containsItem(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

// Normalize lower-cases an extension, trims whitespace, and ensures a
// leading dot. Normalize("") returns "".
func Normalize(extension string) string {
	ext := strings.ToLower(strings.TrimSpace(extension))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Resolve looks up an extension (case-insensitive, dot optional) in the
// alias table and then the canonical table. The second return value is
// false for unknown formats; unknown is a valid terminal outcome, not an
// error, and means the caller should skip metrics and scoring entirely.
func Resolve(extension string) (*model.FormatDescriptor, bool) {
	ext := Normalize(extension)
	canonical := ext
	if c, ok := aliases[ext]; ok {
		canonical = c
	}
	d, ok := knowledge[canonical]
	if !ok {
		return nil, false
	}
	d.Extension = ext
	d.CanonicalExtension = canonical
	return &d, true
}

// CanonicalExtensions returns the sorted canonical extension list.
func CanonicalExtensions() []string {
	exts := make([]string, 0, len(knowledge))
	for ext := range knowledge {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
