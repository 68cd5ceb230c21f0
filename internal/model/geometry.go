package model

// GeometryClass describes the kind of geometry a CAD format carries.
// It is fixed per format and is never inferred from file content; the
// format knowledge table is the single source of truth for the mapping.
type GeometryClass string

const (
	// ClassBRep is exact boundary-representation geometry (e.g. STEP).
	ClassBRep GeometryClass = "B-Rep"

	// ClassSurface is surface or mixed surface/solid geometry (e.g. IGES).
	ClassSurface GeometryClass = "Surface"

	// ClassMesh is triangulated geometry with no exact curves (STL, OBJ).
	ClassMesh GeometryClass = "Mesh"

	// ClassParametric is a native CAD model with full feature history
	// (SolidWorks, NX/Creo, CATIA part files).
	ClassParametric GeometryClass = "Parametric"

	// ClassDrawing2D is drafting-entity data (DWG, DXF).
	ClassDrawing2D GeometryClass = "2D Drawing"
)

// Classes lists every valid GeometryClass. Validation code (score baselines,
// format table checks) iterates this slice so new classes cannot be added
// without a baseline.
var Classes = []GeometryClass{
	ClassBRep,
	ClassSurface,
	ClassMesh,
	ClassParametric,
	ClassDrawing2D,
}

// Valid reports whether gc is one of the known geometry classes.
func (gc GeometryClass) Valid() bool {
	for _, c := range Classes {
		if gc == c {
			return true
		}
	}
	return false
}
