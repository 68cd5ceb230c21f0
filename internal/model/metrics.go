package model

// ComponentSplitMaxTriangles is the cutoff above which the mesh extractor
// skips the connected-component split. Above this size the split is a
// latency problem, so ComponentCount is reported as absent rather than
// computed. Absence is policy, not an error.
const ComponentSplitMaxTriangles = 1_000_000

// MeshMetrics are the measurements extracted from a triangulated mesh file
// (STL, OBJ). All submeshes in the file are flattened into one combined
// mesh before measuring.
type MeshMetrics struct {
	// TriangleCount is the total triangle count of the combined mesh.
	TriangleCount int `json:"triangle_count"`

	// Axis-aligned bounding box corners and size, each component rounded
	// to 4 decimal places.
	BBoxMin  [3]float64 `json:"bbox_min"`
	BBoxMax  [3]float64 `json:"bbox_max"`
	BBoxDims [3]float64 `json:"bbox_dims"`

	// IsWatertight reports whether the combined mesh forms one or more
	// fully closed manifolds (every edge shared by exactly two triangles).
	IsWatertight bool `json:"is_watertight"`

	// ComponentCount is the number of disconnected submeshes. nil means the
	// split was skipped because TriangleCount exceeded
	// ComponentSplitMaxTriangles; nil is distinct from zero.
	ComponentCount *int `json:"component_count"`
}

// DrawingExtents is the overall bounding box of a 2D drawing document.
// A zero Z size is the 2D-drawing convention for "no Z dimension" and is
// carried internally but omitted from display.
type DrawingExtents struct {
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
	Size [3]float64 `json:"size"`
}

// HasZ reports whether the extents carry a real Z dimension.
func (e *DrawingExtents) HasZ() bool {
	return e != nil && e.Size[2] != 0
}

// MaxPlanarDim returns the larger of the X and Y sizes. Scoring uses this
// for the verify-units checks.
func (e *DrawingExtents) MaxPlanarDim() float64 {
	if e == nil {
		return 0
	}
	if e.Size[0] > e.Size[1] {
		return e.Size[0]
	}
	return e.Size[1]
}

// DrawingMetrics are the measurements extracted from a drawing-exchange
// document's model space.
type DrawingMetrics struct {
	// TotalEntities counts every model-space entity, tracked type or not.
	TotalEntities int `json:"total_entities"`

	// CountsByType maps tracked entity-type names (LINE, ARC, CIRCLE,
	// LWPOLYLINE, POLYLINE, SPLINE, TEXT, MTEXT) to their counts. Types
	// that never occur are omitted.
	CountsByType map[string]int `json:"counts_by_type"`

	// LayerCount is the number of distinct layers referenced by entities.
	LayerCount int `json:"layer_count"`

	// Extents is nil when the document contains no measurable geometry.
	Extents *DrawingExtents `json:"extents,omitempty"`
}

// SplineCount returns the number of SPLINE entities (0 when none or when
// the metrics are nil).
func (m *DrawingMetrics) SplineCount() int {
	if m == nil {
		return 0
	}
	return m.CountsByType["SPLINE"]
}
