package mesh

import (
	"fmt"

	"github.com/opencnc/intake/internal/model"
)

// ExtractMetrics decodes raw mesh bytes via the registered decoder for
// kind and measures the combined mesh. Decode failures come back as a
// model.MetricsUnavailableError: a recoverable outcome, not fatal to the
// analysis.
//
// ComponentCount is only computed while TriangleCount is at most
// model.ComponentSplitMaxTriangles; above that the split is skipped for
// latency and the field is explicitly absent.
func ExtractMetrics(data []byte, kind string) (*model.MeshMetrics, error) {
	decoder, ok := DecoderFor(kind)
	if !ok {
		return nil, model.Unavailable("mesh", fmt.Sprintf("no decoder registered for %q", kind), nil)
	}
	m, err := decoder(data)
	if err != nil {
		return nil, model.Unavailable("mesh", "mesh parsing failed", errDecode(normalizeKind(kind), err))
	}

	min, max, ok := m.Bounds()
	if !ok {
		return nil, model.Unavailable("mesh", "mesh contains no geometry (0 vertices)", nil)
	}
	dims := [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}

	metrics := &model.MeshMetrics{
		TriangleCount: len(m.Triangles),
		BBoxMin:       round4(min),
		BBoxMax:       round4(max),
		BBoxDims:      round4(dims),
		IsWatertight:  m.IsWatertight(),
	}
	if metrics.TriangleCount <= model.ComponentSplitMaxTriangles {
		n := m.ComponentCount()
		metrics.ComponentCount = &n
	}
	return metrics, nil
}
