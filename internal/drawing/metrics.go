package drawing

import (
	"github.com/opencnc/intake/internal/model"
)

// ExtractMetrics decodes raw drawing bytes (UTF-8, Latin-1 fallback),
// parses the DXF tag stream, and measures the model space. Structural
// parse failures come back as a model.MetricsUnavailableError so the
// caller can fall through to baseline-only scoring.
func ExtractMetrics(data []byte) (*model.DrawingMetrics, error) {
	if len(data) == 0 {
		return nil, model.Unavailable("drawing", "empty file", nil)
	}
	tags, err := readTags(decodeText(data))
	if err != nil {
		return nil, model.Unavailable("drawing", "DXF parsing failed", err)
	}
	doc, err := parse(tags)
	if err != nil {
		return nil, model.Unavailable("drawing", "DXF parsing failed", err)
	}

	metrics := &model.DrawingMetrics{
		TotalEntities: doc.totalEntities,
		CountsByType:  make(map[string]int, len(doc.countsByType)),
		LayerCount:    len(doc.layers),
	}
	for _, t := range TrackedTypes {
		if n, ok := doc.countsByType[t]; ok {
			metrics.CountsByType[t] = n
		}
	}
	if doc.box.hasData {
		ext := &model.DrawingExtents{}
		for i := 0; i < 3; i++ {
			ext.Min[i] = round4(doc.box.min[i])
			ext.Max[i] = round4(doc.box.max[i])
			ext.Size[i] = round4(doc.box.max[i] - doc.box.min[i])
		}
		metrics.Extents = ext
	}
	return metrics, nil
}
