// Package drawing extracts intake metrics from drawing-exchange (DXF)
// documents: model-space entity counts by type, referenced layers, and
// overall extents. The parser reads the DXF tagged-data stream directly;
// it does not build a full document model.
package drawing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TrackedTypes are the entity types counted individually. Everything else
// still contributes to the total entity count.
var TrackedTypes = []string{
	"LINE",
	"ARC",
	"CIRCLE",
	"LWPOLYLINE",
	"POLYLINE",
	"SPLINE",
	"TEXT",
	"MTEXT",
}

var trackedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TrackedTypes))
	for _, t := range TrackedTypes {
		m[t] = struct{}{}
	}
	return m
}()

// tag is one DXF group: an integer group code and its value line.
type tag struct {
	code  int
	value string
}

var errNoEntities = errors.New("dxf: no ENTITIES section")

// readTags splits DXF text into its alternating code/value line pairs.
// A dangling code line or a non-integer code is a structural failure.
func readTags(text string) ([]tag, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// A trailing newline leaves one empty trailing element; ignore it.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("dxf: odd line count %d, tag stream is truncated", len(lines))
	}
	tags := make([]tag, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		code, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("dxf: bad group code on line %d: %w", i+1, err)
		}
		tags = append(tags, tag{code: code, value: strings.TrimSpace(lines[i+1])})
	}
	return tags, nil
}

// document holds the parsed model-space facts the metrics are built from.
type document struct {
	totalEntities int
	countsByType  map[string]int
	layers        map[string]struct{}
	box           bbox
}

// bbox accumulates entity geometry into an overall bounding box.
type bbox struct {
	hasData  bool
	min, max [3]float64
}

func (b *bbox) add(p [3]float64) {
	if !b.hasData {
		b.min, b.max = p, p
		b.hasData = true
		return
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.min[i] {
			b.min[i] = p[i]
		}
		if p[i] > b.max[i] {
			b.max[i] = p[i]
		}
	}
}

// parse walks the tag stream, finds the ENTITIES section, and accumulates
// model-space entity facts. Paper-space entities (group 67 == 1) are
// skipped.
func parse(tags []tag) (*document, error) {
	doc := &document{
		countsByType: make(map[string]int),
		layers:       make(map[string]struct{}),
	}

	i, ok := findEntitiesSection(tags)
	if !ok {
		return nil, errNoEntities
	}

	for i < len(tags) {
		t := tags[i]
		if t.code != 0 {
			// Stray tags between entities; tolerate and move on.
			i++
			continue
		}
		if t.value == "ENDSEC" {
			return doc, nil
		}
		next, ent := parseEntity(tags, i)
		i = next
		if ent.paperSpace {
			continue
		}
		doc.totalEntities++
		if _, tracked := trackedSet[ent.kind]; tracked {
			doc.countsByType[ent.kind]++
		}
		if ent.layer != "" {
			doc.layers[ent.layer] = struct{}{}
		}
		ent.addToBox(&doc.box)
	}
	return nil, errors.New("dxf: ENTITIES section not terminated")
}

func findEntitiesSection(tags []tag) (int, bool) {
	for i := 0; i+1 < len(tags); i++ {
		if tags[i].code == 0 && tags[i].value == "SECTION" &&
			tags[i+1].code == 2 && tags[i+1].value == "ENTITIES" {
			return i + 2, true
		}
	}
	return 0, false
}

// entity is the per-entity state needed for counting and extents.
type entity struct {
	kind       string
	layer      string
	paperSpace bool
	points     [][3]float64
	radius     float64
}

// parseEntity consumes one entity starting at tags[start] (a 0 group) and
// returns the index of the next 0 group along with the collected facts.
// Coordinates arrive as x (10/11), y (20/21), z (30/31) groups; the x
// group opens a new point and the y/z groups fill in the most recent one,
// which also handles LWPOLYLINE's repeated 10/20 pairs.
func parseEntity(tags []tag, start int) (int, entity) {
	ent := entity{kind: tags[start].value}
	i := start + 1
	for i < len(tags) && tags[i].code != 0 {
		t := tags[i]
		switch t.code {
		case 8:
			ent.layer = t.value
		case 67:
			ent.paperSpace = t.value == "1"
		case 10, 11:
			if x, err := strconv.ParseFloat(t.value, 64); err == nil {
				ent.points = append(ent.points, [3]float64{x, 0, 0})
			}
		case 20, 21:
			if y, err := strconv.ParseFloat(t.value, 64); err == nil && len(ent.points) > 0 {
				ent.points[len(ent.points)-1][1] = y
			}
		case 30, 31:
			if z, err := strconv.ParseFloat(t.value, 64); err == nil && len(ent.points) > 0 {
				ent.points[len(ent.points)-1][2] = z
			}
		case 40:
			if r, err := strconv.ParseFloat(t.value, 64); err == nil {
				ent.radius = r
			}
		}
		i++
	}
	return i, ent
}

// addToBox folds the entity's geometry into the overall extents. Circles
// and arcs expand their center by the radius; arcs use the full circle
// extent, which slightly over-measures partial arcs but keeps the
// verify-units checks conservative.
func (e *entity) addToBox(b *bbox) {
	circular := (e.kind == "CIRCLE" || e.kind == "ARC") && e.radius > 0 && len(e.points) > 0
	if circular {
		c := e.points[0]
		b.add([3]float64{c[0] - e.radius, c[1] - e.radius, c[2]})
		b.add([3]float64{c[0] + e.radius, c[1] + e.radius, c[2]})
		return
	}
	for _, p := range e.points {
		b.add(p)
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
