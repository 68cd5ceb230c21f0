package mesh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DecodeOBJ decodes a Wavefront OBJ file. Only geometry is read: "v"
// vertex positions and "f" faces. Faces with more than three corners are
// fan-triangulated; texture/normal references (a/b/c forms) and negative
// (relative) indices are handled. Groups and objects are not split out;
// the result is the flattened combined mesh.
func DecodeOBJ(data []byte) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: malformed vertex on line %d", line)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj: bad coordinate on line %d: %w", line, err)
				}
				p[i] = f
			}
			m.Vertices = append(m.Vertices, p)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: face on line %d has fewer than 3 corners", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := resolveOBJIndex(ref, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Triangles = append(m.Triangles, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: reading body: %w", err)
	}
	if len(m.Triangles) == 0 {
		return nil, errors.New("obj: no faces")
	}
	return m, nil
}

// resolveOBJIndex parses a face corner reference ("7", "7/1", "7//3",
// "-1") into a 0-based vertex index. OBJ indices are 1-based; negative
// indices count back from the most recent vertex.
func resolveOBJIndex(ref string, vertexCount int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", ref, err)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n = vertexCount + n
	default:
		return 0, errors.New("face index 0 is not valid")
	}
	if n < 0 || n >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range (have %d vertices)", ref, vertexCount)
	}
	return n, nil
}
