package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary STL layout: 80-byte header, uint32 triangle count, then 50 bytes
// per triangle (normal + 3 vertices as float32 triples + 2 attribute bytes).
const (
	binarySTLHeaderLen   = 84
	binarySTLTriangleLen = 50
)

var errEmptySTL = errors.New("stl: no triangles")

// DecodeSTL decodes binary or ASCII STL. The "solid" prefix is only a hint
// (some binary exporters write it into the header), so an ASCII attempt
// that fails falls back to binary decoding.
func DecodeSTL(data []byte) (*Mesh, error) {
	if looksASCIISTL(data) {
		m, err := decodeASCIISTL(data)
		if err == nil {
			return m, nil
		}
		if bm, berr := decodeBinarySTL(data); berr == nil {
			return bm, nil
		}
		return nil, err
	}
	return decodeBinarySTL(data)
}

func looksASCIISTL(data []byte) bool {
	head := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(head, []byte("solid")) {
		return false
	}
	// A real ASCII body mentions "facet" early; a binary file with a
	// "solid" header almost never does.
	probe := head
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.Contains(probe, []byte("facet"))
}

func decodeBinarySTL(data []byte) (*Mesh, error) {
	if len(data) < binarySTLHeaderLen {
		return nil, fmt.Errorf("stl: %d bytes is too short for a binary STL", len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	need := binarySTLHeaderLen + int64(count)*binarySTLTriangleLen
	if int64(len(data)) < need {
		return nil, fmt.Errorf("stl: header claims %d triangles but file holds %d bytes", count, len(data))
	}
	if count == 0 {
		return nil, errEmptySTL
	}

	m := &Mesh{
		Vertices:  make([][3]float64, 0, count*3),
		Triangles: make([][3]int, 0, count),
	}
	off := binarySTLHeaderLen
	for i := uint32(0); i < count; i++ {
		// Skip the 12-byte normal; it is derivable from the vertices.
		rec := data[off+12 : off+binarySTLTriangleLen]
		base := len(m.Vertices)
		for v := 0; v < 3; v++ {
			var p [3]float64
			for c := 0; c < 3; c++ {
				bits := binary.LittleEndian.Uint32(rec[v*12+c*4:])
				f := float64(math.Float32frombits(bits))
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, fmt.Errorf("stl: non-finite coordinate in triangle %d", i)
				}
				p[c] = f
			}
			m.Vertices = append(m.Vertices, p)
		}
		m.Triangles = append(m.Triangles, [3]int{base, base + 1, base + 2})
		off += binarySTLTriangleLen
	}
	return m, nil
}

func decodeASCIISTL(data []byte) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var facet [][3]float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("stl: malformed vertex on line %d", line)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("stl: bad coordinate on line %d: %w", line, err)
				}
				p[i] = f
			}
			facet = append(facet, p)
		case "endfacet":
			if len(facet) != 3 {
				return nil, fmt.Errorf("stl: facet ending on line %d has %d vertices", line, len(facet))
			}
			base := len(m.Vertices)
			m.Vertices = append(m.Vertices, facet...)
			m.Triangles = append(m.Triangles, [3]int{base, base + 1, base + 2})
			facet = facet[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stl: reading ascii body: %w", err)
	}
	if len(facet) != 0 {
		return nil, errors.New("stl: unterminated facet at end of file")
	}
	if len(m.Triangles) == 0 {
		return nil, errEmptySTL
	}
	return m, nil
}
