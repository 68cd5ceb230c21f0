package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
)

// cubeVertices are the corners of an axis-aligned unit cube at the origin.
var cubeVertices = [8][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeFaces triangulates the cube into a closed (watertight) surface.
var cubeFaces = [12][3]int{
	{0, 2, 1}, {0, 3, 2}, // bottom
	{4, 5, 6}, {4, 6, 7}, // top
	{0, 1, 5}, {0, 5, 4}, // front
	{2, 3, 7}, {2, 7, 6}, // back
	{0, 4, 7}, {0, 7, 3}, // left
	{1, 2, 6}, {1, 6, 5}, // right
}

// BinarySTLCube returns a valid binary STL of a watertight unit cube,
// optionally translated by offset. 12 triangles, one component.
func BinarySTLCube(offset [3]float32) []byte {
	return binarySTL(cubeTriangles(offset))
}

// BinarySTLTwoCubes returns a binary STL containing two disjoint unit
// cubes (24 triangles, two components, still watertight).
func BinarySTLTwoCubes() []byte {
	tris := cubeTriangles([3]float32{0, 0, 0})
	tris = append(tris, cubeTriangles([3]float32{5, 0, 0})...)
	return binarySTL(tris)
}

func cubeTriangles(offset [3]float32) [][3][3]float32 {
	tris := make([][3][3]float32, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		var t [3][3]float32
		for i, vi := range f {
			for c := 0; c < 3; c++ {
				t[i][c] = cubeVertices[vi][c] + offset[c]
			}
		}
		tris = append(tris, t)
	}
	return tris
}

func binarySTL(tris [][3][3]float32) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, t := range tris {
		buf.Write(make([]byte, 12)) // normal, ignored by the decoder
		for _, v := range t {
			for _, c := range v {
				binary.Write(&buf, binary.LittleEndian, math.Float32bits(c))
			}
		}
		buf.Write([]byte{0, 0})
	}
	return buf.Bytes()
}

// ASCIISTLTriangle returns a minimal ASCII STL with a single open triangle
// (not watertight).
func ASCIISTLTriangle() []byte {
	return []byte(`solid tri
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
endsolid tri
`)
}

// OBJQuad returns an OBJ with one quad face (two triangles after fan
// triangulation, open surface).
func OBJQuad() []byte {
	return []byte(`# flat quad
v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
f 1 2 3 4
`)
}

// DXFEntity is one entity for BuildDXF: the type name followed by its
// group code/value pairs in order.
type DXFEntity struct {
	Type string
	Tags [][2]string
}

// BuildDXF assembles a minimal DXF document with the given model-space
// entities, terminated by ENDSEC and EOF.
func BuildDXF(entities ...DXFEntity) []byte {
	var b strings.Builder
	pair := func(code, value string) {
		b.WriteString(code)
		b.WriteString("\n")
		b.WriteString(value)
		b.WriteString("\n")
	}
	pair("0", "SECTION")
	pair("2", "ENTITIES")
	for _, e := range entities {
		pair("0", e.Type)
		for _, t := range e.Tags {
			pair(t[0], t[1])
		}
	}
	pair("0", "ENDSEC")
	pair("0", "EOF")
	return []byte(b.String())
}

// DXFLine builds a LINE entity on a layer.
func DXFLine(layer string, x1, y1, x2, y2 string) DXFEntity {
	return DXFEntity{Type: "LINE", Tags: [][2]string{
		{"8", layer},
		{"10", x1}, {"20", y1},
		{"11", x2}, {"21", y2},
	}}
}

// DXFSpline builds a SPLINE entity with two control points.
func DXFSpline(layer string) DXFEntity {
	return DXFEntity{Type: "SPLINE", Tags: [][2]string{
		{"8", layer},
		{"10", "0"}, {"20", "0"},
		{"10", "10"}, {"20", "10"},
	}}
}
