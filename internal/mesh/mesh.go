// Package mesh decodes triangulated mesh files (STL, OBJ) and measures
// them for intake scoring. Decoders are registered per file kind; all
// submeshes in a file are flattened into one combined Mesh before
// measurement.
package mesh

import "math"

// Mesh is a triangle soup: vertex positions plus index triples. Vertices
// may be duplicated (binary STL duplicates every corner); connectivity
// analysis welds them first.
type Mesh struct {
	Vertices  [][3]float64
	Triangles [][3]int
}

// Append merges other into m, offsetting triangle indices. Used to flatten
// multi-body files into one combined mesh.
func (m *Mesh) Append(other *Mesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, [3]int{t[0] + offset, t[1] + offset, t[2] + offset})
	}
}

// weld maps every vertex to a canonical id shared by all vertices at the
// same exact coordinates. Exact comparison is intentional: STL writers
// emit bit-identical coordinates for shared corners, and merging nearly
// equal vertices would invent connectivity the file does not have.
func (m *Mesh) weld() []int {
	ids := make([]int, len(m.Vertices))
	seen := make(map[[3]float64]int, len(m.Vertices))
	next := 0
	for i, v := range m.Vertices {
		if id, ok := seen[v]; ok {
			ids[i] = id
			continue
		}
		seen[v] = next
		ids[i] = next
		next++
	}
	return ids
}

// edgeKey is an undirected edge between two welded vertex ids.
type edgeKey struct{ a, b int }

func edge(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// IsWatertight reports whether the mesh forms one or more fully closed
// manifolds: every undirected edge must be shared by exactly two triangles.
// An empty mesh is not watertight.
func (m *Mesh) IsWatertight() bool {
	if len(m.Triangles) == 0 {
		return false
	}
	ids := m.weld()
	counts := make(map[edgeKey]int, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		a, b, c := ids[t[0]], ids[t[1]], ids[t[2]]
		if a == b || b == c || a == c {
			// Degenerate triangle: the surface cannot be manifold here.
			return false
		}
		counts[edge(a, b)]++
		counts[edge(b, c)]++
		counts[edge(a, c)]++
	}
	for _, n := range counts {
		if n != 2 {
			return false
		}
	}
	return true
}

// ComponentCount returns the number of connected submeshes, allowing
// non-watertight splits: two triangles belong to the same component when
// they share a welded vertex.
func (m *Mesh) ComponentCount() int {
	ids := m.weld()
	parent := make([]int, len(m.Vertices))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, t := range m.Triangles {
		union(ids[t[0]], ids[t[1]])
		union(ids[t[1]], ids[t[2]])
	}
	roots := make(map[int]struct{})
	for _, t := range m.Triangles {
		for _, vi := range t {
			roots[find(ids[vi])] = struct{}{}
		}
	}
	return len(roots)
}

// Bounds returns the axis-aligned bounding box corners. ok is false for a
// mesh with no vertices.
func (m *Mesh) Bounds() (min, max [3]float64, ok bool) {
	if len(m.Vertices) == 0 {
		return min, max, false
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max, true
}

// round4 rounds every component to 4 decimal places, the precision carried
// by mesh metrics.
func round4(v [3]float64) [3]float64 {
	for i := 0; i < 3; i++ {
		v[i] = math.Round(v[i]*10000) / 10000
	}
	return v
}
