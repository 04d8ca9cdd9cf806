package geometry

import (
	"fmt"

	"meshgen/internal/vec"
)

// Triangle is an ordered triple of vertices. The winding order (A, B, C)
// determines the direction of the facet normal via the right-hand rule.
type Triangle struct {
	A, B, C vec.Vector3
}

// Mesh is an ordered sequence of triangles. Order is preserved all the way
// into the output file.
type Mesh []Triangle

// Normal returns the unit normal of the triangle, computed as
// (A−B) × (B−C) normalized. The operand order is fixed; changing it flips
// the normal and breaks winding compatibility with existing output.
// Returns an error for degenerate triangles (zero-length or parallel edges).
func (t Triangle) Normal() (vec.Vector3, error) {
	edge1 := t.A.Sub(t.B)
	edge2 := t.B.Sub(t.C)
	n, err := edge1.Cross(edge2).Normalized()
	if err != nil {
		return vec.Vector3{}, fmt.Errorf("geometry: degenerate triangle %+v: %w", t, err)
	}
	return n, nil
}

// Area returns the surface area of the triangle. Degenerate triangles have
// area zero.
func (t Triangle) Area() float32 {
	edge1 := t.A.Sub(t.B)
	edge2 := t.B.Sub(t.C)
	return edge1.Cross(edge2).Length() * 0.5
}
