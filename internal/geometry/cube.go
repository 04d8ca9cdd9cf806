package geometry

import "meshgen/internal/vec"

// cubeVertices is the fixed triangle table for a cube spanning {−1,+1} on
// each axis, two triangles per face, wound so every normal faces outward.
// The face order is part of the output contract: triangles are emitted in
// exactly this order.
var cubeVertices = [12][3]vec.Vector3{
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}},
	{{X: 1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}},
	{{X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}},
	{{X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}},
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}},
	{{X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}},
	{{X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}},
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}},
	{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}},
	{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
}

// Cube returns the 12-triangle cube mesh scaled uniformly by scale.
// The result is a fresh slice; callers may not share backing storage with
// the fixed table.
func Cube(scale float32) Mesh {
	m := make(Mesh, 0, len(cubeVertices))
	for _, t := range cubeVertices {
		m = append(m, Triangle{
			A: t[0].MulScalar(scale),
			B: t[1].MulScalar(scale),
			C: t[2].MulScalar(scale),
		})
	}
	return m
}

// Quad returns a two-triangle square plate on the Z=+scale plane, wound so
// the normal points toward +Z.
func Quad(scale float32) Mesh {
	a := vec.New(-scale, -scale, scale)
	b := vec.New(scale, -scale, scale)
	c := vec.New(scale, scale, scale)
	d := vec.New(-scale, scale, scale)
	return Mesh{
		{A: a, B: b, C: c},
		{A: c, B: d, C: a},
	}
}

// MirrorZ returns a copy of m mirrored through the Z=0 plane. The first two
// vertices of each triangle are swapped so winding order (and therefore
// outward normal orientation) is preserved under the reflection.
func MirrorZ(m Mesh) Mesh {
	out := make(Mesh, 0, len(m))
	for _, t := range m {
		out = append(out, Triangle{
			A: vec.New(t.B.X, t.B.Y, -t.B.Z),
			B: vec.New(t.A.X, t.A.Y, -t.A.Z),
			C: vec.New(t.C.X, t.C.Y, -t.C.Z),
		})
	}
	return out
}
