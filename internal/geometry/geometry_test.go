package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meshgen/internal/vec"
)

func TestNormalWinding(t *testing.T) {
	// Triangle on the Z=1 plane wound counter-clockwise seen from +Z.
	tri := Triangle{
		A: vec.New(-1, -1, 1),
		B: vec.New(1, -1, 1),
		C: vec.New(1, 1, 1),
	}
	n, err := tri.Normal()
	require.NoError(t, err)
	require.Equal(t, vec.New(0, 0, 1), n)

	// Right-hand rule on (A−B) × (B−C): same vector before normalization.
	cross := tri.A.Sub(tri.B).Cross(tri.B.Sub(tri.C))
	require.Greater(t, cross.Dot(n), float32(0))
}

func TestNormalDegenerate(t *testing.T) {
	// Collinear vertices: zero-length cross product.
	tri := Triangle{
		A: vec.New(0, 0, 0),
		B: vec.New(1, 1, 1),
		C: vec.New(2, 2, 2),
	}
	_, err := tri.Normal()
	require.ErrorIs(t, err, vec.ErrZeroLength)
}

func TestCube(t *testing.T) {
	m := Cube(5)
	require.Len(t, m, 12)

	for i, tri := range m {
		n, err := tri.Normal()
		require.NoError(t, err, "triangle %d", i)
		require.InDelta(t, 1.0, float64(n.Length()), 1e-6, "triangle %d", i)

		// The cube is centered at the origin, so an outward normal points
		// away from the origin: positive dot with the face centroid.
		centroid := tri.A.Add(tri.B).Add(tri.C).MulScalar(1.0 / 3.0)
		require.Greater(t, n.Dot(centroid), float32(0), "triangle %d normal points inward", i)

		// Every coordinate lies on the ±5 lattice.
		for _, v := range [3]vec.Vector3{tri.A, tri.B, tri.C} {
			for _, c := range [3]float32{v.X, v.Y, v.Z} {
				require.Contains(t, []float32{-5, 5}, c)
			}
		}
	}
}

func TestCubeOrderIsStable(t *testing.T) {
	a := Cube(5)
	b := Cube(5)
	require.Equal(t, a, b)

	// First triangle of the reference table, scaled by 5.
	require.Equal(t, Triangle{
		A: vec.New(-5, -5, -5),
		B: vec.New(-5, -5, 5),
		C: vec.New(-5, 5, 5),
	}, a[0])
}

func TestQuadAndMirror(t *testing.T) {
	q := Quad(2)
	require.Len(t, q, 2)
	for _, tri := range q {
		n, err := tri.Normal()
		require.NoError(t, err)
		require.Equal(t, vec.New(0, 0, 1), n)
	}

	back := MirrorZ(q)
	require.Len(t, back, 2)
	for _, tri := range back {
		n, err := tri.Normal()
		require.NoError(t, err)
		require.Equal(t, vec.New(0, 0, -1), n)
	}
}

func TestBoundsAndArea(t *testing.T) {
	m := Cube(5)
	b := Bounds(m)
	require.Equal(t, vec.New(-5, -5, -5), b.Min)
	require.Equal(t, vec.New(5, 5, 5), b.Max)
	require.Equal(t, vec.New(10, 10, 10), b.Size())

	// Six faces of a 10×10 cube.
	require.InDelta(t, 600.0, float64(SurfaceArea(m)), 1e-3)

	require.Equal(t, Box{}, Bounds(nil))
}
