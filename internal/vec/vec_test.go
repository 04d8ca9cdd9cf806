package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	require.Equal(t, New(5, -3, 9), a.Add(b))
	require.Equal(t, New(-3, 7, -3), a.Sub(b))
	require.Equal(t, New(2, 4, 6), a.MulScalar(2))
	require.Equal(t, float32(1*4+2*-5+3*6), a.Dot(b))
}

func TestCross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := New(0, 0, 1)

	// Right-handed basis: x × y = z, y × z = x, z × x = y.
	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, y, z.Cross(x))

	// Anti-commutative.
	require.Equal(t, z.MulScalar(-1), y.Cross(x))

	// Parallel vectors have a zero cross product.
	require.Equal(t, Vector3{}, x.Cross(x.MulScalar(3)))
}

func TestLength(t *testing.T) {
	require.Equal(t, float32(5), New(3, 4, 0).Length())
	require.Equal(t, float32(25), New(3, 4, 0).LengthSquared())
	require.Equal(t, float32(0), Vector3{}.Length())
}

func TestNormalized(t *testing.T) {
	n, err := New(0, 0, 10).Normalized()
	require.NoError(t, err)
	require.Equal(t, New(0, 0, 1), n)

	n, err = New(2, -2, 1).Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1.0, float64(n.Length()), 1e-6)

	_, err = Vector3{}.Normalized()
	require.ErrorIs(t, err, ErrZeroLength)
}

func TestMinMax(t *testing.T) {
	a := New(1, 5, -3)
	b := New(2, -5, 0)
	require.Equal(t, New(1, -5, -3), a.Min(b))
	require.Equal(t, New(2, 5, 0), a.Max(b))
}
