package vec

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrZeroLength is returned when normalizing a zero-length vector.
// The caller decides whether that is fatal (it is for degenerate triangles).
var ErrZeroLength = errors.New("vec: cannot normalize zero-length vector")

// Vector3 is a 3D vector or point with float32 components, matching the
// 4-byte float layout of the STL record. Value semantics; no mutation.
type Vector3 struct {
	X, Y, Z float32
}

// New returns a Vector3 with the given components.
func New(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v − o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o (right-handed).
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared Euclidean norm of v.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. Returns ErrZeroLength when the
// length is exactly zero instead of dividing by zero.
func (v Vector3) Normalized() (Vector3, error) {
	l := v.Length()
	if l == 0 {
		return Vector3{}, ErrZeroLength
	}
	return v.MulScalar(1 / l), nil
}

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{X: math32.Min(v.X, o.X), Y: math32.Min(v.Y, o.Y), Z: math32.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{X: math32.Max(v.X, o.X), Y: math32.Max(v.Y, o.Y), Z: math32.Max(v.Z, o.Z)}
}
