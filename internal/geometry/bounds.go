package geometry

import "meshgen/internal/vec"

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max vec.Vector3
}

// Size returns the extent of the box on each axis.
func (b Box) Size() vec.Vector3 {
	return b.Max.Sub(b.Min)
}

// Bounds returns the axis-aligned bounding box of the mesh. The zero Box is
// returned for an empty mesh.
func Bounds(m Mesh) Box {
	if len(m) == 0 {
		return Box{}
	}
	b := Box{Min: m[0].A, Max: m[0].A}
	for _, t := range m {
		for _, v := range [3]vec.Vector3{t.A, t.B, t.C} {
			b.Min = b.Min.Min(v)
			b.Max = b.Max.Max(v)
		}
	}
	return b
}

// SurfaceArea returns the summed area of all triangles in the mesh.
func SurfaceArea(m Mesh) float32 {
	var total float32
	for _, t := range m {
		total += t.Area()
	}
	return total
}
