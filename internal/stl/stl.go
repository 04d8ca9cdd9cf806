// Package stl encodes and decodes the binary STL mesh format: an 80-byte
// header, a little-endian uint32 triangle count, and one fixed 50-byte
// record per triangle (unit normal, three vertices, 2-byte attribute).
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"meshgen/internal/geometry"
	"meshgen/internal/vec"
)

// RecordSize is the wire size of one triangle record: 12 float32s plus the
// uint16 attribute field.
const RecordSize = 12*4 + 2

// FileSize returns the total byte size of a binary STL file holding n
// triangles.
func FileSize(n int) int {
	return HeaderSize + 4 + RecordSize*n
}

// record is the wire layout of one triangle. Field order and types match
// the format byte for byte; binary.Write emits it packed, little-endian.
type record struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

func toWire(v vec.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func fromWire(w [3]float32) vec.Vector3 {
	return vec.New(w[0], w[1], w[2])
}

// Write emits the mesh as binary STL: header, triangle count, then one
// record per triangle in mesh order. Normals are computed from winding; a
// degenerate triangle aborts the write with an error. The attribute field
// is always zero.
func Write(w io.Writer, header [HeaderSize]byte, m geometry.Mesh) error {
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m))); err != nil {
		return fmt.Errorf("stl: write triangle count: %w", err)
	}
	for i, t := range m {
		n, err := t.Normal()
		if err != nil {
			return fmt.Errorf("stl: triangle %d: %w", i, err)
		}
		rec := record{
			Normal: toWire(n),
			Verts:  [3][3]float32{toWire(t.A), toWire(t.B), toWire(t.C)},
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("stl: write triangle %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile writes the mesh to path, creating or truncating the file. A
// failed write may leave a truncated file behind; there is no cleanup or
// retry.
func WriteFile(path string, header [HeaderSize]byte, m geometry.Mesh) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	defer out.Close()
	return Write(out, header, m)
}
