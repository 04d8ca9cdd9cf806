package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"meshgen/internal/geometry"
	"meshgen/internal/vec"
)

// Facet is one decoded triangle record: the stored normal (as written, not
// recomputed), the triangle vertices, and the attribute field.
type Facet struct {
	Normal vec.Vector3
	Tri    geometry.Triangle
	Attr   uint16
}

// Read decodes a binary STL stream and returns the header and all facets in
// file order.
func Read(r io.Reader) ([HeaderSize]byte, []Facet, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return header, nil, fmt.Errorf("stl: read header: %w", err)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return header, nil, fmt.Errorf("stl: read triangle count: %w", err)
	}
	facets := make([]Facet, 0, count)
	for i := uint32(0); i < count; i++ {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return header, nil, fmt.Errorf("stl: read triangle %d: %w", i, err)
		}
		facets = append(facets, Facet{
			Normal: fromWire(rec.Normal),
			Tri: geometry.Triangle{
				A: fromWire(rec.Verts[0]),
				B: fromWire(rec.Verts[1]),
				C: fromWire(rec.Verts[2]),
			},
			Attr: rec.Attr,
		})
	}
	return header, facets, nil
}

// ReadFile decodes the binary STL file at path.
func ReadFile(path string) ([HeaderSize]byte, []Facet, error) {
	f, err := os.Open(path)
	if err != nil {
		return [HeaderSize]byte{}, nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	return Read(f)
}
