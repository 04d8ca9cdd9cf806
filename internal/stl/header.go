package stl

// HeaderSize is the fixed byte length of a binary STL header.
const HeaderSize = 80

// DefaultTag is the ASCII tag written at the start of the header. The
// trailing COLOR= marker is followed by four raw RGBA bytes.
const DefaultTag = "STLB ATF 2.0.0.9000 COLOR="

// DefaultColor is the RGBA color marker embedded after DefaultTag when no
// primitive color is configured.
var DefaultColor = [4]byte{0xA0, 0xA0, 0xA0, 0xFF}

// NewHeader builds an 80-byte header from an ASCII tag and an RGBA color
// marker. The remainder is space-padded; overlong content is truncated so
// the result is always exactly 80 bytes.
func NewHeader(tag string, color [4]byte) [HeaderSize]byte {
	var h [HeaderSize]byte
	for i := range h {
		h[i] = ' '
	}
	n := copy(h[:], tag)
	copy(h[n:], color[:])
	return h
}
