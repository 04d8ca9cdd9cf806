// Package terrain generates a triangulated heightfield mesh from fractal
// value noise, for export alongside the fixed primitives.
package terrain

import (
	"time"

	"github.com/chewxy/math32"

	"meshgen/internal/geometry"
	"meshgen/internal/vec"
)

// Options controls heightfield generation. Width/Depth are in grid cells;
// CellSize is the world size of one cell on X/Z. HeightScale is the maximum
// terrain height in world units. Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Width       int
	Depth       int
	CellSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a sane default configuration.
func DefaultOptions() Options {
	return Options{
		Width:       32,
		Depth:       32,
		CellSize:    1.0,
		HeightScale: 3.0,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

func (o *Options) clamp() {
	if o.Width <= 0 {
		o.Width = 32
	}
	if o.Depth <= 0 {
		o.Depth = 32
	}
	if o.CellSize <= 0 {
		o.CellSize = 1
	}
	if o.HeightScale <= 0 {
		o.HeightScale = 1
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
}

// Generate builds a heightfield mesh: a (Width+1)×(Depth+1) vertex lattice
// centered on the origin in XZ, two triangles per cell, wound so normals
// face +Y. The mesh has Width×Depth×2 triangles.
func Generate(opts Options) geometry.Mesh {
	opts.clamp()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Sample heights at lattice corners so adjacent cells share vertices.
	heights := make([][]float32, opts.Depth+1)
	for z := range heights {
		heights[z] = make([]float32, opts.Width+1)
		for x := range heights[z] {
			h := fractalValueNoise2D(
				float32(x)*opts.Frequency, float32(z)*opts.Frequency,
				seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if !isFinite(h) {
				h = 0
			}
			heights[z][x] = h * opts.HeightScale
		}
	}

	// Center the field around the origin on XZ.
	startX := -float32(opts.Width) * opts.CellSize * 0.5
	startZ := -float32(opts.Depth) * opts.CellSize * 0.5

	corner := func(x, z int) vec.Vector3 {
		return vec.New(
			startX+float32(x)*opts.CellSize,
			heights[z][x],
			startZ+float32(z)*opts.CellSize,
		)
	}

	m := make(geometry.Mesh, 0, opts.Width*opts.Depth*2)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			p00 := corner(x, z)
			p10 := corner(x+1, z)
			p01 := corner(x, z+1)
			p11 := corner(x+1, z+1)
			// Winding chosen so (A−B)×(B−C) points up on a flat cell.
			m = append(m,
				geometry.Triangle{A: p00, B: p01, C: p11},
				geometry.Triangle{A: p11, B: p10, C: p00},
			)
		}
	}
	return m
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value
// noise with configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and
// cubic easing.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	// Lattice values at cell corners.
	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random
// float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
