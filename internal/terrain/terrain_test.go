package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meshgen/internal/geometry"
)

func TestGenerate(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 8
	opts.Depth = 4
	opts.Seed = 42

	m := Generate(opts)
	require.Len(t, m, 8*4*2)

	// Heights stay within [0, HeightScale]; the lattice spans the centered
	// XZ extent.
	b := geometry.Bounds(m)
	require.InDelta(t, -4.0, float64(b.Min.X), 1e-5)
	require.InDelta(t, 4.0, float64(b.Max.X), 1e-5)
	require.InDelta(t, -2.0, float64(b.Min.Z), 1e-5)
	require.InDelta(t, 2.0, float64(b.Max.Z), 1e-5)
	require.GreaterOrEqual(t, b.Min.Y, float32(0))
	require.LessOrEqual(t, b.Max.Y, opts.HeightScale)

	// Every triangle is non-degenerate with an upward-facing unit normal.
	for i, tri := range m {
		n, err := tri.Normal()
		require.NoError(t, err, "triangle %d", i)
		require.InDelta(t, 1.0, float64(n.Length()), 1e-6, "triangle %d", i)
		require.Greater(t, n.Y, float32(0), "triangle %d faces down", i)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	require.Equal(t, Generate(opts), Generate(opts))
}

func TestGenerateClampsOptions(t *testing.T) {
	m := Generate(Options{Width: -1, Depth: -1, Seed: 1})
	require.Len(t, m, 32*32*2)
}

func TestNoiseRange(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			n := fractalValueNoise2D(float32(x)*0.3, float32(y)*0.3, 99, 4, 2, 0.5)
			require.GreaterOrEqual(t, n, float32(0))
			require.LessOrEqual(t, n, float32(1))
		}
	}
}
