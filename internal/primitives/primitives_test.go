package primitives

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDef(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "def.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDef(t, "type: cube\nscale: 5\ncolor: \"#A0A0A0FF\"\n")
	def, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cube", def.Type)
	require.Equal(t, float32(5), def.Scale)
	require.Equal(t, "#A0A0A0FF", def.Color)
}

func TestLoadDefaultsScale(t *testing.T) {
	def, err := Load(writeDef(t, "type: quad\n"))
	require.NoError(t, err)
	require.Equal(t, float32(5), def.Scale)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeDef(t, "scale: 5\n"))
	require.ErrorContains(t, err, "missing type")

	_, err = Load(writeDef(t, "::: not yaml"))
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#A0A0A0FF")
	require.NoError(t, err)
	require.Equal(t, [4]byte{0xA0, 0xA0, 0xA0, 0xFF}, c)

	// Alpha defaults to opaque.
	c, err = ParseColor("#102030")
	require.NoError(t, err)
	require.Equal(t, [4]byte{0x10, 0x20, 0x30, 0xFF}, c)

	_, err = ParseColor("red")
	require.Error(t, err)
	_, err = ParseColor("#12")
	require.Error(t, err)
}

func TestRegistryGenerate(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, []string{"cube", "quad", "terrain"}, r.Types())

	m, err := r.Generate(Def{Type: "cube", Scale: 5})
	require.NoError(t, err)
	require.Len(t, m, 12)

	m, err = r.Generate(Def{Type: "quad", Scale: 2})
	require.NoError(t, err)
	require.Len(t, m, 4)

	m, err = r.Generate(Def{Type: "terrain", Terrain: &TerrainDef{Width: 4, Depth: 4, Seed: 3}})
	require.NoError(t, err)
	require.Len(t, m, 4*4*2)

	_, err = r.Generate(Def{Type: "sphere"})
	require.ErrorContains(t, err, "unknown type")
}
