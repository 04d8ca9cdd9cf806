package primitives

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Def is the YAML definition for a primitive (e.g. assets/primitives/cube.yaml).
// Scale is the uniform factor applied to the unit geometry; Color is a hex
// RGBA string embedded in the output header's color marker.
type Def struct {
	Type    string      `yaml:"type"`
	Scale   float32     `yaml:"scale,omitempty"`
	Color   string      `yaml:"color,omitempty"`
	Terrain *TerrainDef `yaml:"terrain,omitempty"`
}

// TerrainDef holds heightfield options for the terrain primitive. Zero
// fields fall back to the generator defaults.
type TerrainDef struct {
	Width       int     `yaml:"width,omitempty"`
	Depth       int     `yaml:"depth,omitempty"`
	CellSize    float32 `yaml:"cell_size,omitempty"`
	HeightScale float32 `yaml:"height_scale,omitempty"`
	Seed        int64   `yaml:"seed,omitempty"`
	Octaves     int     `yaml:"octaves,omitempty"`
	Frequency   float32 `yaml:"frequency,omitempty"`
	Lacunarity  float32 `yaml:"lacunarity,omitempty"`
	Gain        float32 `yaml:"gain,omitempty"`
}

// defaultScale is the uniform scale applied when a definition omits it,
// matching the reference cube (±1 coordinates scaled to ±5).
const defaultScale = 5

// Load reads a primitive definition from a YAML file. A missing scale
// defaults to 5; a missing type is an error.
func Load(path string) (Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Def{}, fmt.Errorf("primitives: %w", err)
	}
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("primitives: parse %s: %w", path, err)
	}
	if d.Type == "" {
		return Def{}, fmt.Errorf("primitives: %s: missing type", path)
	}
	if d.Scale == 0 {
		d.Scale = defaultScale
	}
	return d, nil
}

// ParseColor parses a hex color string of the form #RRGGBB or #RRGGBBAA into
// RGBA bytes. A missing alpha component defaults to 0xFF.
func ParseColor(s string) ([4]byte, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return [4]byte{}, fmt.Errorf("primitives: color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return [4]byte{}, fmt.Errorf("primitives: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}
