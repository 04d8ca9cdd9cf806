package primitives

import (
	"fmt"
	"sort"

	"meshgen/internal/geometry"
	"meshgen/internal/terrain"
)

// Generator builds a mesh from a primitive definition.
type Generator func(def Def) (geometry.Mesh, error)

// Registry maps primitive type names to mesh generators. "cube", "quad",
// and "terrain" are registered by default.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns a registry with the built-in generators.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Generator)}
	r.Register("cube", genCube)
	r.Register("quad", genQuad)
	r.Register("terrain", genTerrain)
	return r
}

// Register adds or replaces a generator for the given type name.
func (r *Registry) Register(name string, gen Generator) {
	r.generators[name] = gen
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the mesh for the definition's type. Unknown types are an
// error naming the known ones.
func (r *Registry) Generate(def Def) (geometry.Mesh, error) {
	gen, ok := r.generators[def.Type]
	if !ok {
		return nil, fmt.Errorf("primitives: unknown type %q (have %v)", def.Type, r.Types())
	}
	return gen(def)
}

// genCube is the reference primitive: the fixed 12-triangle cube table
// scaled uniformly.
func genCube(def Def) (geometry.Mesh, error) {
	return geometry.Cube(def.Scale), nil
}

// genQuad emits a square plate with a mirrored back face so both sides have
// outward normals.
func genQuad(def Def) (geometry.Mesh, error) {
	front := geometry.Quad(def.Scale)
	return append(front, geometry.MirrorZ(front)...), nil
}

// genTerrain emits a fractal-noise heightfield. Definition fields override
// the generator defaults where set.
func genTerrain(def Def) (geometry.Mesh, error) {
	opts := terrain.DefaultOptions()
	if t := def.Terrain; t != nil {
		if t.Width > 0 {
			opts.Width = t.Width
		}
		if t.Depth > 0 {
			opts.Depth = t.Depth
		}
		if t.CellSize > 0 {
			opts.CellSize = t.CellSize
		}
		if t.HeightScale > 0 {
			opts.HeightScale = t.HeightScale
		}
		if t.Seed != 0 {
			opts.Seed = t.Seed
		}
		if t.Octaves > 0 {
			opts.Octaves = t.Octaves
		}
		if t.Frequency > 0 {
			opts.Frequency = t.Frequency
		}
		if t.Lacunarity > 0 {
			opts.Lacunarity = t.Lacunarity
		}
		if t.Gain > 0 {
			opts.Gain = t.Gain
		}
	}
	return terrain.Generate(opts), nil
}
