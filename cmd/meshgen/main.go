package main

import (
	"go.uber.org/zap"

	"meshgen/internal/geometry"
	"meshgen/internal/logger"
	"meshgen/internal/preview"
	"meshgen/internal/primitives"
	"meshgen/internal/stl"
	"meshgen/internal/toolconfig"
)

// main runs the one-shot pipeline: load config, load the primitive
// definition, generate the mesh, write the STL file, then optionally open
// the preview window on the written file. Any failure is fatal; a failed
// write may leave a truncated file at the output path.
func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := toolconfig.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	def, err := primitives.Load(cfg.Primitive)
	if err != nil {
		log.Fatal("load primitive definition", zap.Error(err))
	}

	color := stl.DefaultColor
	if def.Color != "" {
		color, err = primitives.ParseColor(def.Color)
		if err != nil {
			log.Fatal("parse primitive color", zap.Error(err))
		}
	}

	mesh, err := primitives.NewRegistry().Generate(def)
	if err != nil {
		log.Fatal("generate mesh", zap.Error(err))
	}

	header := stl.NewHeader(stl.DefaultTag, color)
	if err := stl.WriteFile(cfg.Output, header, mesh); err != nil {
		log.Fatal("write stl", zap.Error(err))
	}
	size := geometry.Bounds(mesh).Size()
	log.Info("wrote stl",
		zap.String("output", cfg.Output),
		zap.String("primitive", def.Type),
		zap.Int("triangles", len(mesh)),
		zap.Int("bytes", stl.FileSize(len(mesh))),
		zap.Float32s("size", []float32{size.X, size.Y, size.Z}),
		zap.Float32("surface_area", geometry.SurfaceArea(mesh)),
	)

	if cfg.Preview {
		// Render what is actually on disk, not the in-memory mesh.
		_, facets, err := stl.ReadFile(cfg.Output)
		if err != nil {
			log.Fatal("read back stl", zap.Error(err))
		}
		preview.Run(cfg.Output, facets)
	}
}
