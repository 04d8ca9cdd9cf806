// Package preview renders a generated mesh in a raylib window with a free
// camera and an editor grid, so the exported file can be inspected without
// an external viewer.
package preview

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"meshgen/internal/geometry"
	"meshgen/internal/stl"
	"meshgen/internal/vec"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60

	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// faceColor and edgeColor are the fill and wireframe colors for mesh facets.
var (
	faceColor = rl.NewColor(128, 128, 128, 255)
	edgeColor = rl.NewColor(220, 220, 220, 255)
)

// Run opens a window and draws the facets until the window is closed.
// Blocks for the lifetime of the window.
func Run(title string, facets []stl.Facet) {
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	camera := newCamera(facets)
	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraFree)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(camera)
		drawEditorGrid()
		drawFacets(facets)
		rl.EndMode3D()
		drawHud(title, len(facets))
		rl.EndDrawing()
	}
}

const (
	hudFontSize = 20
	hudPadding  = 12
)

// drawHud draws the file name, facet count, and FPS at the top-left.
// Call outside 3D mode, after the scene.
func drawHud(title string, facets int) {
	text := fmt.Sprintf("%s  |  %d facets  |  FPS: %d", title, facets, rl.GetFPS())
	rl.DrawText(text, hudPadding, hudPadding, hudFontSize, rl.Green)
}

// newCamera returns a perspective camera looking at the origin from a
// distance scaled to the mesh bounds, so small and large meshes both fit.
func newCamera(facets []stl.Facet) rl.Camera3D {
	dist := float32(10)
	if len(facets) > 0 {
		m := make(geometry.Mesh, len(facets))
		for i, f := range facets {
			m[i] = f.Tri
		}
		size := geometry.Bounds(m).Size()
		if ext := max(size.X, max(size.Y, size.Z)); ext > 0 {
			dist = ext * 1.5
		}
	}
	var camera rl.Camera3D
	camera.Position = rl.NewVector3(dist, dist, dist)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = 45
	camera.Projection = rl.CameraPerspective
	return camera
}

func toRl(v vec.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// drawFacets draws each triangle filled plus its wire edges. Facet order is
// file order; no sorting or culling beyond raylib defaults.
func drawFacets(facets []stl.Facet) {
	for _, f := range facets {
		a := toRl(f.Tri.A)
		b := toRl(f.Tri.B)
		c := toRl(f.Tri.C)
		rl.DrawTriangle3D(a, b, c, faceColor)
		rl.DrawLine3D(a, b, edgeColor)
		rl.DrawLine3D(b, c, edgeColor)
		rl.DrawLine3D(c, a, edgeColor)
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and
// axis lines through the origin (X=red, Y=green, Z=blue).
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
