package app

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/internal/store"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/stl"
	"go.uber.org/zap"
)

// openProject opens the project file and loads its roads into the scene
func (app *App) openProject(path string) error {
	st, err := store.Open(path, app.log)
	if err != nil {
		return err
	}
	segments, err := st.Load(context.Background(), app.scene, road.NewBuilder(app.scene, app.cfg.Tool.ObjectName))
	if err != nil {
		st.Close()
		return err
	}
	app.store = st
	app.log.Info("project opened", zap.String("path", path), zap.Int("roads", len(segments)))
	return nil
}

// loadTerrain adds an STL model as a linked, non-road scene object. Rays hit
// it, but it is never a snap target.
func (app *App) loadTerrain(path string) error {
	m, err := stl.LoadMesh(path)
	if err != nil {
		return fmt.Errorf("error loading terrain: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	obj := scene.NewObject(app.scene.UniqueName(name), m)
	if err := app.scene.Add(obj); err != nil {
		return err
	}
	if err := app.scene.Link(obj.Name); err != nil {
		return err
	}

	triangles := m.Triangles(obj.Location)
	app.Terrain = TerrainData{
		loaded:   true,
		name:     obj.Name,
		mesh:     toRaylibMesh(triangles),
		material: rl.LoadMaterialDefault(),
	}
	app.log.Info("terrain loaded",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(triangles)))
	return nil
}

// toRaylibMesh uploads triangles as a Raylib mesh with baked lighting
func toRaylibMesh(triangles []geometry.Triangle) rl.Mesh {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	// Light from above, slightly tilted
	lightDir := geometry.NewVector3(-0.4, -0.5, -1.0).Normalize()

	idx := 0
	for _, triangle := range triangles {
		normal := triangle.CalculateNormal()
		intensity := math.Max(0.35, math.Abs(normal.Dot(lightDir)))
		r := uint8(120 * intensity)
		g := uint8(150 * intensity)
		b := uint8(110 * intensity)

		n := toRaylib(normal)
		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			p := toRaylib(v)
			vertices[idx*3+0], vertices[idx*3+1], vertices[idx*3+2] = p.X, p.Y, p.Z
			normals[idx*3+0], normals[idx*3+1], normals[idx*3+2] = n.X, n.Y, n.Z
			colors[idx*4+0], colors[idx*4+1], colors[idx*4+2], colors[idx*4+3] = r, g, b, 255
			idx++
		}
	}

	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
		m.Normals = &normals[0]
		m.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&m, false)

	return m
}
