package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/scene"
)

// drawScene renders the bound scene, or the preview scene while no scene
// output exists, with wireframe overlays for the selection outline.
func (a *App) drawScene() {
	scn := a.view.BoundScene()
	if a.view.PreviewManager().SceneOverride() == nil {
		// No scene-output node: the preview composition is the visual.
		scn = a.view.PreviewManager().Scene()
	}
	if scn == nil || scn.Root == nil {
		return
	}

	outline := a.view.OutlineCompositor()
	live := make(map[*scene.Geometry]bool)
	scn.Root.Traverse(func(o *scene.Object) {
		if !o.Visible || o.Kind != scene.KindMesh || o.Geometry == nil {
			return
		}
		live[o.Geometry] = true
		mesh := a.cachedMesh(o.Geometry)
		rl.DrawMesh(mesh, a.material, worldMatrix(o))

		if outline.IsHighlighted(o) {
			a.drawOutline(o)
		}
	})
	a.pruneMeshes(live)

	a.drawGizmoAxes()
}

// pruneMeshes unloads GPU meshes whose geometry left the scene, so
// regenerated geometries do not accumulate.
func (a *App) pruneMeshes(live map[*scene.Geometry]bool) {
	for g, mesh := range a.meshes {
		if !live[g] {
			rl.UnloadMesh(&mesh)
			delete(a.meshes, g)
		}
	}
}

// cachedMesh uploads a geometry to the GPU once and reuses it until the
// pointer disappears from the scene. Raylib index buffers are 16 bit, so
// geometries addressing more vertices than a uint16 can hold upload
// unindexed instead of letting the indices wrap.
func (a *App) cachedMesh(g *scene.Geometry) rl.Mesh {
	if mesh, ok := a.meshes[g]; ok {
		return mesh
	}
	src := g
	if g.VertexCount() > math.MaxUint16+1 {
		src = g.Unindexed()
	}
	mesh := rl.Mesh{
		VertexCount:   int32(src.VertexCount()),
		TriangleCount: int32(src.TriangleCount()),
	}
	vertices := make([]float32, len(src.Vertices))
	copy(vertices, src.Vertices)
	normals := make([]float32, len(src.Normals))
	copy(normals, src.Normals)
	indices := make([]uint16, len(src.Indices))
	for i, v := range src.Indices {
		indices[i] = uint16(v)
	}
	mesh.Vertices = &vertices[0]
	if len(normals) > 0 {
		mesh.Normals = &normals[0]
	}
	if len(indices) > 0 {
		mesh.Indices = &indices[0]
	}
	rl.UploadMesh(&mesh, false)

	a.meshes[g] = mesh
	return mesh
}

func (a *App) unloadMeshes() {
	for _, mesh := range a.meshes {
		rl.UnloadMesh(&mesh)
	}
	a.meshes = make(map[*scene.Geometry]rl.Mesh)
}

// worldMatrix composes the object's transform chain for raylib.
func worldMatrix(o *scene.Object) rl.Matrix {
	m := localMatrix(o.Transform)
	for p := o.Parent(); p != nil; p = p.Parent() {
		m = rl.MatrixMultiply(m, localMatrix(p.Transform))
	}
	return m
}

func localMatrix(t geometry.Transform) rl.Matrix {
	s := rl.MatrixScale(float32(t.Scale.X), float32(t.Scale.Y), float32(t.Scale.Z))
	r := rl.MatrixRotateXYZ(rl.Vector3{
		X: float32(t.Rotation.X * rl.Deg2rad),
		Y: float32(t.Rotation.Y * rl.Deg2rad),
		Z: float32(t.Rotation.Z * rl.Deg2rad),
	})
	tr := rl.MatrixTranslate(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z))
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), tr)
}

// drawOutline draws the selection outline as world-space triangle edges,
// deduplicated so shared edges draw once.
func (a *App) drawOutline(o *scene.Object) {
	col := rl.NewColor(255, 170, 0, 255)
	drawn := make(map[[2][3]float32]bool)

	for i := 0; i < o.Geometry.TriangleCount(); i++ {
		tri := o.Geometry.Triangle(i).Transformed(o.LocalToWorld)
		corners := [3]geometry.Vector3{tri.V1, tri.V2, tri.V3}
		for j := 0; j < 3; j++ {
			from := corners[j]
			to := corners[(j+1)%3]
			key := edgeKey(from, to)
			if drawn[key] {
				continue
			}
			drawn[key] = true
			rl.DrawLine3D(rlVec(from.X, from.Y, from.Z), rlVec(to.X, to.Y, to.Z), col)
		}
	}
}

func edgeKey(a, b geometry.Vector3) [2][3]float32 {
	ka := [3]float32{float32(a.X), float32(a.Y), float32(a.Z)}
	kb := [3]float32{float32(b.X), float32(b.Y), float32(b.Z)}
	if ka[0] > kb[0] || (ka[0] == kb[0] && (ka[1] > kb[1] || (ka[1] == kb[1] && ka[2] > kb[2]))) {
		ka, kb = kb, ka
	}
	return [2][3]float32{ka, kb}
}

// drawGizmoAxes draws the manipulation gizmo as three colored axis lines
// at the attached object.
func (a *App) drawGizmoAxes() {
	gizmo := a.view.Gizmo()
	obj := gizmo.Attached()
	if obj == nil {
		return
	}
	origin := obj.LocalToWorld(geometry.Vector3{})
	size := 1.5

	rl.DrawLine3D(rlVec(origin.X, origin.Y, origin.Z), rlVec(origin.X+size, origin.Y, origin.Z), rl.Red)
	rl.DrawLine3D(rlVec(origin.X, origin.Y, origin.Z), rlVec(origin.X, origin.Y+size, origin.Z), rl.Green)
	rl.DrawLine3D(rlVec(origin.X, origin.Y, origin.Z), rlVec(origin.X, origin.Y, origin.Z+size), rl.Blue)
}

// drawGrid draws the ground reference grid.
func (a *App) drawGrid() {
	rl.DrawGrid(20, 1.0)
}
