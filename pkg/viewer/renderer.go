// Package viewer renders scene trees in software, for the fyne frontend
// and for headless tests. The raylib frontend has its own GPU path; this
// one trades speed for zero display requirements.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/scene"
)

// Renderer rasterizes a scene through a camera into an RGBA image.
type Renderer struct {
	Background color.RGBA
	// Highlight reports whether an object gets the selection outline;
	// nil highlights nothing.
	Highlight func(*scene.Object) bool

	frame *frame
}

// NewRenderer creates a renderer with a dark background.
func NewRenderer() *Renderer {
	return &Renderer{Background: color.RGBA{24, 26, 30, 255}}
}

var (
	outlineColor = color.RGBA{255, 170, 0, 255}
	lightDir     = geometry.NewVector3(0.4, 0.8, 0.45).Normalize()
)

// Render draws the scene and returns the image. The frame buffer is
// reused across calls with the same dimensions.
func (r *Renderer) Render(scn *scene.Scene, camera *scene.Camera, width, height int) *image.RGBA {
	if r.frame == nil || r.frame.width != width || r.frame.height != height {
		r.frame = newFrame(width, height)
	}
	r.frame.clear(r.Background)

	if scn == nil || scn.Root == nil || camera == nil {
		return r.frame.img
	}

	w, h := float64(width), float64(height)
	scn.Root.Traverse(func(o *scene.Object) {
		if !o.Visible || o.Kind != scene.KindMesh || o.Geometry == nil {
			return
		}
		r.drawMesh(o, camera, w, h)
		if r.Highlight != nil && r.Highlight(o) {
			r.drawEdges(o, camera, w, h, outlineColor)
		}
	})
	return r.frame.img
}

func (r *Renderer) drawMesh(o *scene.Object, camera *scene.Camera, w, h float64) {
	mat := o.Material
	if mat.Kind == scene.MaterialWireframe {
		r.drawEdges(o, camera, w, h, color.RGBA{mat.Color.R, mat.Color.G, mat.Color.B, 255})
		return
	}

	for i := 0; i < o.Geometry.TriangleCount(); i++ {
		tri := o.Geometry.Triangle(i).Transformed(o.LocalToWorld)

		x1, y1, z1 := camera.Project(tri.V1, w, h)
		x2, y2, z2 := camera.Project(tri.V2, w, h)
		x3, y3, z3 := camera.Project(tri.V3, w, h)
		if z1 <= 0.01 && z2 <= 0.01 && z3 <= 0.01 {
			continue
		}

		r.frame.fillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3, shade(mat, tri.Normal()))
	}
}

func (r *Renderer) drawEdges(o *scene.Object, camera *scene.Camera, w, h float64, col color.RGBA) {
	for i := 0; i < o.Geometry.TriangleCount(); i++ {
		tri := o.Geometry.Triangle(i).Transformed(o.LocalToWorld)
		corners := []geometry.Vector3{tri.V1, tri.V2, tri.V3}
		for j := 0; j < 3; j++ {
			a := corners[j]
			b := corners[(j+1)%3]
			x1, y1, z1 := camera.Project(a, w, h)
			x2, y2, z2 := camera.Project(b, w, h)
			if z1 <= 0.01 && z2 <= 0.01 {
				continue
			}
			r.frame.drawLine(int(x1), int(y1), int(x2), int(y2), col)
		}
	}
}

// shade resolves the pixel color for a face under the material's shading
// mode.
func shade(mat scene.Material, normal geometry.Vector3) color.RGBA {
	switch mat.Kind {
	case scene.MaterialNormal:
		return color.RGBA{
			R: uint8((normal.X*0.5 + 0.5) * 255),
			G: uint8((normal.Y*0.5 + 0.5) * 255),
			B: uint8((normal.Z*0.5 + 0.5) * 255),
			A: 255,
		}
	case scene.MaterialBasic:
		return color.RGBA{mat.Color.R, mat.Color.G, mat.Color.B, 255}
	default:
		// Lambert with a floor so back faces stay visible
		intensity := math.Max(0.25, math.Abs(normal.Dot(lightDir)))
		return color.RGBA{
			R: uint8(float64(mat.Color.R) * intensity),
			G: uint8(float64(mat.Color.G) * intensity),
			B: uint8(float64(mat.Color.B) * intensity),
			A: 255,
		}
	}
}
