package viewer

import (
	"image/color"
	"testing"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/scene"
)

func quadScene() (*scene.Scene, *scene.Object) {
	geom := &scene.Geometry{
		Vertices: []float32{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
		},
		Normals: []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	obj := scene.NewObject(scene.KindMesh)
	obj.Geometry = geom

	scn := scene.NewScene()
	scn.Add(obj)
	return scn, obj
}

func frontCamera() *scene.Camera {
	return scene.NewCamera(geometry.BoundingBox{
		Min: geometry.NewVector3(-1, -1, -1),
		Max: geometry.NewVector3(1, 1, 1),
	})
}

func TestRenderFillsCenterPixel(t *testing.T) {
	scn, _ := quadScene()
	r := NewRenderer()

	img := r.Render(scn, frontCamera(), 200, 200)
	if got := img.RGBAAt(100, 100); got == r.Background {
		t.Error("quad facing the camera should cover the center pixel")
	}
	if got := img.RGBAAt(2, 2); got != r.Background {
		t.Errorf("corner pixel should stay background, got %v", got)
	}
}

func TestRenderSkipsInvisibleObjects(t *testing.T) {
	scn, obj := quadScene()
	obj.Visible = false
	r := NewRenderer()

	img := r.Render(scn, frontCamera(), 200, 200)
	if got := img.RGBAAt(100, 100); got != r.Background {
		t.Error("invisible objects must not be drawn")
	}
}

func TestRenderHighlightDrawsOutline(t *testing.T) {
	scn, obj := quadScene()
	r := NewRenderer()
	r.Highlight = func(o *scene.Object) bool { return o == obj }

	img := r.Render(scn, frontCamera(), 200, 200)

	found := false
	for y := 0; y < 200 && !found; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) == outlineColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("highlighted object should draw outline-colored edges")
	}
}

func TestRenderNilSceneReturnsBackground(t *testing.T) {
	r := NewRenderer()
	img := r.Render(nil, nil, 50, 50)
	if got := img.RGBAAt(25, 25); got != r.Background {
		t.Errorf("nil scene should render background only, got %v", got)
	}
}

func TestWireframeMaterialDrawsEdgesOnly(t *testing.T) {
	scn, obj := quadScene()
	obj.Material = scene.Material{Kind: scene.MaterialWireframe, Color: scene.Color{R: 0, G: 255, B: 0, A: 255}}
	r := NewRenderer()

	img := r.Render(scn, frontCamera(), 200, 200)
	want := color.RGBA{0, 255, 0, 255}

	found := false
	for y := 0; y < 200 && !found; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) == want {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("wireframe material should draw edges in the material color")
	}
}
