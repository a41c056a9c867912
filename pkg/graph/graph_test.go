package graph

import (
	"testing"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/kernel"
	"github.com/lukasried/meshflow/pkg/scene"
)

// stubSolid and stubKernel avoid marching cubes in tests; every primitive
// meshes to a single triangle.
type stubSolid struct {
	min, max [3]float64
}

func (s stubSolid) BoundingBox() (min, max [3]float64) {
	return s.min, s.max
}

type stubKernel struct {
	meshed int
}

func (k *stubKernel) Box(x, y, z float64) kernel.Solid {
	return stubSolid{min: [3]float64{-x / 2, -y / 2, -z / 2}, max: [3]float64{x / 2, y / 2, z / 2}}
}

func (k *stubKernel) Sphere(radius float64) kernel.Solid {
	return stubSolid{min: [3]float64{-radius, -radius, -radius}, max: [3]float64{radius, radius, radius}}
}

func (k *stubKernel) Cylinder(height, radius float64) kernel.Solid {
	return stubSolid{min: [3]float64{-radius, -radius, -height / 2}, max: [3]float64{radius, radius, height / 2}}
}

func (k *stubKernel) ToMesh(s kernel.Solid) (*scene.Geometry, error) {
	k.meshed++
	min, max := s.BoundingBox()
	return &scene.Geometry{
		Vertices: []float32{
			float32(min[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(max[1]), float32(max[2]),
		},
		Normals: []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices: []uint32{0, 1, 2},
	}, nil
}

func TestOnChangeFiresOnMutations(t *testing.T) {
	g := New(&stubKernel{})

	changes := 0
	unsubscribe := g.OnChange(func() { changes++ })

	n := NewNode(TypeBox)
	g.AddNode(n)
	if changes != 1 {
		t.Errorf("expected 1 change after AddNode, got %d", changes)
	}

	if err := g.SetProperty(n.ID, "width", 2.0); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}
	if changes != 2 {
		t.Errorf("expected 2 changes after SetProperty, got %d", changes)
	}

	g.RemoveNode(n.ID)
	if changes != 3 {
		t.Errorf("expected 3 changes after RemoveNode, got %d", changes)
	}

	unsubscribe()
	g.AddNode(NewNode(TypeBox))
	if changes != 3 {
		t.Errorf("unsubscribed callback still fired, got %d changes", changes)
	}
}

func TestRemoveNodeDropsEdges(t *testing.T) {
	g := New(&stubKernel{})

	box := NewNode(TypeBox)
	mesh := NewNode(TypeMesh)
	g.AddNode(box)
	g.AddNode(mesh)

	if _, err := g.Connect(box.ID, "geometry", mesh.ID, "geometry"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if len(g.edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.edges))
	}

	g.RemoveNode(box.ID)
	if len(g.edges) != 0 {
		t.Errorf("removing a node should drop incident edges, %d left", len(g.edges))
	}
}

func TestConnectRejectsUnknownPorts(t *testing.T) {
	g := New(&stubKernel{})
	box := NewNode(TypeBox)
	mesh := NewNode(TypeMesh)
	g.AddNode(box)
	g.AddNode(mesh)

	if _, err := g.Connect(box.ID, "nope", mesh.ID, "geometry"); err == nil {
		t.Error("expected error for unknown output port")
	}
	if _, err := g.Connect(box.ID, "geometry", mesh.ID, "nope"); err == nil {
		t.Error("expected error for unknown input port")
	}
}

func TestEvaluateSceneOutput(t *testing.T) {
	g := New(&stubKernel{})

	box := NewNode(TypeBox)
	mesh := NewNode(TypeMesh)
	out := NewNode(SceneOutputType)
	g.AddNode(box)
	g.AddNode(mesh)
	g.AddNode(out)
	if _, err := g.Connect(box.ID, "geometry", mesh.ID, "geometry"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect(mesh.ID, "object", out.ID, "objects"); err != nil {
		t.Fatal(err)
	}

	so, ok := out.Output("scene").Value.(*SceneOutput)
	if !ok || so == nil || so.Scene == nil {
		t.Fatal("scene output node did not produce a SceneOutput")
	}

	tagged := so.Scene.Root.FindBySource(string(mesh.ID))
	if len(tagged) != 1 {
		t.Fatalf("expected 1 object tagged with mesh node id, got %d", len(tagged))
	}
	if tagged[0].Kind != scene.KindMesh {
		t.Errorf("expected mesh kind, got %v", tagged[0].Kind)
	}
}

func TestTransformPropertiesFlowIntoObject(t *testing.T) {
	g := New(&stubKernel{})

	box := NewNode(TypeBox)
	mesh := NewNode(TypeMesh)
	g.AddNode(box)
	g.AddNode(mesh)
	if _, err := g.Connect(box.ID, "geometry", mesh.ID, "geometry"); err != nil {
		t.Fatal(err)
	}

	pos := geometry.NewVector3(1, 2, 3)
	if err := g.SetProperty(mesh.ID, PropPosition, pos); err != nil {
		t.Fatal(err)
	}

	obj, ok := mesh.Output("object").Value.(*scene.Object)
	if !ok || obj == nil {
		t.Fatal("mesh node did not produce an object")
	}
	if obj.Transform.Position != pos {
		t.Errorf("position property did not flow into object: got %v", obj.Transform.Position)
	}
	if obj.Transform.Scale != geometry.NewVector3(1, 1, 1) {
		t.Errorf("default scale should be identity, got %v", obj.Transform.Scale)
	}
}

func TestPrimitiveGeometryCache(t *testing.T) {
	k := &stubKernel{}
	g := New(k)

	box := NewNode(TypeBox)
	g.AddNode(box)
	meshedAfterAdd := k.meshed

	// A property writeback that does not touch the box must not re-mesh it
	g.Evaluate()
	if k.meshed != meshedAfterAdd {
		t.Errorf("unchanged primitive re-meshed: %d -> %d", meshedAfterAdd, k.meshed)
	}

	if err := g.SetProperty(box.ID, "width", 3.0); err != nil {
		t.Fatal(err)
	}
	if k.meshed <= meshedAfterAdd {
		t.Error("changed primitive should re-mesh")
	}
}

func TestSceneOutputNodeLookup(t *testing.T) {
	g := New(&stubKernel{})
	if g.SceneOutputNode() != nil {
		t.Error("empty graph should have no scene output node")
	}

	out := NewNode(SceneOutputType)
	g.AddNode(out)
	if g.SceneOutputNode() != out {
		t.Error("scene output node not found")
	}
}

func TestCameraNodeEvaluation(t *testing.T) {
	g := New(&stubKernel{})

	cam := NewNode(TypeCamera)
	out := NewNode(SceneOutputType)
	g.AddNode(cam)
	g.AddNode(out)
	if _, err := g.Connect(cam.ID, "camera", out.ID, "camera"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetProperty(cam.ID, PropPosition, geometry.NewVector3(0, 10, 0)); err != nil {
		t.Fatal(err)
	}

	so := out.Output("scene").Value.(*SceneOutput)
	if so.Scene.Camera == nil {
		t.Fatal("scene output should carry the node-authored camera")
	}
	if so.Scene.Camera.Position != geometry.NewVector3(0, 10, 0) {
		t.Errorf("camera position failed: got %v", so.Scene.Camera.Position)
	}
}
