package scene

import (
	"testing"

	"github.com/lukasried/meshflow/pkg/geometry"
)

// quadGeometry returns two triangles spanning [0,1]x[0,1] in the z=0 plane
func quadGeometry() *Geometry {
	return &Geometry{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestObjectAddRemove(t *testing.T) {
	parent := NewObject(KindGroup)
	child := NewObject(KindMesh)

	parent.Add(child)
	if child.Parent() != parent {
		t.Error("child parent not set after Add")
	}
	if len(parent.Children()) != 1 {
		t.Errorf("expected 1 child, got %d", len(parent.Children()))
	}

	parent.Remove(child)
	if child.Parent() != nil {
		t.Error("child parent not cleared after Remove")
	}
	if len(parent.Children()) != 0 {
		t.Errorf("expected 0 children, got %d", len(parent.Children()))
	}
}

func TestObjectReparent(t *testing.T) {
	a := NewObject(KindGroup)
	b := NewObject(KindGroup)
	child := NewObject(KindMesh)

	a.Add(child)
	b.Add(child)

	if len(a.Children()) != 0 {
		t.Error("child still attached to old parent")
	}
	if child.Parent() != b {
		t.Error("child not attached to new parent")
	}
}

func TestAncestorWithSource(t *testing.T) {
	group := NewObject(KindGroup)
	group.SourceNodeID = "node-a"
	mesh := NewObject(KindMesh)
	group.Add(mesh)

	unit := mesh.AncestorWithSource()
	if unit != group {
		t.Error("expected the tagged group as the selection unit")
	}

	// A tagged leaf resolves to itself
	mesh.SourceNodeID = "node-b"
	if mesh.AncestorWithSource() != mesh {
		t.Error("tagged leaf should resolve to itself")
	}

	// An untagged tree resolves to nothing
	helper := NewObject(KindMesh)
	if helper.AncestorWithSource() != nil {
		t.Error("untagged object should have no selection unit")
	}
}

func TestObjectClone(t *testing.T) {
	group := NewObject(KindGroup)
	group.SourceNodeID = "node-a"
	mesh := NewObject(KindMesh)
	mesh.Geometry = quadGeometry()
	group.Add(mesh)

	clone := group.Clone()

	if clone.ID == group.ID {
		t.Error("clone should get a fresh id")
	}
	if clone.SourceNodeID != "node-a" {
		t.Error("clone must preserve provenance tag")
	}
	if len(clone.Children()) != 1 {
		t.Fatalf("expected 1 cloned child, got %d", len(clone.Children()))
	}
	if clone.Children()[0].Geometry != mesh.Geometry {
		t.Error("clone should share geometry, not copy it")
	}
	if clone.Parent() != nil {
		t.Error("clone should be detached")
	}
}

func TestFindBySource(t *testing.T) {
	root := NewObject(KindGroup)
	a := NewObject(KindMesh)
	a.SourceNodeID = "n1"
	b := NewObject(KindMesh)
	b.SourceNodeID = "n2"
	c := NewObject(KindMesh)
	c.SourceNodeID = "n1"
	root.Add(a)
	root.Add(b)
	root.Add(c)

	found := root.FindBySource("n1")
	if len(found) != 2 {
		t.Errorf("expected 2 objects for n1, got %d", len(found))
	}
}

func TestWorldBoundingBox(t *testing.T) {
	root := NewObject(KindGroup)
	mesh := NewObject(KindMesh)
	mesh.Geometry = quadGeometry()
	mesh.Transform.Position = geometry.NewVector3(10, 0, 0)
	root.Add(mesh)

	box := root.BoundingBox()
	if box.IsEmpty() {
		t.Fatal("bounding box should not be empty")
	}
	if box.Min != geometry.NewVector3(10, 0, 0) {
		t.Errorf("Min failed: got %v", box.Min)
	}
	if box.Max != geometry.NewVector3(11, 1, 0) {
		t.Errorf("Max failed: got %v", box.Max)
	}
}

func TestPickableKinds(t *testing.T) {
	pickable := []ObjectKind{KindMesh, KindLine, KindPoints}
	for _, k := range pickable {
		if !k.Pickable() {
			t.Errorf("%v should be pickable", k)
		}
	}
	for _, k := range []ObjectKind{KindGroup, KindCamera} {
		if k.Pickable() {
			t.Errorf("%v should not be pickable", k)
		}
	}
}
