// Package scene defines the renderable scene graph produced by graph
// evaluation and consumed by the viewport. Objects form a tree; objects
// created by a graph node carry that node's id as provenance, helper
// objects (gizmos, grids) carry none.
package scene

import (
	"github.com/google/uuid"

	"github.com/lukasried/meshflow/pkg/geometry"
)

// ObjectKind is the closed set of renderable kinds. Picking and preview
// composition dispatch on this tag; adding a kind is a single edit here.
type ObjectKind int

const (
	KindGroup ObjectKind = iota
	KindMesh
	KindLine
	KindPoints
	KindCamera
)

func (k ObjectKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindLine:
		return "line"
	case KindPoints:
		return "points"
	case KindCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// Pickable reports whether the kind is a leaf renderable that rays can hit
func (k ObjectKind) Pickable() bool {
	return k == KindMesh || k == KindLine || k == KindPoints
}

// Object is a node in the renderable scene graph
type Object struct {
	ID           string
	Name         string
	Kind         ObjectKind
	Transform    geometry.Transform
	SourceNodeID string // id of the graph node that produced this object; empty for helpers
	Geometry     *Geometry
	Material     Material
	Visible      bool

	children []*Object
	parent   *Object
}

// NewObject creates a detached object of the given kind
func NewObject(kind ObjectKind) *Object {
	return &Object{
		ID:        uuid.NewString(),
		Kind:      kind,
		Transform: geometry.IdentityTransform(),
		Material:  DefaultMaterial(),
		Visible:   true,
	}
}

// Add attaches a child, detaching it from any previous parent
func (o *Object) Add(child *Object) {
	if child == nil || child == o {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = o
	o.children = append(o.children, child)
}

// Remove detaches a direct child. It is a no-op if the object is not a child.
func (o *Object) Remove(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the object's parent, or nil for a root
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns the direct children slice; callers must not mutate it
func (o *Object) Children() []*Object {
	return o.children
}

// Traverse visits the object and all descendants depth-first
func (o *Object) Traverse(visit func(*Object)) {
	visit(o)
	for _, c := range o.children {
		c.Traverse(visit)
	}
}

// FindBySource returns every descendant whose SourceNodeID matches
func (o *Object) FindBySource(nodeID string) []*Object {
	var result []*Object
	o.Traverse(func(obj *Object) {
		if obj.SourceNodeID == nodeID {
			result = append(result, obj)
		}
	})
	return result
}

// AncestorWithSource walks up from the object (inclusive) and returns the
// first ancestor tagged with a source node id. Groups of child meshes pick
// as one unit through this walk.
func (o *Object) AncestorWithSource() *Object {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.SourceNodeID != "" {
			return cur
		}
	}
	return nil
}

// Clone returns a deep copy of the object and its descendants with fresh
// ids. Geometry is shared (immutable after creation), materials are copied,
// provenance tags are preserved. The clone is detached.
func (o *Object) Clone() *Object {
	c := &Object{
		ID:           uuid.NewString(),
		Name:         o.Name,
		Kind:         o.Kind,
		Transform:    o.Transform,
		SourceNodeID: o.SourceNodeID,
		Geometry:     o.Geometry,
		Material:     o.Material,
		Visible:      o.Visible,
	}
	for _, child := range o.children {
		c.Add(child.Clone())
	}
	return c
}

// LocalToWorld transforms a point from the object's local space to the
// space of its root, applying the local transform first and each ancestor's
// transform in turn.
func (o *Object) LocalToWorld(point geometry.Vector3) geometry.Vector3 {
	p := point
	for cur := o; cur != nil; cur = cur.parent {
		p = cur.Transform.Apply(p)
	}
	return p
}

// BoundingBox returns the world-space bounding box of the object and all
// its descendants. Objects without geometry contribute only through their
// children; the box of a rotated child is conservative.
func (o *Object) BoundingBox() geometry.BoundingBox {
	box := geometry.NewBoundingBox()
	o.Traverse(func(obj *Object) {
		if obj.Geometry == nil {
			return
		}
		local := obj.Geometry.BoundingBox()
		if local.IsEmpty() {
			return
		}
		world := geometry.NewBoundingBox()
		for _, x := range []float64{local.Min.X, local.Max.X} {
			for _, y := range []float64{local.Min.Y, local.Max.Y} {
				for _, z := range []float64{local.Min.Z, local.Max.Z} {
					world.Extend(obj.LocalToWorld(geometry.NewVector3(x, y, z)))
				}
			}
		}
		box = box.Union(world)
	})
	return box
}
