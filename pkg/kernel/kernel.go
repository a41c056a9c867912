// Package kernel defines the abstract geometry kernel interface behind
// primitive nodes. The sdfx implementation provides solid modeling and
// mesh extraction; the abstraction keeps graph evaluation testable with a
// lightweight stand-in.
package kernel

import "github.com/lukasried/meshflow/pkg/scene"

// Solid is an opaque handle to a geometry kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel creates solids and extracts triangle meshes from them.
type Kernel interface {
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64) Solid

	// ToMesh converts a solid to an indexed triangle mesh.
	ToMesh(s Solid) (*scene.Geometry, error)
}
