package scene

import (
	"math"

	"github.com/lukasried/meshflow/pkg/geometry"
)

// Camera is a perspective camera pose. Both the interactive default camera
// and node-authored cameras use this type; authority between them is decided
// by the viewport, never here.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // vertical field of view in radians
}

// NewCamera creates a camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 10
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
	}
}

// basis returns the camera-space axes
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return
}

// Project projects a 3D point to 2D screen coordinates, returning the
// screen position and the camera-space depth.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates to a world-space picking ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	dir := forward.
		Add(right.Mul(ndcX * fovScale * aspect)).
		Add(up.Mul(ndcY * fovScale))

	return geometry.NewRay(c.Position, dir)
}

// Clone returns a copy of the camera pose
func (c *Camera) Clone() *Camera {
	clone := *c
	return &clone
}
