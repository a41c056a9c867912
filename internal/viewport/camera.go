package viewport

import (
	"math"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/scene"
)

// OrbitControls drive the default viewport camera: orbit around a target
// point, pan in the view plane, and dolly along the view axis. The camera
// position is derived from distance and two angles around the target.
type OrbitControls struct {
	camera   *scene.Camera
	target   geometry.Vector3
	distance float64
	angleX   float64
	angleY   float64

	enabled bool
}

// NewOrbitControls creates controls around the given camera, deriving the
// initial orbit parameters from its current position and target.
func NewOrbitControls(camera *scene.Camera) *OrbitControls {
	c := &OrbitControls{camera: camera, enabled: true}
	c.adoptCamera()
	return c
}

// AdoptPose re-derives the orbit state from an externally produced camera
// pose so interaction continues from that framing.
func (c *OrbitControls) AdoptPose(position, target geometry.Vector3) {
	c.camera.Position = position
	c.camera.Target = target
	c.adoptCamera()
}

func (c *OrbitControls) adoptCamera() {
	c.target = c.camera.Target
	offset := c.camera.Position.Sub(c.target)
	c.distance = offset.Length()
	if c.distance < 1e-9 {
		c.distance = 10
		offset = geometry.Vector3{Z: c.distance}
	}
	c.angleX = math.Asin(offset.Y / c.distance)
	c.angleY = math.Atan2(offset.X, offset.Z)
	c.apply()
}

// SetEnabled toggles whether the controls respond to input.
func (c *OrbitControls) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether the controls respond to input.
func (c *OrbitControls) Enabled() bool {
	return c.enabled
}

// Camera returns the camera driven by the controls.
func (c *OrbitControls) Camera() *scene.Camera {
	return c.camera
}

// Rotate orbits the camera by the given mouse delta in pixels.
func (c *OrbitControls) Rotate(dx, dy float64) {
	if !c.enabled {
		return
	}
	c.angleY += dx * 0.01
	c.angleX -= dy * 0.01

	// Clamp vertical angle short of the poles
	if c.angleX > 1.5 {
		c.angleX = 1.5
	}
	if c.angleX < -1.5 {
		c.angleX = -1.5
	}
	c.apply()
}

// Pan moves the target in the view plane by the given mouse delta.
func (c *OrbitControls) Pan(dx, dy float64) {
	if !c.enabled {
		return
	}
	forward := c.target.Sub(c.camera.Position).Normalize()
	right := forward.Cross(c.camera.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Pan speed scales with distance from target
	speed := c.distance * 0.001
	c.target = c.target.Add(right.Mul(-dx * speed)).Add(up.Mul(dy * speed))
	c.apply()
}

// Zoom dollies along the view axis; positive wheel moves closer.
func (c *OrbitControls) Zoom(wheel float64) {
	if !c.enabled {
		return
	}
	c.distance *= 1.0 - wheel*0.03
	if c.distance < 1.0 {
		c.distance = 1.0
	}
	c.apply()
}

// FitBounds frames the given bounding box: the target moves to its center
// and the distance is set so the box fills the view.
func (c *OrbitControls) FitBounds(box geometry.BoundingBox) {
	if box.IsEmpty() {
		return
	}
	c.target = box.Center()
	size := box.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim < 1e-9 {
		maxDim = 1
	}
	c.distance = maxDim * 2
	if c.distance < 1.0 {
		c.distance = 1.0
	}
	c.apply()
}

func (c *OrbitControls) apply() {
	x := c.distance * math.Cos(c.angleX) * math.Sin(c.angleY)
	y := c.distance * math.Sin(c.angleX)
	z := c.distance * math.Cos(c.angleX) * math.Cos(c.angleY)

	c.camera.Position = geometry.Vector3{
		X: c.target.X + x,
		Y: c.target.Y + y,
		Z: c.target.Z + z,
	}
	c.camera.Target = c.target
}

// CameraArbiter decides which camera renders the viewport and whether the
// orbit controls are live. A camera produced by the graph always wins over
// the default camera and freezes the controls; user interaction state and
// an explicit user toggle gate the controls while the default camera is
// active.
type CameraArbiter struct {
	defaultCamera *scene.Camera
	nodeCamera    *scene.Camera
	controls      *OrbitControls

	dragging    bool
	userEnabled bool
}

// NewCameraArbiter creates an arbiter over the given default camera and its
// controls.
func NewCameraArbiter(defaultCamera *scene.Camera, controls *OrbitControls) *CameraArbiter {
	a := &CameraArbiter{
		defaultCamera: defaultCamera,
		controls:      controls,
		userEnabled:   true,
	}
	a.update()
	return a
}

// SetNodeCamera installs a graph-produced camera; nil releases it and hands
// control back to the default camera, carrying the released camera's pose
// into the orbit state so the framing survives the handover. Repeated calls
// with the same value are no-ops.
func (a *CameraArbiter) SetNodeCamera(camera *scene.Camera) {
	if a.nodeCamera == camera {
		return
	}
	released := a.nodeCamera
	a.nodeCamera = camera
	if camera == nil && released != nil && a.controls != nil {
		a.controls.AdoptPose(released.Position, released.Target)
	}
	a.update()
}

// ActiveCamera returns the camera currently rendering the viewport.
func (a *CameraArbiter) ActiveCamera() *scene.Camera {
	if a.nodeCamera != nil {
		return a.nodeCamera
	}
	return a.defaultCamera
}

// NodeCameraActive reports whether a graph camera currently drives the
// view.
func (a *CameraArbiter) NodeCameraActive() bool {
	return a.nodeCamera != nil
}

// SetDragging records whether a gizmo drag is in progress; controls stay
// frozen for its duration.
func (a *CameraArbiter) SetDragging(dragging bool) {
	if a.dragging == dragging {
		return
	}
	a.dragging = dragging
	a.update()
}

// SetUserEnabled toggles the user-facing camera lock.
func (a *CameraArbiter) SetUserEnabled(enabled bool) {
	if a.userEnabled == enabled {
		return
	}
	a.userEnabled = enabled
	a.update()
}

// ControlsEnabled reports the effective controls state.
func (a *CameraArbiter) ControlsEnabled() bool {
	return a.nodeCamera == nil && !a.dragging && a.userEnabled
}

func (a *CameraArbiter) update() {
	a.controls.SetEnabled(a.ControlsEnabled())
}
