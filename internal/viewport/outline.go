package viewport

import "github.com/lukasried/meshflow/pkg/scene"

// Pipeline is the owned handle for the post-processing resources bound to
// one scene+camera pair. Frontends hang their GPU-side state off the
// release hook; the handle itself only enforces the dispose-then-recreate
// contract.
type Pipeline struct {
	scene  *scene.Scene
	camera *scene.Camera

	AntiAliased bool

	release  func()
	disposed bool
}

// NewPipeline allocates a pipeline for the scene+camera pair. The release
// hook, if non-nil, runs exactly once on Dispose.
func NewPipeline(scn *scene.Scene, camera *scene.Camera, release func()) *Pipeline {
	return &Pipeline{scene: scn, camera: camera, AntiAliased: true, release: release}
}

// Scene returns the scene the pipeline renders.
func (p *Pipeline) Scene() *scene.Scene {
	return p.scene
}

// Camera returns the camera the pipeline renders with.
func (p *Pipeline) Camera() *scene.Camera {
	return p.camera
}

// Dispose releases the pipeline's resources. Calling it twice is a no-op.
func (p *Pipeline) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	if p.release != nil {
		p.release()
	}
}

// Disposed reports whether the pipeline has been released.
func (p *Pipeline) Disposed() bool {
	return p.disposed
}

// OutlineCompositor maintains the set of objects drawn with a selection
// outline. The set is rebuilt wholesale on every selection change: for
// each selected object, itself plus every pickable descendant.
type OutlineCompositor struct {
	pipeline    *Pipeline
	highlighted []*scene.Object
}

// NewOutlineCompositor creates a compositor with no scene bound.
func NewOutlineCompositor() *OutlineCompositor {
	return &OutlineCompositor{}
}

// BindScene rebuilds the pipeline for a new scene+camera pair, disposing
// the previous one first. Binding the same scene and camera again reuses
// the live pipeline.
func (c *OutlineCompositor) BindScene(scn *scene.Scene, camera *scene.Camera) {
	if c.pipeline != nil && !c.pipeline.Disposed() &&
		c.pipeline.scene == scn && c.pipeline.camera == camera {
		return
	}
	if c.pipeline != nil {
		c.pipeline.Dispose()
	}
	c.pipeline = NewPipeline(scn, camera, nil)
}

// Pipeline returns the live pipeline, nil before the first bind.
func (c *OutlineCompositor) Pipeline() *Pipeline {
	return c.pipeline
}

// SetSelection replaces the highlight set from the current selection.
func (c *OutlineCompositor) SetSelection(selected []*scene.Object) {
	c.highlighted = c.highlighted[:0]
	for _, obj := range selected {
		obj.Traverse(func(o *scene.Object) {
			if o.Kind.Pickable() {
				c.highlighted = append(c.highlighted, o)
			}
		})
	}
}

// Highlighted returns the objects currently drawn with an outline.
func (c *OutlineCompositor) Highlighted() []*scene.Object {
	return c.highlighted
}

// IsHighlighted reports whether the object is in the outline set.
func (c *OutlineCompositor) IsHighlighted(obj *scene.Object) bool {
	for _, o := range c.highlighted {
		if o == obj {
			return true
		}
	}
	return false
}

// Dispose releases the pipeline and clears the highlight set.
func (c *OutlineCompositor) Dispose() {
	if c.pipeline != nil {
		c.pipeline.Dispose()
	}
	c.highlighted = nil
}
