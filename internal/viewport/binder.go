package viewport

import (
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
)

// SceneBinder owns the bound scene: on every graph change it locates the
// scene-output node, adopts its scene (or the graph's default scene), and
// republishes to the camera arbiter, object mapper, preview compositor and
// outline pipeline. Selection and gizmo attachment are remapped onto the
// replacement objects by producing-node id so interaction state survives
// the wholesale replacement.
type SceneBinder struct {
	graph     *graph.Graph
	arbiter   *CameraArbiter
	mapper    *ObjectNodeMapper
	selection *Selection
	gizmo     *TransformGizmo
	outline   *OutlineCompositor
	preview   *PreviewCompositor

	bound       *scene.Scene
	unsubscribe func()
}

// NewSceneBinder wires the binder to its dependents and subscribes it to
// graph changes. Rebind runs once immediately so the viewport starts with
// a valid bound scene.
func NewSceneBinder(g *graph.Graph, arbiter *CameraArbiter, mapper *ObjectNodeMapper,
	selection *Selection, gizmo *TransformGizmo, outline *OutlineCompositor,
	preview *PreviewCompositor) *SceneBinder {

	b := &SceneBinder{
		graph:     g,
		arbiter:   arbiter,
		mapper:    mapper,
		selection: selection,
		gizmo:     gizmo,
		outline:   outline,
		preview:   preview,
	}
	b.unsubscribe = g.OnChange(b.Rebind)
	b.Rebind()
	return b
}

// BoundScene returns the scene the viewport currently renders.
func (b *SceneBinder) BoundScene() *scene.Scene {
	return b.bound
}

// Rebind recomputes the bound scene from the graph. It runs synchronously
// inside the change notification, so a mutation is fully reflected before
// the next render tick. Rebinding to the same scene instance is cheap and
// allocates nothing new.
func (b *SceneBinder) Rebind() {
	scn, nodeCamera, isOutput := b.resolveScene()

	if isOutput {
		b.preview.SetSceneOverride(scn)
	} else {
		b.preview.SetSceneOverride(nil)
	}
	b.arbiter.SetNodeCamera(nodeCamera)

	sameScene := scn == b.bound
	b.bound = scn
	b.mapper.SetScene(scn)
	b.gizmo.ensureInScene(scn)
	b.outline.BindScene(scn, b.arbiter.ActiveCamera())

	if !sameScene {
		b.remapSelection()
	}
}

// resolveScene picks the scene-output node's scene when one evaluated
// successfully, otherwise the graph's default scene. The second return is
// the camera the scene supplies, nil when it supplies none.
func (b *SceneBinder) resolveScene() (*scene.Scene, *scene.Camera, bool) {
	out := b.graph.SceneOutputNode()
	if out != nil {
		if port := out.Output("scene"); port != nil {
			if so, ok := port.Value.(*graph.SceneOutput); ok && so != nil && so.Scene != nil {
				return so.Scene, so.Scene.Camera, true
			}
		}
	}
	return b.graph.DefaultScene(), nil, false
}

// remapSelection carries selection and gizmo attachment over to the new
// scene's objects by producing-node id. Objects whose node no longer
// produces anything drop out of the selection.
func (b *SceneBinder) remapSelection() {
	var kept []*scene.Object
	for _, obj := range b.selection.Objects() {
		id, ok := b.mapper.NodeForObject(obj)
		if !ok {
			continue
		}
		successors := b.mapper.ObjectsForNode(id)
		if len(successors) > 0 {
			kept = append(kept, successors[0])
		}
	}
	b.selection.replaceAll(kept)
	b.outline.SetSelection(kept)

	if id := b.gizmo.AttachedNodeID(); id != "" {
		successors := b.mapper.ObjectsForNode(id)
		if len(successors) > 0 {
			b.gizmo.Attach(successors[0], id)
		} else {
			b.gizmo.Detach()
		}
	}
}

// Destroy unsubscribes the binder from graph changes.
func (b *SceneBinder) Destroy() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}
