package viewport

import (
	"log"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
)

// Viewport assembles the synchronization engine: scene binding, camera
// arbitration, picking, selection, transform sync, outline and preview
// composition. Frontends feed it pointer and key events through an
// EventSource and read the bound scene plus active camera back each frame.
type Viewport struct {
	graph *graph.Graph

	selection *Selection
	mapper    *ObjectNodeMapper
	controls  *OrbitControls
	arbiter   *CameraArbiter
	gizmo     *TransformGizmo
	outline   *OutlineCompositor
	preview   *PreviewCompositor
	binder    *SceneBinder
	sync      *TransformSync
	picker    *Picker
	shortcuts *Shortcuts

	nodeSelection NodeSelectionManager

	unsubPointer func()
	unsubKey     func()
}

// Options tune viewport construction.
type Options struct {
	// ClickThresholdPx is the click-vs-drag pixel distance; zero means the
	// 5px default.
	ClickThresholdPx float64
	// Width and Height are the initial viewport dimensions in device
	// pixels; zero means 800x600.
	Width, Height float64
}

// New builds a viewport over the graph and subscribes it to the event
// source. A nil events source leaves input unwired, which the tests use.
func New(g *graph.Graph, events EventSource, opts Options) *Viewport {
	defaultCamera := g.DefaultCamera()
	controls := NewOrbitControls(defaultCamera)

	v := &Viewport{
		graph:     g,
		selection: NewSelection(),
		mapper:    NewObjectNodeMapper(),
		controls:  controls,
		arbiter:   NewCameraArbiter(defaultCamera, controls),
		gizmo:     NewTransformGizmo(),
		outline:   NewOutlineCompositor(),
		preview:   NewPreviewCompositor(g),
	}
	v.sync = NewTransformSync(g, v.gizmo, v.arbiter)
	v.binder = NewSceneBinder(g, v.arbiter, v.mapper, v.selection, v.gizmo, v.outline, v.preview)
	v.picker = NewPicker(v.binder, v.arbiter, v.mapper, v.selection, v.gizmo, v.outline, v.sync, opts.ClickThresholdPx)
	v.picker.SetPreviewCompositor(v.preview)
	v.shortcuts = NewShortcuts(g, v.selection, v.mapper, v.gizmo, v.outline, v.preview)

	if opts.Width > 0 && opts.Height > 0 {
		v.picker.SetSize(opts.Width, opts.Height)
	}
	if events != nil {
		v.unsubPointer = events.OnPointer(v.handlePointer)
		v.unsubKey = events.OnKey(v.shortcuts.HandleKey)
	}
	return v
}

// handlePointer routes pointer input: clicks feed picking, moves and
// scrolls drive the orbit controls when they are live.
func (v *Viewport) handlePointer(ev PointerEvent) {
	v.picker.HandlePointer(ev)

	if ev.Action == PointerMove {
		switch ev.Button {
		case ButtonLeft:
			v.controls.Rotate(ev.DeltaX, ev.DeltaY)
		case ButtonMiddle, ButtonRight:
			v.controls.Pan(ev.DeltaX, ev.DeltaY)
		}
	}
	if ev.Action == PointerScroll {
		v.controls.Zoom(ev.DeltaY)
	}
}

// SetSize updates the viewport dimensions in device pixels.
func (v *Viewport) SetSize(width, height float64) {
	v.picker.SetSize(width, height)
}

// BoundScene returns the scene the viewport currently renders.
func (v *Viewport) BoundScene() *scene.Scene {
	return v.binder.BoundScene()
}

// ActiveCamera returns the camera that currently renders the viewport.
func (v *Viewport) ActiveCamera() *scene.Camera {
	return v.arbiter.ActiveCamera()
}

// SetActiveCamera installs an externally supplied camera; nil hands
// authority back to the interactive default camera.
func (v *Viewport) SetActiveCamera(camera *scene.Camera) {
	v.arbiter.SetNodeCamera(camera)
}

// SetControlsEnabled toggles the user-facing camera lock.
func (v *Viewport) SetControlsEnabled(enabled bool) {
	v.arbiter.SetUserEnabled(enabled)
}

// ControlsEnabled reports whether free-camera input is live.
func (v *Viewport) ControlsEnabled() bool {
	return v.arbiter.ControlsEnabled()
}

// SetSelectionManager installs the node-level selection collaborator.
func (v *Viewport) SetSelectionManager(sel NodeSelectionManager) {
	v.nodeSelection = sel
	v.picker.SetNodeSelectionManager(sel)
	v.preview.SetSelectionManager(sel)
}

// SetHistoryManager installs the undo collaborator.
func (v *Viewport) SetHistoryManager(h HistoryManager) {
	v.sync.SetHistoryManager(h)
	v.shortcuts.SetHistoryManager(h)
}

// SetClipboardManager installs the clipboard collaborator.
func (v *Viewport) SetClipboardManager(c ClipboardManager) {
	v.shortcuts.SetClipboardManager(c)
}

// GetViewportSelectionManager returns the viewport-level selection.
func (v *Viewport) GetViewportSelectionManager() *Selection {
	return v.selection
}

// GetObjectNodeMapper returns the object-to-node mapper for the bound
// scene.
func (v *Viewport) GetObjectNodeMapper() *ObjectNodeMapper {
	return v.mapper
}

// PreviewManager returns the preview compositor.
func (v *Viewport) PreviewManager() *PreviewCompositor {
	return v.preview
}

// OutlineCompositor returns the selection-outline state for renderers.
func (v *Viewport) OutlineCompositor() *OutlineCompositor {
	return v.outline
}

// Gizmo returns the transform gizmo.
func (v *Viewport) Gizmo() *TransformGizmo {
	return v.gizmo
}

// TransformSync returns the gizmo-to-node synchronizer for frontends to
// drive with their manipulation events.
func (v *Viewport) TransformSync() *TransformSync {
	return v.sync
}

// Controls returns the orbit controls for frontends that drive them
// directly.
func (v *Viewport) Controls() *OrbitControls {
	return v.controls
}

// FitToSelectedObjects frames the union bounding box of the current
// viewport selection; with nothing selected it frames the whole bound
// scene.
func (v *Viewport) FitToSelectedObjects() {
	box := geometry.NewBoundingBox()
	objects := v.selection.Objects()
	if len(objects) == 0 {
		if scn := v.binder.BoundScene(); scn != nil && scn.Root != nil {
			box = scn.Root.BoundingBox()
		}
	} else {
		for _, obj := range objects {
			box = box.Union(obj.BoundingBox())
		}
	}
	if box.IsEmpty() {
		log.Printf("fit to selection: nothing to frame")
		return
	}
	v.controls.FitBounds(box)
}

// Destroy tears the viewport down: input unsubscribes, the binder and
// preview detach from the graph, and the outline pipeline is disposed.
func (v *Viewport) Destroy() {
	if v.unsubPointer != nil {
		v.unsubPointer()
		v.unsubPointer = nil
	}
	if v.unsubKey != nil {
		v.unsubKey()
		v.unsubKey = nil
	}
	v.binder.Destroy()
	v.preview.Destroy()
	v.outline.Dispose()
	v.gizmo.Detach()
}
