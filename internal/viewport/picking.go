package viewport

import (
	"math"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/scene"
)

// Picker turns pointer clicks into selection changes. A pointer-up only
// counts as a click when the matching pointer-down was within the pixel
// threshold and no gizmo drag is in progress; drags of any length perform
// no selection change.
type Picker struct {
	arbiter   *CameraArbiter
	mapper    *ObjectNodeMapper
	selection *Selection
	gizmo     *TransformGizmo
	outline   *OutlineCompositor
	binder    *SceneBinder
	sync      *TransformSync

	width, height float64
	threshold     float64

	downX, downY float64
	pointerDown  bool

	nodeSelection NodeSelectionManager
	preview       *PreviewCompositor
}

// NewPicker wires the picker into the selection pipeline. threshold is the
// click-vs-drag pixel distance.
func NewPicker(binder *SceneBinder, arbiter *CameraArbiter, mapper *ObjectNodeMapper,
	selection *Selection, gizmo *TransformGizmo, outline *OutlineCompositor,
	sync *TransformSync, threshold float64) *Picker {

	if threshold <= 0 {
		threshold = 5.0
	}
	return &Picker{
		binder:    binder,
		arbiter:   arbiter,
		mapper:    mapper,
		selection: selection,
		gizmo:     gizmo,
		outline:   outline,
		sync:      sync,
		threshold: threshold,
		width:     800,
		height:    600,
	}
}

// SetSize updates the viewport dimensions used for ray construction.
func (p *Picker) SetSize(width, height float64) {
	if width > 0 && height > 0 {
		p.width = width
		p.height = height
	}
}

// SetNodeSelectionManager installs the optional graph-level selection
// collaborator that picking pushes into.
func (p *Picker) SetNodeSelectionManager(sel NodeSelectionManager) {
	p.nodeSelection = sel
}

// SetPreviewCompositor lets picking notify the preview of selection
// changes.
func (p *Picker) SetPreviewCompositor(preview *PreviewCompositor) {
	p.preview = preview
}

// HandlePointer processes one pointer event from the event source.
func (p *Picker) HandlePointer(ev PointerEvent) {
	if ev.Button != ButtonLeft {
		return
	}
	switch ev.Action {
	case PointerDown:
		p.pointerDown = true
		p.downX, p.downY = ev.X, ev.Y
	case PointerUp:
		if !p.pointerDown {
			return
		}
		p.pointerDown = false
		if p.sync != nil && p.sync.Dragging() {
			return
		}
		dist := math.Hypot(ev.X-p.downX, ev.Y-p.downY)
		if dist >= p.threshold {
			return
		}
		p.performSelection(ev)
	}
}

// performSelection casts a ray through the click point and resolves the
// hit to its tagged ancestor.
func (p *Picker) performSelection(ev PointerEvent) {
	mode := selectModeFor(ev.Mods)
	hit := p.pick(ev.X, ev.Y)

	if hit == nil {
		if mode == SelectReplace {
			p.selection.Clear()
			p.gizmo.Detach()
			p.publish()
		}
		return
	}

	p.selection.Select(hit, mode)
	if primary := p.selection.Primary(); primary != nil {
		if id, ok := p.mapper.NodeForObject(primary); ok {
			p.gizmo.Attach(primary, id)
		}
	} else {
		p.gizmo.Detach()
	}
	p.publish()
}

// publish mirrors the viewport selection into the outline set and the
// node-level collaborators.
func (p *Picker) publish() {
	selected := p.selection.Objects()
	p.outline.SetSelection(selected)
	if p.nodeSelection != nil {
		p.nodeSelection.SelectNodes(p.mapper.NodeIDsForObjects(selected), SelectReplace)
	}
	if p.preview != nil {
		p.preview.NotifySelectionChanged()
	}
}

func selectModeFor(mods Modifiers) SelectMode {
	switch {
	case mods.Shift:
		return SelectAdd
	case mods.CtrlOrMeta():
		return SelectToggle
	default:
		return SelectReplace
	}
}

// pick returns the tagged selection unit under the screen point, nil when
// the ray misses everything pickable.
func (p *Picker) pick(x, y float64) *scene.Object {
	scn := p.binder.BoundScene()
	if scn == nil || scn.Root == nil {
		return nil
	}
	camera := p.arbiter.ActiveCamera()
	if camera == nil {
		return nil
	}
	ray := camera.Unproject(x, y, p.width, p.height)

	var best *scene.Object
	bestDist := math.Inf(1)

	scn.Root.Traverse(func(o *scene.Object) {
		if !o.Visible || !o.Kind.Pickable() {
			return
		}
		tagged := o.AncestorWithSource()
		if tagged == nil {
			return
		}
		dist, ok := p.intersect(ray, o)
		if ok && dist < bestDist {
			bestDist = dist
			best = tagged
		}
	})
	return best
}

// intersect tests the ray against one leaf: meshes are tested per world
// space triangle, line and point leaves against their world bounding box.
func (p *Picker) intersect(ray geometry.Ray, o *scene.Object) (float64, bool) {
	if o.Kind == scene.KindMesh && o.Geometry != nil {
		return p.intersectMesh(ray, o)
	}
	box := o.BoundingBox()
	if box.IsEmpty() {
		return 0, false
	}
	return ray.IntersectBox(box)
}

func (p *Picker) intersectMesh(ray geometry.Ray, o *scene.Object) (float64, bool) {
	closest := math.Inf(1)
	found := false
	for i := 0; i < o.Geometry.TriangleCount(); i++ {
		tri := o.Geometry.Triangle(i).Transformed(o.LocalToWorld)
		if dist, ok := ray.IntersectTriangle(tri); ok && dist < closest {
			closest = dist
			found = true
		}
	}
	return closest, found
}
