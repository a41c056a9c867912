package viewport

import (
	"log"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
)

// GizmoMode selects which component of the transform the gizmo
// manipulates.
type GizmoMode int

const (
	GizmoTranslate GizmoMode = iota
	GizmoRotate
	GizmoScale
)

func (m GizmoMode) String() string {
	switch m {
	case GizmoTranslate:
		return "translate"
	case GizmoRotate:
		return "rotate"
	case GizmoScale:
		return "scale"
	default:
		return "unknown"
	}
}

// TransformGizmo is the persistent manipulator helper. It lives as an
// untagged object in the bound scene so rebinds can re-attach it, and it
// tracks which object (and producing node) it is attached to.
type TransformGizmo struct {
	helper *scene.Object
	mode   GizmoMode

	attached       *scene.Object
	attachedNodeID graph.NodeID
}

// NewTransformGizmo creates a detached gizmo in translate mode.
func NewTransformGizmo() *TransformGizmo {
	helper := scene.NewObject(scene.KindGroup)
	helper.Name = "gizmo"
	helper.Visible = false
	return &TransformGizmo{helper: helper}
}

// Helper returns the scene object that hosts the gizmo geometry. It never
// carries a source-node tag and is skipped by picking.
func (g *TransformGizmo) Helper() *scene.Object {
	return g.helper
}

// Mode returns the current manipulation mode.
func (g *TransformGizmo) Mode() GizmoMode {
	return g.mode
}

// SetMode switches the manipulation mode.
func (g *TransformGizmo) SetMode(mode GizmoMode) {
	g.mode = mode
}

// Attach binds the gizmo to an object produced by the given node; it
// becomes visible and follows the object's transform.
func (g *TransformGizmo) Attach(obj *scene.Object, nodeID graph.NodeID) {
	g.attached = obj
	g.attachedNodeID = nodeID
	g.helper.Visible = obj != nil
	if obj != nil {
		g.helper.Transform = obj.Transform
	}
}

// Detach releases the attached object and hides the gizmo.
func (g *TransformGizmo) Detach() {
	g.attached = nil
	g.attachedNodeID = ""
	g.helper.Visible = false
}

// Attached returns the object the gizmo is bound to, or nil.
func (g *TransformGizmo) Attached() *scene.Object {
	return g.attached
}

// AttachedNodeID returns the producing node of the attached object, empty
// when detached.
func (g *TransformGizmo) AttachedNodeID() graph.NodeID {
	return g.attachedNodeID
}

// ensureInScene parents the helper under the scene root if it is not
// already there. Called on every rebind; safe to call repeatedly.
func (g *TransformGizmo) ensureInScene(scn *scene.Scene) {
	if scn == nil || scn.Root == nil {
		return
	}
	if g.helper.Parent() == scn.Root {
		return
	}
	scn.Root.Add(g.helper)
}

// TransformSync pushes gizmo manipulation back into node properties. Every
// intermediate change event writes the attached object's transform into
// the producing node synchronously so downstream preview stays live during
// the drag; begin and end bracket the drag for undo grouping.
type TransformSync struct {
	graph   *graph.Graph
	gizmo   *TransformGizmo
	arbiter *CameraArbiter
	history HistoryManager

	dragging bool
}

// NewTransformSync wires the sync between gizmo, graph and camera arbiter.
func NewTransformSync(g *graph.Graph, gizmo *TransformGizmo, arbiter *CameraArbiter) *TransformSync {
	return &TransformSync{graph: g, gizmo: gizmo, arbiter: arbiter}
}

// SetHistoryManager installs the optional undo-grouping collaborator.
func (s *TransformSync) SetHistoryManager(h HistoryManager) {
	s.history = h
}

// Dragging reports whether a gizmo drag is in progress; picking must not
// fire while it is.
func (s *TransformSync) Dragging() bool {
	return s.dragging
}

// Begin marks the start of a gizmo drag: camera controls freeze and an
// undo interaction opens when a history manager is present.
func (s *TransformSync) Begin() {
	if s.gizmo.Attached() == nil {
		return
	}
	s.dragging = true
	s.arbiter.SetDragging(true)
	if s.history != nil {
		s.history.BeginInteraction()
	}
}

// Change applies one intermediate drag step: the attached object takes the
// new transform and the producing node's properties are updated in a
// single graph write.
func (s *TransformSync) Change(t geometry.Transform) {
	obj := s.gizmo.Attached()
	if obj == nil {
		return
	}
	obj.Transform = t
	s.gizmo.helper.Transform = t

	nodeID := s.gizmo.AttachedNodeID()
	if nodeID == "" {
		log.Printf("transform sync: attached object has no producing node, skipping writeback")
		return
	}
	if err := s.graph.SetProperties(nodeID, map[string]any{
		graph.PropPosition: t.Position,
		graph.PropRotation: t.Rotation,
		graph.PropScale:    t.Scale,
	}); err != nil {
		log.Printf("transform sync: writeback to node %s failed: %v", nodeID, err)
	}
}

// End closes the drag: the undo interaction is committed and camera
// controls may thaw.
func (s *TransformSync) End() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.arbiter.SetDragging(false)
	if s.history != nil {
		s.history.EndInteraction()
	}
}
