package editor

import "github.com/lukasried/meshflow/pkg/graph"

// nodeState and edgeState are the serialized form of one graph revision.
// Property values are scalars or small value structs, so a shallow map
// copy is a deep enough snapshot.
type nodeState struct {
	id       graph.NodeID
	nodeType string
	props    map[string]any
}

type edgeState struct {
	from     graph.NodeID
	fromPort string
	to       graph.NodeID
	toPort   string
}

type revision struct {
	nodes []nodeState
	edges []edgeState
}

// History is an undo stack of whole-graph revisions. RecordState pushes a
// checkpoint after a mutation; Begin/EndInteraction bracket a gizmo drag
// so its stream of intermediate writebacks collapses into one checkpoint.
type History struct {
	graph *graph.Graph

	revisions []revision
	pos       int

	interacting bool
	restoring   bool
}

// NewHistory creates a history seeded with the graph's current state.
func NewHistory(g *graph.Graph) *History {
	h := &History{graph: g}
	h.revisions = []revision{h.capture()}
	return h
}

// BeginInteraction suppresses checkpoints until the matching
// EndInteraction.
func (h *History) BeginInteraction() {
	h.interacting = true
}

// EndInteraction closes the interaction and records one checkpoint for the
// whole of it.
func (h *History) EndInteraction() {
	if !h.interacting {
		return
	}
	h.interacting = false
	h.RecordState()
}

// RecordState pushes the graph's current state onto the undo stack and
// drops any redo tail. Calls during an interaction or a restore are
// ignored.
func (h *History) RecordState() {
	if h.interacting || h.restoring {
		return
	}
	h.revisions = append(h.revisions[:h.pos+1], h.capture())
	h.pos = len(h.revisions) - 1
}

// CanUndo reports whether an earlier revision exists.
func (h *History) CanUndo() bool {
	return h.pos > 0
}

// CanRedo reports whether a later revision exists.
func (h *History) CanRedo() bool {
	return h.pos < len(h.revisions)-1
}

// Undo restores the previous revision.
func (h *History) Undo() {
	if !h.CanUndo() {
		return
	}
	h.pos--
	h.restore(h.revisions[h.pos])
}

// Redo restores the next revision.
func (h *History) Redo() {
	if !h.CanRedo() {
		return
	}
	h.pos++
	h.restore(h.revisions[h.pos])
}

func (h *History) capture() revision {
	var rev revision
	for _, n := range h.graph.Nodes() {
		props := make(map[string]any, len(n.Properties))
		for k, v := range n.Properties {
			props[k] = v
		}
		rev.nodes = append(rev.nodes, nodeState{id: n.ID, nodeType: n.Type, props: props})
	}
	for _, e := range h.graph.Edges() {
		rev.edges = append(rev.edges, edgeState{
			from: e.FromNode, fromPort: e.FromPort,
			to: e.ToNode, toPort: e.ToPort,
		})
	}
	return rev
}

// restore rebuilds the graph to match a revision in one batched change.
func (h *History) restore(rev revision) {
	h.restoring = true
	defer func() { h.restoring = false }()

	h.graph.Apply(func() {
		for _, n := range h.graph.Nodes() {
			h.graph.RemoveNode(n.ID)
		}
		for _, s := range rev.nodes {
			n := graph.NewNode(s.nodeType)
			n.ID = s.id
			for k, v := range s.props {
				n.Properties[k] = v
			}
			h.graph.AddNode(n)
		}
		for _, e := range rev.edges {
			// Edges between restored nodes cannot fail validation; a
			// failure here means the revision itself is corrupt.
			h.graph.Connect(e.from, e.fromPort, e.to, e.toPort)
		}
	})
}
