package viewport

import "github.com/lukasried/meshflow/pkg/graph"

// SelectMode is how a new pick combines with the existing selection.
type SelectMode int

const (
	SelectReplace SelectMode = iota
	SelectAdd
	SelectToggle
)

// NodeSelectionManager is the graph-level (node id) selection collaborator.
// It is a separate source of truth from the viewport's object selection;
// the viewport pushes into it after picking, never reads it back
// implicitly.
type NodeSelectionManager interface {
	SelectNodes(ids []graph.NodeID, mode SelectMode)
	SelectedNodes() []graph.NodeID
}

// HistoryManager groups property writebacks into undoable interactions.
type HistoryManager interface {
	BeginInteraction()
	EndInteraction()
	RecordState()
}

// ClipboardManager receives node-level copy/cut/paste delegations from the
// viewport's keyboard surface.
type ClipboardManager interface {
	Copy(ids []graph.NodeID)
	Cut(ids []graph.NodeID)
	Paste()
}
