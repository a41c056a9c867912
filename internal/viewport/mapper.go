package viewport

import (
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
)

// ObjectNodeMapper resolves between scene objects and the graph nodes that
// produced them. Objects carry the id of their producing node; the mapper
// walks ancestors so that picking a leaf mesh inside a group still resolves
// to the group's node.
type ObjectNodeMapper struct {
	scn *scene.Scene
}

// NewObjectNodeMapper creates a mapper with no scene bound.
func NewObjectNodeMapper() *ObjectNodeMapper {
	return &ObjectNodeMapper{}
}

// SetScene rebinds the mapper to a new scene. A nil scene clears it.
func (m *ObjectNodeMapper) SetScene(scn *scene.Scene) {
	m.scn = scn
}

// NodeForObject returns the graph node id tied to the object, walking up
// the parent chain until a tagged ancestor is found. The second return is
// false when the object has no tagged ancestor.
func (m *ObjectNodeMapper) NodeForObject(obj *scene.Object) (graph.NodeID, bool) {
	if obj == nil {
		return "", false
	}
	tagged := obj.AncestorWithSource()
	if tagged == nil {
		return "", false
	}
	return graph.NodeID(tagged.SourceNodeID), true
}

// ObjectsForNode returns every object in the bound scene produced by the
// given node. Empty when no scene is bound or the node produced nothing.
func (m *ObjectNodeMapper) ObjectsForNode(id graph.NodeID) []*scene.Object {
	if m.scn == nil || m.scn.Root == nil {
		return nil
	}
	return m.scn.Root.FindBySource(string(id))
}

// NodeIDsForObjects maps a set of objects to their producing node ids,
// deduplicated and in first-seen order. Objects without a tagged ancestor
// are skipped.
func (m *ObjectNodeMapper) NodeIDsForObjects(objects []*scene.Object) []graph.NodeID {
	seen := make(map[graph.NodeID]bool)
	var ids []graph.NodeID
	for _, obj := range objects {
		id, ok := m.NodeForObject(obj)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
