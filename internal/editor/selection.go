// Package editor hosts the node-level collaborators the viewport delegates
// to: graph selection, undo history and the node clipboard. All of them
// are optional from the viewport's point of view.
package editor

import (
	"github.com/lukasried/meshflow/internal/viewport"
	"github.com/lukasried/meshflow/pkg/graph"
)

// NodeSelection is the graph-level selection: an ordered set of node ids.
// It is the second source of truth next to the viewport's object
// selection; picking pushes into it, panels read from it.
type NodeSelection struct {
	ids []graph.NodeID

	subscribers map[int]func()
	nextSubID   int
}

// NewNodeSelection creates an empty node selection.
func NewNodeSelection() *NodeSelection {
	return &NodeSelection{subscribers: make(map[int]func())}
}

// OnChange registers a callback fired after every selection change.
func (s *NodeSelection) OnChange(cb func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = cb
	return func() { delete(s.subscribers, id) }
}

// SelectNodes applies the ids with the given mode.
func (s *NodeSelection) SelectNodes(ids []graph.NodeID, mode viewport.SelectMode) {
	switch mode {
	case viewport.SelectReplace:
		s.ids = append(s.ids[:0:0], ids...)
	case viewport.SelectAdd:
		for _, id := range ids {
			if !s.Contains(id) {
				s.ids = append(s.ids, id)
			}
		}
	case viewport.SelectToggle:
		for _, id := range ids {
			if s.Contains(id) {
				s.remove(id)
			} else {
				s.ids = append(s.ids, id)
			}
		}
	}
	s.notify()
}

// SelectedNodes returns the selected node ids in selection order.
func (s *NodeSelection) SelectedNodes() []graph.NodeID {
	out := make([]graph.NodeID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether the node is selected.
func (s *NodeSelection) Contains(id graph.NodeID) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Clear empties the selection.
func (s *NodeSelection) Clear() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = nil
	s.notify()
}

func (s *NodeSelection) remove(id graph.NodeID) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

func (s *NodeSelection) notify() {
	for _, cb := range s.subscribers {
		cb()
	}
}
