package viewport

import (
	"log"

	"github.com/lukasried/meshflow/pkg/graph"
)

// Shortcuts is the viewport keyboard surface. Events that originate while
// a text input holds focus are ignored entirely. All collaborators are
// optional: an action that needs a missing one logs a warning and mutates
// nothing.
type Shortcuts struct {
	graph     *graph.Graph
	selection *Selection
	mapper    *ObjectNodeMapper
	gizmo     *TransformGizmo
	outline   *OutlineCompositor
	preview   *PreviewCompositor

	history   HistoryManager
	clipboard ClipboardManager
}

// NewShortcuts wires the keyboard surface into the viewport.
func NewShortcuts(g *graph.Graph, selection *Selection, mapper *ObjectNodeMapper,
	gizmo *TransformGizmo, outline *OutlineCompositor, preview *PreviewCompositor) *Shortcuts {
	return &Shortcuts{
		graph:     g,
		selection: selection,
		mapper:    mapper,
		gizmo:     gizmo,
		outline:   outline,
		preview:   preview,
	}
}

// SetHistoryManager installs the optional undo collaborator.
func (s *Shortcuts) SetHistoryManager(h HistoryManager) {
	s.history = h
}

// SetClipboardManager installs the optional clipboard collaborator.
func (s *Shortcuts) SetClipboardManager(c ClipboardManager) {
	s.clipboard = c
}

// HandleKey processes one key event from the event source.
func (s *Shortcuts) HandleKey(ev KeyEvent) {
	if ev.TextInputFocused {
		return
	}
	switch ev.Key {
	case Key1:
		s.gizmo.SetMode(GizmoTranslate)
	case Key2:
		s.gizmo.SetMode(GizmoRotate)
	case Key3:
		s.gizmo.SetMode(GizmoScale)
	case KeyDelete, KeyBackspace:
		s.deleteSelected()
	case KeyC:
		if ev.Mods.CtrlOrMeta() {
			s.copySelected()
		}
	case KeyX:
		if ev.Mods.CtrlOrMeta() {
			s.cutSelected()
		}
	case KeyV:
		if ev.Mods.CtrlOrMeta() {
			s.paste()
		} else {
			s.toggleSelectedVisibility()
		}
	}
}

// deleteSelected removes the nodes owning the viewport selection from the
// graph, then clears selection state.
func (s *Shortcuts) deleteSelected() {
	ids := s.mapper.NodeIDsForObjects(s.selection.Objects())
	if len(ids) == 0 {
		log.Printf("delete: no nodes resolved from viewport selection, nothing removed")
		return
	}
	for _, id := range ids {
		s.graph.RemoveNode(id)
	}
	s.gizmo.Detach()
	s.selection.Clear()
	s.outline.SetSelection(nil)
	if s.history != nil {
		s.history.RecordState()
	}
}

func (s *Shortcuts) copySelected() {
	if s.clipboard == nil {
		log.Printf("copy: no clipboard manager installed, ignoring")
		return
	}
	ids := s.mapper.NodeIDsForObjects(s.selection.Objects())
	if len(ids) == 0 {
		log.Printf("copy: no nodes resolved from viewport selection, ignoring")
		return
	}
	s.clipboard.Copy(ids)
}

func (s *Shortcuts) cutSelected() {
	if s.clipboard == nil {
		log.Printf("cut: no clipboard manager installed, ignoring")
		return
	}
	ids := s.mapper.NodeIDsForObjects(s.selection.Objects())
	if len(ids) == 0 {
		log.Printf("cut: no nodes resolved from viewport selection, ignoring")
		return
	}
	s.clipboard.Cut(ids)
	s.gizmo.Detach()
	s.selection.Clear()
	s.outline.SetSelection(nil)
}

func (s *Shortcuts) paste() {
	if s.clipboard == nil {
		log.Printf("paste: no clipboard manager installed, ignoring")
		return
	}
	s.clipboard.Paste()
}

// toggleSelectedVisibility flips preview visibility for the selected
// nodes. Only meaningful in all preview mode; the compositor drops the
// call otherwise.
func (s *Shortcuts) toggleSelectedVisibility() {
	if s.preview == nil || s.preview.Mode() != PreviewAll {
		return
	}
	for _, id := range s.mapper.NodeIDsForObjects(s.selection.Objects()) {
		s.preview.ToggleNodeVisibility(id)
	}
}
