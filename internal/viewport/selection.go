package viewport

import "github.com/lukasried/meshflow/pkg/scene"

// Selection is the viewport-level selection: an ordered set of renderable
// objects from the bound scene. It is independent of the graph-level node
// selection; reconciliation between the two is explicit and
// one-directional.
type Selection struct {
	objects []*scene.Object

	subscribers map[int]func()
	nextSubID   int
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{subscribers: make(map[int]func())}
}

// OnChange registers a callback fired after every selection mutation; the
// returned function unsubscribes it.
func (s *Selection) OnChange(cb func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = cb
	return func() { delete(s.subscribers, id) }
}

func (s *Selection) notify() {
	for _, cb := range s.subscribers {
		cb()
	}
}

// Objects returns the selected objects in selection order.
func (s *Selection) Objects() []*scene.Object {
	out := make([]*scene.Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Primary returns the most recently selected object, the only one eligible
// for gizmo attachment. Nil when nothing is selected.
func (s *Selection) Primary() *scene.Object {
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[len(s.objects)-1]
}

// Contains reports whether the object is selected.
func (s *Selection) Contains(obj *scene.Object) bool {
	for _, o := range s.objects {
		if o == obj {
			return true
		}
	}
	return false
}

// Count returns the number of selected objects.
func (s *Selection) Count() int {
	return len(s.objects)
}

// Select applies the object with the given mode: replace clears first, add
// appends (moving an already selected object to primary), toggle removes an
// already selected object.
func (s *Selection) Select(obj *scene.Object, mode SelectMode) {
	if obj == nil {
		return
	}
	switch mode {
	case SelectReplace:
		s.objects = []*scene.Object{obj}
	case SelectAdd:
		s.remove(obj)
		s.objects = append(s.objects, obj)
	case SelectToggle:
		if s.Contains(obj) {
			s.remove(obj)
		} else {
			s.objects = append(s.objects, obj)
		}
	}
	s.notify()
}

func (s *Selection) remove(obj *scene.Object) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.objects) == 0 {
		return
	}
	s.objects = nil
	s.notify()
}

// replaceAll swaps the entire selection in one notification. The binder
// uses this to remap selected objects onto their successors after a scene
// rebind.
func (s *Selection) replaceAll(objects []*scene.Object) {
	s.objects = objects
	s.notify()
}
