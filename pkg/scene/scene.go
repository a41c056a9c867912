package scene

// Scene is a renderable scene: a root object tree plus an optional
// node-authored camera. The viewport owns exactly one bound scene at a
// time; preview scenes are built and discarded independently.
type Scene struct {
	Root   *Object
	Camera *Camera // camera authored by the graph, nil if none
}

// NewScene creates a scene with an empty root group
func NewScene() *Scene {
	root := NewObject(KindGroup)
	root.Name = "root"
	return &Scene{Root: root}
}

// Add attaches an object to the scene root
func (s *Scene) Add(obj *Object) {
	s.Root.Add(obj)
}

// Remove detaches an object from the scene root
func (s *Scene) Remove(obj *Object) {
	s.Root.Remove(obj)
}
