// Package viewport implements the synchronization engine between the
// dataflow graph and the interactive 3D view: scene rebinding on graph
// change, camera authority arbitration, pointer picking, selection,
// gizmo-to-property writeback, outline highlighting and preview
// composition. It has no rendering backend dependency; frontends feed it
// events through the EventSource abstraction and draw from its state.
package viewport

// PointerButton identifies a pointer button.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	ButtonMiddle
	ButtonRight
)

// PointerAction is the kind of pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerUp
	PointerMove
	PointerScroll
)

// Key identifies the keys the viewport shortcut surface reacts to.
type Key int

const (
	KeyNone Key = iota
	Key1
	Key2
	Key3
	KeyC
	KeyV
	KeyX
	KeyDelete
	KeyBackspace
)

// Modifiers is the modifier-key state captured with an event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool // cmd on macOS
}

// CtrlOrMeta reports whether the platform "command" modifier is held.
func (m Modifiers) CtrlOrMeta() bool {
	return m.Ctrl || m.Meta
}

// PointerEvent is a pointer interaction in viewport device pixels.
type PointerEvent struct {
	X, Y   float64
	Button PointerButton
	Action PointerAction
	Mods   Modifiers
	DeltaX float64 // motion delta for PointerMove
	DeltaY float64 // motion delta, or scroll amount for PointerScroll
}

// KeyEvent is a key press. TextInputFocused marks events that originated
// while a text editing widget held focus; the shortcut surface ignores
// those.
type KeyEvent struct {
	Key              Key
	Mods             Modifiers
	TextInputFocused bool
}

// EventSource delivers pointer and key events to subscribers. Injecting it
// keeps the viewport testable without a real display surface.
type EventSource interface {
	OnPointer(cb func(PointerEvent)) func()
	OnKey(cb func(KeyEvent)) func()
}

// Dispatcher is the canonical EventSource: frontends (and tests) push
// events in, subscribers receive them synchronously.
type Dispatcher struct {
	pointerSubs map[int]func(PointerEvent)
	keySubs     map[int]func(KeyEvent)
	nextID      int
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		pointerSubs: make(map[int]func(PointerEvent)),
		keySubs:     make(map[int]func(KeyEvent)),
	}
}

// OnPointer subscribes to pointer events; the returned function
// unsubscribes.
func (d *Dispatcher) OnPointer(cb func(PointerEvent)) func() {
	id := d.nextID
	d.nextID++
	d.pointerSubs[id] = cb
	return func() { delete(d.pointerSubs, id) }
}

// OnKey subscribes to key events; the returned function unsubscribes.
func (d *Dispatcher) OnKey(cb func(KeyEvent)) func() {
	id := d.nextID
	d.nextID++
	d.keySubs[id] = cb
	return func() { delete(d.keySubs, id) }
}

// DispatchPointer delivers a pointer event to all subscribers.
func (d *Dispatcher) DispatchPointer(e PointerEvent) {
	for _, cb := range d.pointerSubs {
		cb(e)
	}
}

// DispatchKey delivers a key event to all subscribers.
func (d *Dispatcher) DispatchKey(e KeyEvent) {
	for _, cb := range d.keySubs {
		cb(e)
	}
}
