package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lukasried/meshflow/internal/viewport"
	"github.com/lukasried/meshflow/pkg/geometry"
)

// pollInput translates raylib's polled input into viewport events.
func (a *App) pollInput() {
	mods := viewport.Modifiers{
		Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Alt:   rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		Meta:  rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper),
	}
	pos := rl.GetMousePosition()

	for button, rlButton := range map[viewport.PointerButton]rl.MouseButton{
		viewport.ButtonLeft:   rl.MouseLeftButton,
		viewport.ButtonMiddle: rl.MouseMiddleButton,
		viewport.ButtonRight:  rl.MouseRightButton,
	} {
		if rl.IsMouseButtonPressed(rlButton) {
			a.events.DispatchPointer(viewport.PointerEvent{
				X: float64(pos.X), Y: float64(pos.Y),
				Button: button, Action: viewport.PointerDown, Mods: mods,
			})
		}
		if rl.IsMouseButtonReleased(rlButton) {
			a.events.DispatchPointer(viewport.PointerEvent{
				X: float64(pos.X), Y: float64(pos.Y),
				Button: button, Action: viewport.PointerUp, Mods: mods,
			})
		}
		if rl.IsMouseButtonDown(rlButton) {
			delta := rl.GetMouseDelta()
			if delta.X != 0 || delta.Y != 0 {
				a.events.DispatchPointer(viewport.PointerEvent{
					X: float64(pos.X), Y: float64(pos.Y),
					Button: button, Action: viewport.PointerMove, Mods: mods,
					DeltaX: float64(delta.X), DeltaY: float64(delta.Y),
				})
			}
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.events.DispatchPointer(viewport.PointerEvent{
			X: float64(pos.X), Y: float64(pos.Y),
			Button: viewport.ButtonMiddle, Action: viewport.PointerScroll,
			Mods: mods, DeltaY: float64(wheel),
		})
	}

	for key, rlKey := range map[viewport.Key]int32{
		viewport.Key1:         rl.KeyOne,
		viewport.Key2:         rl.KeyTwo,
		viewport.Key3:         rl.KeyThree,
		viewport.KeyC:         rl.KeyC,
		viewport.KeyV:         rl.KeyV,
		viewport.KeyX:         rl.KeyX,
		viewport.KeyDelete:    rl.KeyDelete,
		viewport.KeyBackspace: rl.KeyBackspace,
	} {
		if rl.IsKeyPressed(rlKey) {
			a.events.DispatchKey(viewport.KeyEvent{Key: key, Mods: mods})
		}
	}

	// Undo/redo live on the frontend, not the viewport shortcut surface.
	if mods.CtrlOrMeta() && rl.IsKeyPressed(rl.KeyZ) {
		if mods.Shift {
			a.history.Redo()
		} else {
			a.history.Undo()
		}
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.view.FitToSelectedObjects()
	}

	a.handleNudge(mods)
}

// handleNudge moves the gizmo-attached object with the arrow keys, going
// through the same writeback path a gizmo drag uses so history grouping
// and live re-evaluation apply.
func (a *App) handleNudge(mods viewport.Modifiers) {
	obj := a.view.Gizmo().Attached()
	if obj == nil {
		return
	}
	step := 0.1
	if mods.Shift {
		step = 1.0
	}
	var dx, dz float64
	if rl.IsKeyPressed(rl.KeyLeft) {
		dx = -step
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		dx = step
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		dz = -step
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		dz = step
	}
	if dx == 0 && dz == 0 {
		return
	}

	sync := a.view.TransformSync()
	sync.Begin()
	t := obj.Transform
	t.Position = t.Position.Add(geometry.NewVector3(dx, 0, dz))
	sync.Change(t)
	sync.End()
}
