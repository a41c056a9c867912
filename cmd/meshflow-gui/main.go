package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/lukasried/meshflow/internal/project"
	"github.com/lukasried/meshflow/internal/viewport"
	"github.com/lukasried/meshflow/pkg/kernel/sdfx"
	"github.com/lukasried/meshflow/pkg/scene"
	"github.com/lukasried/meshflow/pkg/viewer"
)

// The GUI variant renders through the software rasterizer, so it runs
// without GPU drivers; the raylib binary is the fast path.
func main() {
	g, err := project.NewStarterGraph(sdfx.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building starter document: %v\n", err)
		os.Exit(1)
	}

	events := viewport.NewDispatcher()
	view := viewport.New(g, events, viewport.Options{Width: 800, Height: 600})
	defer view.Destroy()

	renderer := viewer.NewRenderer()
	renderer.Highlight = view.OutlineCompositor().IsHighlighted

	widget := viewer.NewWidget(renderer,
		func() *scene.Scene { return view.BoundScene() },
		func() *scene.Camera { return view.ActiveCamera() },
	)
	widget.OnDrag = func(dx, dy float64) {
		events.DispatchPointer(viewport.PointerEvent{
			Button: viewport.ButtonLeft,
			Action: viewport.PointerMove,
			DeltaX: dx,
			DeltaY: dy,
		})
	}
	widget.OnScroll = func(dy float64) {
		events.DispatchPointer(viewport.PointerEvent{
			Button: viewport.ButtonMiddle,
			Action: viewport.PointerScroll,
			DeltaY: dy,
		})
	}
	widget.OnTap = func(x, y float64) {
		w, h := widget.RenderSize()
		view.SetSize(w, h)
		events.DispatchPointer(viewport.PointerEvent{
			X: x, Y: y, Button: viewport.ButtonLeft, Action: viewport.PointerDown,
		})
		events.DispatchPointer(viewport.PointerEvent{
			X: x, Y: y, Button: viewport.ButtonLeft, Action: viewport.PointerUp,
		})
	}

	gui := app.New()
	window := gui.NewWindow("meshflow")
	window.SetContent(widget)
	window.Resize(fyne.NewSize(900, 700))
	window.ShowAndRun()
}
