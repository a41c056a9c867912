package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/lukasried/meshflow/pkg/scene"
)

// Widget is a fyne canvas object showing a software-rendered viewport.
// Scene and camera are pulled through accessors on every refresh so the
// widget always shows the currently bound state; input is forwarded
// through callbacks for the host to wire into the viewport engine.
type Widget struct {
	widget.BaseWidget

	renderer *Renderer
	scene    func() *scene.Scene
	camera   func() *scene.Camera

	// OnDrag receives pointer deltas while the primary button is held.
	OnDrag func(dx, dy float64)
	// OnScroll receives wheel deltas.
	OnScroll func(dy float64)
	// OnTap receives click positions in widget pixels.
	OnTap func(x, y float64)

	img        *canvas.Image
	width      float64
	height     float64
	dragStart  *fyne.Position
	isDragging bool
}

// NewWidget creates a viewport widget over the given renderer and state
// accessors.
func NewWidget(renderer *Renderer, scn func() *scene.Scene, camera func() *scene.Camera) *Widget {
	w := &Widget{
		renderer: renderer,
		scene:    scn,
		camera:   camera,
		img:      canvas.NewImageFromImage(nil),
		width:    800,
		height:   600,
	}
	w.img.FillMode = canvas.ImageFillStretch
	w.ExtendBaseWidget(w)
	return w
}

// Redraw re-renders the scene into the widget.
func (w *Widget) Redraw() {
	w.img.Image = w.renderer.Render(w.scene(), w.camera(), int(w.width), int(w.height))
	w.img.Refresh()
}

// RenderSize returns the current render dimensions in pixels.
func (w *Widget) RenderSize() (float64, float64) {
	return w.width, w.height
}

// Dragged rotates the view through the host callback.
func (w *Widget) Dragged(event *fyne.DragEvent) {
	if w.dragStart != nil && w.OnDrag != nil {
		w.OnDrag(float64(event.Position.X-w.dragStart.X), float64(event.Position.Y-w.dragStart.Y))
		w.Redraw()
	}
	pos := event.Position
	w.dragStart = &pos
	w.isDragging = true
}

// DragEnd closes a drag gesture.
func (w *Widget) DragEnd() {
	w.dragStart = nil
	w.isDragging = false
}

// Tapped forwards clicks, suppressed right after a drag.
func (w *Widget) Tapped(event *fyne.PointEvent) {
	if w.isDragging {
		return
	}
	if w.OnTap != nil {
		w.OnTap(float64(event.Position.X), float64(event.Position.Y))
		w.Redraw()
	}
}

// Scrolled forwards wheel movement.
func (w *Widget) Scrolled(event *fyne.ScrollEvent) {
	if w.OnScroll != nil {
		w.OnScroll(float64(event.Scrolled.DY))
		w.Redraw()
	}
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return &widgetRenderer{owner: w}
}

type widgetRenderer struct {
	owner *Widget
}

func (r *widgetRenderer) Layout(size fyne.Size) {
	r.owner.width = float64(size.Width)
	r.owner.height = float64(size.Height)
	r.owner.img.Resize(size)
	r.owner.Redraw()
}

func (r *widgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *widgetRenderer) Refresh() {
	canvas.Refresh(r.owner)
}

func (r *widgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.owner.img}
}

func (r *widgetRenderer) Destroy() {}
