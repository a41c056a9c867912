// Package app is the raylib frontend: it opens the window, bridges raylib
// input into the viewport engine and draws the bound scene each frame.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lukasried/meshflow/internal/config"
	"github.com/lukasried/meshflow/internal/editor"
	"github.com/lukasried/meshflow/internal/viewport"
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
	"github.com/lukasried/meshflow/pkg/watcher"
)

type App struct {
	cfg    config.Config
	graph  *graph.Graph
	events *viewport.Dispatcher
	view   *viewport.Viewport

	selection *editor.NodeSelection
	history   *editor.History
	clipboard *editor.Clipboard

	meshes   map[*scene.Geometry]rl.Mesh
	material rl.Material

	configReload chan string
}

// New builds the application around an already populated graph.
func New(g *graph.Graph, cfg config.Config) *App {
	events := viewport.NewDispatcher()
	view := viewport.New(g, events, viewport.Options{
		ClickThresholdPx: cfg.Input.ClickThresholdPx,
		Width:            float64(cfg.Window.Width),
		Height:           float64(cfg.Window.Height),
	})

	a := &App{
		cfg:          cfg,
		graph:        g,
		events:       events,
		view:         view,
		selection:    editor.NewNodeSelection(),
		history:      editor.NewHistory(g),
		clipboard:    editor.NewClipboard(g),
		meshes:       make(map[*scene.Geometry]rl.Mesh),
		configReload: make(chan string, 1),
	}
	view.SetSelectionManager(a.selection)
	view.SetHistoryManager(a.history)
	view.SetClipboardManager(a.clipboard)

	switch cfg.Preview.Mode {
	case "selected":
		view.PreviewManager().SetMode(viewport.PreviewSelected)
	case "all":
		view.PreviewManager().SetMode(viewport.PreviewAll)
	}
	a.applyPreviewMaterial(cfg.Preview.Material)
	return a
}

func (a *App) applyPreviewMaterial(name string) {
	mat := a.view.PreviewManager().Material()
	mat.Kind = scene.ParseMaterialKind(name)
	a.view.PreviewManager().SetMaterial(mat)
}

// WatchConfig reloads preferences when the file changes on disk. Only the
// preview settings apply live; window settings need a restart.
func (a *App) WatchConfig(path string) error {
	w, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	if err := w.Watch([]string{path}, func(p string) {
		select {
		case a.configReload <- p:
		default:
		}
	}); err != nil {
		w.Close()
		return fmt.Errorf("config watch: %w", err)
	}
	w.Start()
	return nil
}

// Run opens the window and drives the frame loop until close.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), "meshflow")
	rl.SetTargetFPS(int32(a.cfg.Window.TargetFPS))
	rl.SetExitKey(0)

	a.material = rl.LoadMaterialDefault()

	for !rl.WindowShouldClose() {
		a.drainConfigReload()
		a.pollInput()
		a.view.SetSize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		camera := a.raylibCamera()
		rl.BeginMode3D(camera)
		a.drawGrid()
		a.drawScene()
		rl.EndMode3D()

		a.drawHelp()
		rl.EndDrawing()
	}

	a.unloadMeshes()
	a.view.Destroy()
	rl.CloseWindow()
}

// drainConfigReload applies a pending preferences reload on the main
// thread, between frames.
func (a *App) drainConfigReload() {
	select {
	case path := <-a.configReload:
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("config reload failed: %v\n", err)
			return
		}
		a.cfg.Preview = cfg.Preview
		a.applyPreviewMaterial(cfg.Preview.Material)
	default:
	}
}

func (a *App) raylibCamera() rl.Camera3D {
	cam := a.view.ActiveCamera()
	return rl.Camera3D{
		Position:   rlVec(cam.Position.X, cam.Position.Y, cam.Position.Z),
		Target:     rlVec(cam.Target.X, cam.Target.Y, cam.Target.Z),
		Up:         rlVec(cam.Up.X, cam.Up.Y, cam.Up.Z),
		Fovy:       float32(cam.FOV * 180 / 3.14159265),
		Projection: rl.CameraPerspective,
	}
}

func rlVec(x, y, z float64) rl.Vector3 {
	return rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
}

func (a *App) drawHelp() {
	help := "LMB: select/orbit  RMB: pan  wheel: zoom  1/2/3: gizmo mode  Del: delete  Ctrl+C/X/V: clipboard"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-24, 14, rl.Gray)
	rl.DrawText(fmt.Sprintf("preview: %s", a.view.PreviewManager().Mode()), 10, 10, 14, rl.Gray)
}
