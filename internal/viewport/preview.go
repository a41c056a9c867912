package viewport

import (
	"math"
	"sort"

	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/scene"
)

// PreviewMode selects which nodes contribute to the preview scene.
type PreviewMode int

const (
	PreviewNone PreviewMode = iota
	PreviewSelected
	PreviewAll
)

func (m PreviewMode) String() string {
	switch m {
	case PreviewNone:
		return "none"
	case PreviewSelected:
		return "selected"
	case PreviewAll:
		return "all"
	default:
		return "unknown"
	}
}

// PreviewCompositor maintains a disposable secondary scene built from node
// output payloads, for visual feedback before a full scene output exists.
// It rebuilds the scene wholesale on every graph change and, in selected
// mode, on every node-selection change.
type PreviewCompositor struct {
	graph     *graph.Graph
	selection NodeSelectionManager

	mode     PreviewMode
	material scene.Material
	hidden   map[graph.NodeID]bool
	override *scene.Scene

	preview *scene.Scene

	subscribers map[int]func()
	nextSubID   int
	unsubscribe func()
}

// NewPreviewCompositor creates a compositor in none mode subscribed to the
// graph's change notifications.
func NewPreviewCompositor(g *graph.Graph) *PreviewCompositor {
	c := &PreviewCompositor{
		graph:       g,
		material:    scene.Material{Kind: scene.MaterialStandard, Color: scene.Color{R: 120, G: 160, B: 220, A: 255}},
		hidden:      make(map[graph.NodeID]bool),
		preview:     scene.NewScene(),
		subscribers: make(map[int]func()),
	}
	c.unsubscribe = g.OnChange(c.rebuild)
	return c
}

// SetSelectionManager installs the node-level selection collaborator that
// scopes selected mode.
func (c *PreviewCompositor) SetSelectionManager(sel NodeSelectionManager) {
	c.selection = sel
	if c.mode == PreviewSelected {
		c.rebuild()
	}
}

// OnChange registers a callback fired after every preview rebuild; the
// returned function unsubscribes it.
func (c *PreviewCompositor) OnChange(cb func()) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = cb
	return func() { delete(c.subscribers, id) }
}

// Scene returns the current preview scene.
func (c *PreviewCompositor) Scene() *scene.Scene {
	return c.preview
}

// Mode returns the current preview mode.
func (c *PreviewCompositor) Mode() PreviewMode {
	return c.mode
}

// SetMode switches the preview mode and rebuilds. The hidden-node set is
// kept across mode switches; it is only consulted while in all mode.
func (c *PreviewCompositor) SetMode(mode PreviewMode) {
	if c.mode == mode {
		return
	}
	c.mode = mode
	c.rebuild()
}

// Material returns the active preview material.
func (c *PreviewCompositor) Material() scene.Material {
	return c.material
}

// SetMaterial swaps the preview material and re-derives the whole preview
// scene with it.
func (c *PreviewCompositor) SetMaterial(m scene.Material) {
	c.material = m
	c.rebuild()
}

// SetSceneOverride records whether an authoritative scene output exists;
// nil means the viewport is on the default-scene fallback, where the
// preview scene is the main visual feedback.
func (c *PreviewCompositor) SetSceneOverride(scn *scene.Scene) {
	c.override = scn
}

// SceneOverride returns the authoritative scene, nil on the fallback path.
func (c *PreviewCompositor) SceneOverride() *scene.Scene {
	return c.override
}

// ToggleNodeVisibility flips a node in or out of the hidden set. Outside
// all mode the call is a no-op.
func (c *PreviewCompositor) ToggleNodeVisibility(id graph.NodeID) {
	if c.mode != PreviewAll {
		return
	}
	if c.hidden[id] {
		delete(c.hidden, id)
	} else {
		c.hidden[id] = true
	}
	c.rebuild()
}

// NodeHidden reports whether a node is in the hidden set.
func (c *PreviewCompositor) NodeHidden(id graph.NodeID) bool {
	return c.hidden[id]
}

// NotifySelectionChanged rebuilds the preview when selected mode tracks
// the node-level selection.
func (c *PreviewCompositor) NotifySelectionChanged() {
	if c.mode == PreviewSelected {
		c.rebuild()
	}
}

// Destroy detaches the compositor from the graph.
func (c *PreviewCompositor) Destroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// rebuild discards the preview scene and recomposes it from scratch for
// the current mode.
func (c *PreviewCompositor) rebuild() {
	c.preview = scene.NewScene()

	switch c.mode {
	case PreviewNone:
		// stays empty
	case PreviewSelected:
		if c.selection != nil {
			for _, id := range c.selectedNodeIDs() {
				c.addNodePreview(id)
			}
		}
	case PreviewAll:
		for _, n := range c.graph.Nodes() {
			if c.hidden[n.ID] {
				continue
			}
			c.addNodePreview(n.ID)
		}
	}
	c.notify()
}

func (c *PreviewCompositor) selectedNodeIDs() []graph.NodeID {
	ids := c.selection.SelectedNodes()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// addNodePreview classifies the node's output payload and derives a
// preview object from it. Nodes without a renderable payload contribute
// nothing.
func (c *PreviewCompositor) addNodePreview(id graph.NodeID) {
	n := c.graph.Node(id)
	if n == nil {
		return
	}
	for _, name := range outputOrder(n) {
		port := n.Output(name)
		if port == nil || port.Value == nil {
			continue
		}
		switch v := port.Value.(type) {
		case *scene.Object:
			clone := v.Clone()
			c.preview.Add(clone)
			return
		case *scene.Geometry:
			obj := scene.NewObject(scene.KindMesh)
			obj.Name = n.Type
			obj.SourceNodeID = string(id)
			obj.Geometry = v
			obj.Material = c.material
			c.preview.Add(obj)
			return
		case scene.Material:
			obj := scene.NewObject(scene.KindMesh)
			obj.Name = "material preview"
			obj.SourceNodeID = string(id)
			obj.Geometry = proxySphere()
			obj.Material = scene.Material{Kind: c.material.Kind, Color: v.Color}
			c.preview.Add(obj)
			return
		}
	}
}

func outputOrder(n *graph.Node) []string {
	names := make([]string, 0, len(n.Outputs))
	for name := range n.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *PreviewCompositor) notify() {
	for _, cb := range c.subscribers {
		cb()
	}
}

// proxySphere builds the unit sphere mesh used to make material-only
// payloads visually inspectable.
func proxySphere() *scene.Geometry {
	const rings, sectors = 12, 18
	g := &scene.Geometry{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / rings
		for s := 0; s <= sectors; s++ {
			theta := 2 * math.Pi * float64(s) / sectors
			x := math.Sin(phi) * math.Cos(theta)
			y := math.Cos(phi)
			z := math.Sin(phi) * math.Sin(theta)
			g.Vertices = append(g.Vertices, float32(x), float32(y), float32(z))
			g.Normals = append(g.Normals, float32(x), float32(y), float32(z))
		}
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			a := uint32(r*(sectors+1) + s)
			b := a + sectors + 1
			g.Indices = append(g.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return g
}
