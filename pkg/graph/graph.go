// Package graph defines the dataflow document the viewport observes: nodes
// with ports and properties, edges between them, and a change notification
// fired on every structural or value mutation. Evaluation produces the
// renderable payloads on output ports; the designated scene-output node
// supplies the viewport's bound scene.
package graph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/kernel"
	"github.com/lukasried/meshflow/pkg/scene"
)

// SceneOutput wraps the renderable scene produced by a scene-output node.
type SceneOutput struct {
	Scene *scene.Scene
}

// Graph is a mutable dataflow document. It is not safe for concurrent use;
// the editor drives all mutations from a single event loop.
type Graph struct {
	nodes map[NodeID]*Node
	edges map[string]*Edge

	kernel kernel.Kernel

	subscribers map[int]func()
	nextSubID   int
	muted       bool

	defaultScene  *scene.Scene
	defaultCamera *scene.Camera
}

// New creates an empty graph evaluating primitives through the given
// geometry kernel.
func New(k kernel.Kernel) *Graph {
	return &Graph{
		nodes:       make(map[NodeID]*Node),
		edges:       make(map[string]*Edge),
		kernel:      k,
		subscribers: make(map[int]func()),
	}
}

// OnChange registers a callback fired after every mutation. The returned
// function unsubscribes it.
func (g *Graph) OnChange(cb func()) func() {
	id := g.nextSubID
	g.nextSubID++
	g.subscribers[id] = cb
	return func() {
		delete(g.subscribers, id)
	}
}

// notify re-evaluates the graph and informs subscribers. Rebinding happens
// synchronously inside these callbacks, before the next render tick.
func (g *Graph) notify() {
	if g.muted {
		return
	}
	g.Evaluate()
	for _, cb := range g.subscribers {
		cb()
	}
}

// Apply runs a batch of mutations as a single change: evaluation and
// subscriber notification fire once when the batch returns. Undo restore
// and clipboard paste use this to avoid a notification per step.
func (g *Graph) Apply(mutate func()) {
	g.muted = true
	mutate()
	g.muted = false
	g.notify()
}

// AddNode inserts a node and fires a change.
func (g *Graph) AddNode(n *Node) {
	g.nodes[n.ID] = n
	g.notify()
}

// RemoveNode deletes a node and all its incident edges, then fires a change.
// Removing an unknown id is a no-op.
func (g *Graph) RemoveNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	for edgeID, e := range g.edges {
		if e.FromNode == id || e.ToNode == id {
			delete(g.edges, edgeID)
		}
	}
	g.notify()
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Nodes returns all nodes sorted by id for deterministic iteration.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Edges returns all edges sorted by id for deterministic iteration.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges
}

// Connect wires an output port to an input port and fires a change.
func (g *Graph) Connect(from NodeID, fromPort string, to NodeID, toPort string) (*Edge, error) {
	src := g.nodes[from]
	dst := g.nodes[to]
	if src == nil || dst == nil {
		return nil, fmt.Errorf("graph: connect: unknown node")
	}
	if src.Outputs[fromPort] == nil {
		return nil, fmt.Errorf("graph: node %q has no output port %q", src.Type, fromPort)
	}
	if dst.Inputs[toPort] == nil {
		return nil, fmt.Errorf("graph: node %q has no input port %q", dst.Type, toPort)
	}
	e := &Edge{
		ID:       uuid.NewString(),
		FromNode: from,
		FromPort: fromPort,
		ToNode:   to,
		ToPort:   toPort,
	}
	g.edges[e.ID] = e
	g.notify()
	return e, nil
}

// Disconnect removes an edge and fires a change.
func (g *Graph) Disconnect(edgeID string) {
	if _, ok := g.edges[edgeID]; !ok {
		return
	}
	delete(g.edges, edgeID)
	g.notify()
}

// SetProperty writes a node property and fires a change. This is the entry
// point for the viewport's transform writeback during gizmo drags.
func (g *Graph) SetProperty(id NodeID, key string, value any) error {
	n := g.nodes[id]
	if n == nil {
		return fmt.Errorf("graph: set property: unknown node %s", id)
	}
	n.Properties[key] = value
	g.notify()
	return nil
}

// SetProperties writes several node properties with a single change
// notification, so a gizmo drag updating position, rotation and scale
// triggers one re-evaluation per manipulation event.
func (g *Graph) SetProperties(id NodeID, props map[string]any) error {
	n := g.nodes[id]
	if n == nil {
		return fmt.Errorf("graph: set properties: unknown node %s", id)
	}
	for key, value := range props {
		n.Properties[key] = value
	}
	g.notify()
	return nil
}

// edgesInto returns the edges feeding the given input port, sorted for
// deterministic fan-in order.
func (g *Graph) edgesInto(id NodeID, port string) []*Edge {
	var result []*Edge
	for _, e := range g.edges {
		if e.ToNode == id && e.ToPort == port {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// DefaultScene returns the fallback scene rendered when no scene-output
// node exists. It is built lazily and reused.
func (g *Graph) DefaultScene() *scene.Scene {
	if g.defaultScene == nil {
		g.defaultScene = scene.NewScene()
		g.defaultScene.Root.Name = "default"
	}
	return g.defaultScene
}

// DefaultCamera returns the fallback interactive camera.
func (g *Graph) DefaultCamera() *scene.Camera {
	if g.defaultCamera == nil {
		bbox := geometry.NewBoundingBox()
		bbox.Extend(geometry.NewVector3(-5, -5, -5))
		bbox.Extend(geometry.NewVector3(5, 5, 5))
		g.defaultCamera = scene.NewCamera(bbox)
	}
	return g.defaultCamera
}
