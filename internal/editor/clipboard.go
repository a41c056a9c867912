package editor

import (
	"log"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/graph"
)

// pasteOffset keeps pasted nodes from landing exactly on their originals.
var pasteOffset = geometry.NewVector3(1, 0, 0)

// Clipboard holds copied node specs. Paste instantiates fresh nodes with
// new ids and rewires the edges that ran between copied nodes; edges out
// of the copied set are dropped.
type Clipboard struct {
	graph *graph.Graph

	nodes []nodeState
	edges []edgeState
}

// NewClipboard creates an empty clipboard over the graph.
func NewClipboard(g *graph.Graph) *Clipboard {
	return &Clipboard{graph: g}
}

// Copy captures the nodes and their intra-set edges.
func (c *Clipboard) Copy(ids []graph.NodeID) {
	c.nodes = c.nodes[:0]
	c.edges = c.edges[:0]

	inSet := make(map[graph.NodeID]bool, len(ids))
	for _, id := range ids {
		n := c.graph.Node(id)
		if n == nil {
			continue
		}
		inSet[id] = true
		props := make(map[string]any, len(n.Properties))
		for k, v := range n.Properties {
			props[k] = v
		}
		c.nodes = append(c.nodes, nodeState{id: id, nodeType: n.Type, props: props})
	}
	for _, e := range c.graph.Edges() {
		if inSet[e.FromNode] && inSet[e.ToNode] {
			c.edges = append(c.edges, edgeState{
				from: e.FromNode, fromPort: e.FromPort,
				to: e.ToNode, toPort: e.ToPort,
			})
		}
	}
}

// Cut copies the nodes and removes them from the graph in one change.
func (c *Clipboard) Cut(ids []graph.NodeID) {
	c.Copy(ids)
	c.graph.Apply(func() {
		for _, id := range ids {
			c.graph.RemoveNode(id)
		}
	})
}

// Paste instantiates the buffered nodes with fresh ids. With an empty
// buffer it logs and does nothing.
func (c *Clipboard) Paste() {
	if len(c.nodes) == 0 {
		log.Printf("paste: clipboard is empty, ignoring")
		return
	}
	c.graph.Apply(func() {
		remap := make(map[graph.NodeID]graph.NodeID, len(c.nodes))
		for _, s := range c.nodes {
			n := graph.NewNode(s.nodeType)
			for k, v := range s.props {
				n.Properties[k] = v
			}
			if pos, ok := n.Properties[graph.PropPosition].(geometry.Vector3); ok {
				n.Properties[graph.PropPosition] = pos.Add(pasteOffset)
			}
			remap[s.id] = n.ID
			c.graph.AddNode(n)
		}
		for _, e := range c.edges {
			c.graph.Connect(remap[e.from], e.fromPort, remap[e.to], e.toPort)
		}
	})
}

// Empty reports whether the clipboard holds nothing.
func (c *Clipboard) Empty() bool {
	return len(c.nodes) == 0
}
