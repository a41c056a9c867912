// Package project builds graph documents for the editor. For now it only
// provides the starter document shown on first launch.
package project

import (
	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/graph"
	"github.com/lukasried/meshflow/pkg/kernel"
)

// NewStarterGraph builds a small dataflow document: two primitives feeding
// meshes into a scene output, enough to exercise selection, transforms and
// preview from the first frame.
func NewStarterGraph(k kernel.Kernel) (*graph.Graph, error) {
	g := graph.New(k)

	var result *graph.Graph
	var buildErr error
	g.Apply(func() {
		box := graph.NewNode(graph.TypeBox)
		box.Properties["width"] = 2.0
		box.Properties["height"] = 1.0
		box.Properties["depth"] = 1.5

		sphere := graph.NewNode(graph.TypeSphere)
		sphere.Properties["radius"] = 0.8

		material := graph.NewNode(graph.TypeMaterial)
		material.Properties["kind"] = "standard"

		boxMesh := graph.NewNode(graph.TypeMesh)
		boxMesh.Properties[graph.PropPosition] = geometry.NewVector3(-1.5, 0.5, 0)

		sphereMesh := graph.NewNode(graph.TypeMesh)
		sphereMesh.Properties[graph.PropPosition] = geometry.NewVector3(1.5, 0.8, 0)

		out := graph.NewNode(graph.SceneOutputType)

		for _, n := range []*graph.Node{box, sphere, material, boxMesh, sphereMesh, out} {
			g.AddNode(n)
		}

		connections := []struct {
			from     graph.NodeID
			fromPort string
			to       graph.NodeID
			toPort   string
		}{
			{box.ID, "geometry", boxMesh.ID, "geometry"},
			{sphere.ID, "geometry", sphereMesh.ID, "geometry"},
			{material.ID, "material", boxMesh.ID, "material"},
			{material.ID, "material", sphereMesh.ID, "material"},
			{boxMesh.ID, "object", out.ID, "objects"},
			{sphereMesh.ID, "object", out.ID, "objects"},
		}
		for _, c := range connections {
			if _, err := g.Connect(c.from, c.fromPort, c.to, c.toPort); err != nil {
				buildErr = err
				return
			}
		}
		result = g
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return result, nil
}
