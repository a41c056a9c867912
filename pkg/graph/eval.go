package graph

import (
	"fmt"
	"log"

	"github.com/lukasried/meshflow/pkg/geometry"
	"github.com/lukasried/meshflow/pkg/kernel"
	"github.com/lukasried/meshflow/pkg/scene"
)

// Evaluate re-derives every node's output port values. Upstream nodes are
// evaluated before their consumers; cycles are broken by the visited set
// (a node in a cycle sees its predecessor's previous value).
func (g *Graph) Evaluate() {
	visited := make(map[NodeID]bool, len(g.nodes))
	for _, n := range g.Nodes() {
		g.evalNode(n, visited)
	}
}

func (g *Graph) evalNode(n *Node, visited map[NodeID]bool) {
	if visited[n.ID] {
		return
	}
	visited[n.ID] = true

	for portName := range n.Inputs {
		for _, e := range g.edgesInto(n.ID, portName) {
			if src := g.nodes[e.FromNode]; src != nil {
				g.evalNode(src, visited)
			}
		}
	}

	switch n.Type {
	case TypeBox:
		w := n.FloatProperty("width", 1)
		h := n.FloatProperty("height", 1)
		d := n.FloatProperty("depth", 1)
		n.Outputs["geometry"].Value = g.primitiveGeometry(n, fmt.Sprintf("box:%g:%g:%g", w, h, d), func() kernel.Solid {
			return g.kernel.Box(w, h, d)
		})
	case TypeSphere:
		r := n.FloatProperty("radius", 0.5)
		n.Outputs["geometry"].Value = g.primitiveGeometry(n, fmt.Sprintf("sphere:%g", r), func() kernel.Solid {
			return g.kernel.Sphere(r)
		})
	case TypeCylinder:
		r := n.FloatProperty("radius", 0.5)
		h := n.FloatProperty("height", 1)
		n.Outputs["geometry"].Value = g.primitiveGeometry(n, fmt.Sprintf("cylinder:%g:%g", h, r), func() kernel.Solid {
			return g.kernel.Cylinder(h, r)
		})
	case TypeMesh:
		n.Outputs["object"].Value = g.evalMesh(n)
	case TypeMaterial:
		kind, _ := n.Properties["kind"].(string)
		n.Outputs["material"].Value = scene.Material{
			Kind:  scene.ParseMaterialKind(kind),
			Color: scene.DefaultMaterial().Color,
		}
	case TypeCamera:
		n.Outputs["camera"].Value = g.evalCamera(n)
	case SceneOutputType:
		n.Outputs["scene"].Value = g.evalSceneOutput(n)
	}
}

// primitiveGeometry meshes a primitive through the kernel, reusing the
// cached mesh when the parameters are unchanged since the last evaluation.
func (g *Graph) primitiveGeometry(n *Node, key string, build func() kernel.Solid) *scene.Geometry {
	if g.kernel == nil {
		return nil
	}
	if n.cachedKey == key && n.cachedGeom != nil {
		return n.cachedGeom
	}
	geom, err := g.kernel.ToMesh(build())
	if err != nil {
		log.Printf("graph: %s node %s: meshing failed: %v", n.Type, n.ID, err)
		return nil
	}
	n.cachedKey = key
	n.cachedGeom = geom
	return geom
}

// evalMesh builds the renderable object for a mesh node: upstream geometry
// wrapped with the upstream (or default) material, placed by the node's
// transform properties, tagged with the node id for picking.
func (g *Graph) evalMesh(n *Node) *scene.Object {
	geom, _ := g.inputValue(n, "geometry").(*scene.Geometry)
	if geom == nil {
		return nil
	}

	obj := scene.NewObject(scene.KindMesh)
	obj.Name = string(n.ID)
	obj.SourceNodeID = string(n.ID)
	obj.Geometry = geom
	if mat, ok := g.inputValue(n, "material").(scene.Material); ok {
		obj.Material = mat
	}
	obj.Transform = geometry.Transform{
		Position: g.vectorProperty(n, PropPosition, geometry.Vector3{}),
		Rotation: g.vectorProperty(n, PropRotation, geometry.Vector3{}),
		Scale:    g.vectorProperty(n, PropScale, geometry.NewVector3(1, 1, 1)),
	}
	return obj
}

func (g *Graph) evalCamera(n *Node) *scene.Camera {
	cam := scene.NewCamera(geometry.NewBoundingBox())
	cam.Position = g.vectorProperty(n, PropPosition, geometry.NewVector3(5, 5, 5))
	cam.Target = g.vectorProperty(n, "target", geometry.Vector3{})
	if fov := n.FloatProperty("fov", 0); fov > 0 {
		cam.FOV = fov
	}
	return cam
}

// evalSceneOutput gathers every connected object into a fresh scene. The
// wrapped scene is rebuilt wholesale on each evaluation; the viewport owns
// reconciling its interaction state against the replacement.
func (g *Graph) evalSceneOutput(n *Node) *SceneOutput {
	s := scene.NewScene()
	for _, v := range g.inputValues(n, "objects") {
		if obj, ok := v.(*scene.Object); ok && obj != nil {
			s.Add(obj)
		}
	}
	if cam, ok := g.inputValue(n, "camera").(*scene.Camera); ok {
		s.Camera = cam
	}
	return &SceneOutput{Scene: s}
}

// inputValue resolves the first connected upstream value on an input port.
func (g *Graph) inputValue(n *Node, port string) any {
	values := g.inputValues(n, port)
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// inputValues resolves all connected upstream values on an input port, in
// deterministic edge order.
func (g *Graph) inputValues(n *Node, port string) []any {
	var values []any
	for _, e := range g.edgesInto(n.ID, port) {
		src := g.nodes[e.FromNode]
		if src == nil {
			continue
		}
		out := src.Outputs[e.FromPort]
		if out == nil || out.Value == nil {
			continue
		}
		values = append(values, out.Value)
	}
	return values
}

func (g *Graph) vectorProperty(n *Node, key string, def geometry.Vector3) geometry.Vector3 {
	if v, ok := n.Properties[key].(geometry.Vector3); ok {
		return v
	}
	return def
}

// SceneOutputNode returns the designated scene-output node, or nil. When a
// graph holds several, the one with the smallest id wins so the choice is
// deterministic per snapshot.
func (g *Graph) SceneOutputNode() *Node {
	for _, n := range g.Nodes() {
		if n.Type == SceneOutputType {
			return n
		}
	}
	return nil
}
