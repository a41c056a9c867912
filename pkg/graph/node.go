package graph

import (
	"github.com/google/uuid"

	"github.com/lukasried/meshflow/pkg/scene"
)

// NodeID identifies a node within a graph.
type NodeID string

// Built-in node types. SceneOutputType is the designated terminal type
// whose evaluated output supplies the viewport's bound scene.
const (
	TypeBox         = "box"
	TypeSphere      = "sphere"
	TypeCylinder    = "cylinder"
	TypeMesh        = "mesh"
	TypeMaterial    = "material"
	TypeCamera      = "camera"
	SceneOutputType = "sceneOutput"
)

// Transform property keys shared between the mesh node and the viewport's
// gizmo writeback.
const (
	PropPosition = "position"
	PropRotation = "rotation"
	PropScale    = "scale"
)

// Port is a named connection point on a node. Output port values hold the
// opaque renderable payloads the viewport consumes: *scene.Object,
// *scene.Geometry, scene.Material, *scene.Camera or *SceneOutput.
type Port struct {
	Name  string
	Value any
}

// Node is a single operation in the dataflow graph.
type Node struct {
	ID         NodeID
	Type       string
	Inputs     map[string]*Port
	Outputs    map[string]*Port
	Properties map[string]any

	// geometry cache so property-identical re-evaluations skip meshing
	cachedKey  string
	cachedGeom *scene.Geometry
}

// NewNode creates a node of the given type with the ports that type
// declares and default properties.
func NewNode(nodeType string) *Node {
	n := &Node{
		ID:         NodeID(uuid.NewString()),
		Type:       nodeType,
		Inputs:     make(map[string]*Port),
		Outputs:    make(map[string]*Port),
		Properties: make(map[string]any),
	}
	switch nodeType {
	case TypeBox:
		n.Properties["width"] = 1.0
		n.Properties["height"] = 1.0
		n.Properties["depth"] = 1.0
		n.addOutput("geometry")
	case TypeSphere:
		n.Properties["radius"] = 0.5
		n.addOutput("geometry")
	case TypeCylinder:
		n.Properties["radius"] = 0.5
		n.Properties["height"] = 1.0
		n.addOutput("geometry")
	case TypeMesh:
		n.addInput("geometry")
		n.addInput("material")
		n.addOutput("object")
	case TypeMaterial:
		n.Properties["kind"] = "standard"
		n.addOutput("material")
	case TypeCamera:
		n.addOutput("camera")
	case SceneOutputType:
		n.addInput("objects")
		n.addInput("camera")
		n.addOutput("scene")
	}
	return n
}

func (n *Node) addInput(name string) {
	n.Inputs[name] = &Port{Name: name}
}

func (n *Node) addOutput(name string) {
	n.Outputs[name] = &Port{Name: name}
}

// Output returns the named output port, or nil.
func (n *Node) Output(name string) *Port {
	return n.Outputs[name]
}

// FloatProperty reads a numeric property with a fallback default.
func (n *Node) FloatProperty(key string, def float64) float64 {
	switch v := n.Properties[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Edge connects an output port of one node to an input port of another.
type Edge struct {
	ID       string
	FromNode NodeID
	FromPort string
	ToNode   NodeID
	ToPort   string
}
