package scene

import "github.com/lukasried/meshflow/pkg/geometry"

// Geometry is an indexed triangle mesh in flat GPU-friendly layout:
// three floats per vertex position and normal, three indices per triangle.
// Geometry is treated as immutable once built so it can be shared between
// the bound scene and preview clones.
type Geometry struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount returns the number of triangles
func (g *Geometry) TriangleCount() int {
	if len(g.Indices) == 0 {
		return len(g.Vertices) / 9
	}
	return len(g.Indices) / 3
}

// Vertex returns the i-th vertex position
func (g *Geometry) Vertex(i int) geometry.Vector3 {
	return geometry.NewVector3(
		float64(g.Vertices[i*3]),
		float64(g.Vertices[i*3+1]),
		float64(g.Vertices[i*3+2]),
	)
}

// Triangle returns the i-th triangle in local space
func (g *Geometry) Triangle(i int) geometry.Triangle {
	if len(g.Indices) == 0 {
		return geometry.NewTriangle(g.Vertex(i*3), g.Vertex(i*3+1), g.Vertex(i*3+2))
	}
	return geometry.NewTriangle(
		g.Vertex(int(g.Indices[i*3])),
		g.Vertex(int(g.Indices[i*3+1])),
		g.Vertex(int(g.Indices[i*3+2])),
	)
}

// Unindexed returns a copy with the index buffer expanded into sequential
// vertices. Renderers whose index buffers are 16 bit need this once the
// vertex count exceeds what such an index can address.
func (g *Geometry) Unindexed() *Geometry {
	if len(g.Indices) == 0 {
		return g
	}
	out := &Geometry{
		Vertices: make([]float32, 0, len(g.Indices)*3),
	}
	hasNormals := len(g.Normals) == len(g.Vertices)
	if hasNormals {
		out.Normals = make([]float32, 0, len(g.Indices)*3)
	}
	for _, idx := range g.Indices {
		i := int(idx) * 3
		out.Vertices = append(out.Vertices, g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2])
		if hasNormals {
			out.Normals = append(out.Normals, g.Normals[i], g.Normals[i+1], g.Normals[i+2])
		}
	}
	return out
}

// BoundingBox returns the local-space bounding box of all vertices
func (g *Geometry) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := 0; i < g.VertexCount(); i++ {
		bbox.Extend(g.Vertex(i))
	}
	return bbox
}
