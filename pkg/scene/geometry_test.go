package scene

import "testing"

// Two triangles sharing an edge: 4 vertices, 6 indices.
func sharedEdgeQuad() *Geometry {
	return &Geometry{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestGeometryCounts(t *testing.T) {
	g := sharedEdgeQuad()
	if g.VertexCount() != 4 {
		t.Errorf("VertexCount failed: expected 4, got %d", g.VertexCount())
	}
	if g.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", g.TriangleCount())
	}
}

func TestGeometryUnindexed(t *testing.T) {
	g := sharedEdgeQuad()
	flat := g.Unindexed()

	if len(flat.Indices) != 0 {
		t.Fatalf("expected no index buffer, got %d indices", len(flat.Indices))
	}
	if flat.VertexCount() != 6 {
		t.Errorf("expanded vertex count failed: expected 6, got %d", flat.VertexCount())
	}
	if flat.TriangleCount() != g.TriangleCount() {
		t.Errorf("triangle count changed: expected %d, got %d",
			g.TriangleCount(), flat.TriangleCount())
	}
	if len(flat.Normals) != len(flat.Vertices) {
		t.Errorf("normals not expanded alongside vertices: %d vs %d",
			len(flat.Normals), len(flat.Vertices))
	}

	// Every triangle must survive expansion corner for corner
	for i := 0; i < g.TriangleCount(); i++ {
		if g.Triangle(i) != flat.Triangle(i) {
			t.Errorf("triangle %d changed: %v vs %v", i, g.Triangle(i), flat.Triangle(i))
		}
	}
}

func TestGeometryUnindexedPassthrough(t *testing.T) {
	flat := sharedEdgeQuad().Unindexed()
	if flat.Unindexed() != flat {
		t.Error("unindexed geometry should be returned as-is")
	}
}
