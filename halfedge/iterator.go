package halfedge

import "github.com/nesfield/halfmesh"

// Walks every vertex handle from 0 to NVertices-1.
type VertexIterator struct {
	topology *Topology
	curr     int
}

// Return an iterator over all vertices currently in the mesh.
func (t *Topology) Vertices() *VertexIterator {
	return &VertexIterator{topology: t}
}

// Return the next vertex, or ok=false once exhausted.
func (it *VertexIterator) Next() (Vertex, bool) {
	if it.curr >= it.topology.NVertices() {
		return halfmesh.InvalidHandle[halfmesh.Vertex](), false
	}
	v := halfmesh.NewHandle[halfmesh.Vertex](it.curr)
	it.curr++
	return v, true
}

// Walks every face handle from 0 to NFaces-1.
type FaceIterator struct {
	topology *Topology
	curr     int
}

// Return an iterator over all faces currently in the mesh.
func (t *Topology) Faces() *FaceIterator {
	return &FaceIterator{topology: t}
}

// Return the next face, or ok=false once exhausted.
func (it *FaceIterator) Next() (Face, bool) {
	if it.curr >= it.topology.NFaces() {
		return halfmesh.InvalidHandle[halfmesh.Face](), false
	}
	f := halfmesh.NewHandle[halfmesh.Face](it.curr)
	it.curr++
	return f, true
}

// Walks every edge handle from 0 to NEdges-1.
type EdgeIterator struct {
	topology *Topology
	curr     int
}

// Return an iterator over all edges currently in the mesh.
func (t *Topology) Edges() *EdgeIterator {
	return &EdgeIterator{topology: t}
}

// Return the next edge, or ok=false once exhausted.
func (it *EdgeIterator) Next() (Edge, bool) {
	if it.curr >= it.topology.NEdges() {
		return halfmesh.InvalidHandle[halfmesh.Edge](), false
	}
	e := halfmesh.NewHandle[halfmesh.Edge](it.curr)
	it.curr++
	return e, true
}

// Walks every halfedge handle from 0 to NHalfedges-1.
type HalfedgeIterator struct {
	topology *Topology
	curr     int
}

// Return an iterator over all halfedges currently in the mesh.
func (t *Topology) Halfedges() *HalfedgeIterator {
	return &HalfedgeIterator{topology: t}
}

// Return the next halfedge, or ok=false once exhausted.
func (it *HalfedgeIterator) Next() (Halfedge, bool) {
	if it.curr >= it.topology.NHalfedges() {
		return halfmesh.InvalidHandle[halfmesh.Halfedge](), false
	}
	h := halfmesh.NewHandle[halfmesh.Halfedge](it.curr)
	it.curr++
	return h, true
}
