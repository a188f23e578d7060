package halfedge

import "github.com/nesfield/halfmesh"

// Halfedge connectivity of a Mesh: the low-level accessors, boundary
// queries and circulation primitives, plus the private mutators used by
// Mesh.AddFace.
type Topology struct {
	vconn *halfmesh.PropertyVec[halfmesh.Vertex, vconn]
	hconn *halfmesh.PropertyVec[halfmesh.Halfedge, hconn]
	fconn *halfmesh.PropertyVec[halfmesh.Face, fconn]
}

func newTopology() *Topology {
	return &Topology{
		vconn: halfmesh.NewPropertyVec[halfmesh.Vertex, vconn](newVconn()),
		hconn: halfmesh.NewPropertyVec[halfmesh.Halfedge, hconn](newHconn()),
		fconn: halfmesh.NewPropertyVec[halfmesh.Face, fconn](newFconn()),
	}
}

// Number of vertices.
func (t *Topology) NVertices() int { return t.vconn.Len() }

// Number of faces.
func (t *Topology) NFaces() int { return t.fconn.Len() }

// Number of edges.
func (t *Topology) NEdges() int { return t.hconn.Len() / 2 }

// Number of halfedges.
func (t *Topology) NHalfedges() int { return t.hconn.Len() }

// Return an outgoing halfedge of v, if any.
func (t *Topology) Halfedge(v Vertex) (Halfedge, bool) {
	h := t.vconn.Get(v).halfedge
	return h, h.IsValid()
}

// Return the face incident to h, or ok=false on the boundary.
func (t *Topology) Face(h Halfedge) (Face, bool) {
	f := t.hconn.Get(h).face
	return f, f.IsValid()
}

// Return one halfedge on the boundary cycle of f.
func (t *Topology) FaceHalfedge(f Face) Halfedge {
	return t.fconn.Get(f).halfedge
}

// Return the edge that contains h as one of its two halfedges.
func (t *Topology) Edge(h Halfedge) Edge {
	idx, _ := h.Idx()
	return halfmesh.NewHandle[halfmesh.Edge](idx >> 1)
}

// Return halfedge i (0 or 1) of edge e.
func (t *Topology) EdgeHalfedge(e Edge, i int) Halfedge {
	idx, _ := e.Idx()
	return halfmesh.NewHandle[halfmesh.Halfedge](idx*2 + i)
}

// Return the vertex h points to.
func (t *Topology) To(h Halfedge) Vertex {
	return t.hconn.Get(h).to
}

// Return the vertex h emanates from.
func (t *Topology) From(h Halfedge) Vertex {
	return t.To(t.Prev(h))
}

// Return the next halfedge along h's incident face cycle.
func (t *Topology) Next(h Halfedge) Halfedge {
	return t.hconn.Get(h).next
}

// Return the previous halfedge along h's incident face cycle.
func (t *Topology) Prev(h Halfedge) Halfedge {
	return t.hconn.Get(h).prev
}

// Return the other halfedge of h's edge.
func (t *Topology) Opposite(h Halfedge) Halfedge {
	idx, _ := h.Idx()
	return halfmesh.NewHandle[halfmesh.Halfedge](idx ^ 1)
}

// Return the halfedge reached by rotating clockwise around h's start
// vertex.
func (t *Topology) CwRotated(h Halfedge) Halfedge {
	return t.Next(t.Opposite(h))
}

// Report whether h has no incident face.
func (t *Topology) IsBoundaryHalfedge(h Halfedge) bool {
	_, ok := t.Face(h)
	return !ok
}

// Report whether v is incident to at least one boundary halfedge (or is
// isolated).
func (t *Topology) IsBoundaryVertex(v Vertex) bool {
	h, ok := t.Halfedge(v)
	if !ok {
		return true
	}
	return t.IsBoundaryHalfedge(h)
}

// Report whether either side of e is a boundary halfedge.
func (t *Topology) IsBoundaryEdge(e Edge) bool {
	return t.IsBoundaryHalfedge(t.EdgeHalfedge(e, 0)) || t.IsBoundaryHalfedge(t.EdgeHalfedge(e, 1))
}

// Walk the outgoing cw-fan of start and return the halfedge whose target is
// end, if any. O(deg(start)).
func (t *Topology) FindHalfedge(start, end Vertex) (Halfedge, bool) {
	h, ok := t.Halfedge(start)
	if !ok {
		return halfmesh.InvalidHandle[halfmesh.Halfedge](), false
	}

	hEnd := h
	for {
		if t.To(h).Equal(end) {
			return h, true
		}
		h = t.CwRotated(h)
		if h.Equal(hEnd) {
			break
		}
	}

	return halfmesh.InvalidHandle[halfmesh.Halfedge](), false
}

func (t *Topology) setHalfedge(v Vertex, h Halfedge) {
	t.vconn.Ptr(v).halfedge = h
}

func (t *Topology) setFace(h Halfedge, f Face) {
	t.hconn.Ptr(h).face = f
}

func (t *Topology) setVertex(h Halfedge, v Vertex) {
	t.hconn.Ptr(h).to = v
}

// Atomically set next(h) = nh and prev(nh) = h.
func (t *Topology) setNext(h, nh Halfedge) {
	t.hconn.Ptr(h).next = nh
	t.hconn.Ptr(nh).prev = h
}

// Rotate v's outgoing halfedge cw until it lands on a boundary halfedge, or
// leave it as-is after a full revolution.
func (t *Topology) adjustOutgoingHalfedge(v Vertex) {
	h, ok := t.Halfedge(v)
	if !ok {
		return
	}

	start := h
	for {
		if t.IsBoundaryHalfedge(h) {
			t.setHalfedge(v, h)
			return
		}
		h = t.CwRotated(h)
		if h.Equal(start) {
			return
		}
	}
}

func (t *Topology) vertexReserve(n int)   { t.vconn.Reserve(n) }
func (t *Topology) vertexCapacity() int   { return t.vconn.Capacity() }
func (t *Topology) faceReserve(n int)     { t.fconn.Reserve(n) }
func (t *Topology) faceCapacity() int     { return t.fconn.Capacity() }
func (t *Topology) halfedgeReserve(n int) { t.hconn.Reserve(n) }
func (t *Topology) halfedgeCapacity() int { return t.hconn.Capacity() }
