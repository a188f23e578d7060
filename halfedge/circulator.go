package halfedge

import "github.com/nesfield/halfmesh"

// Walks the one-ring of vertices reached by rotating clockwise around a
// central vertex's outgoing halfedges.
type VerticesAroundVertexCirculator struct {
	topology     *Topology
	end, curr    Halfedge
	active, done bool
}

// Return a circulator over the neighbors of v. The circulator is empty if v
// is isolated.
func (t *Topology) VerticesAroundVertex(v Vertex) *VerticesAroundVertexCirculator {
	h, ok := t.Halfedge(v)
	if !ok {
		return &VerticesAroundVertexCirculator{done: true}
	}
	return &VerticesAroundVertexCirculator{topology: t, end: h, curr: h}
}

// Return the next neighboring vertex, or ok=false once the ring closes.
func (c *VerticesAroundVertexCirculator) Next() (Vertex, bool) {
	if c.done || (c.active && c.curr.Equal(c.end)) {
		return halfmesh.InvalidHandle[halfmesh.Vertex](), false
	}
	c.active = true
	v := c.topology.To(c.curr)
	c.curr = c.topology.CwRotated(c.curr)
	return v, true
}

// Walks the outgoing halfedges of a central vertex in clockwise order.
type HalfedgesAroundVertexCirculator struct {
	topology     *Topology
	end, curr    Halfedge
	active, done bool
}

// Return a circulator over the outgoing halfedges of v. The circulator is
// empty if v is isolated.
func (t *Topology) HalfedgesAroundVertex(v Vertex) *HalfedgesAroundVertexCirculator {
	h, ok := t.Halfedge(v)
	if !ok {
		return &HalfedgesAroundVertexCirculator{done: true}
	}
	return &HalfedgesAroundVertexCirculator{topology: t, end: h, curr: h}
}

// Return the next outgoing halfedge, or ok=false once the ring closes.
func (c *HalfedgesAroundVertexCirculator) Next() (Halfedge, bool) {
	if c.done || (c.active && c.curr.Equal(c.end)) {
		return halfmesh.InvalidHandle[halfmesh.Halfedge](), false
	}
	c.active = true
	h := c.curr
	c.curr = c.topology.CwRotated(c.curr)
	return h, true
}

// Walks the distinct faces incident to a central vertex in clockwise order,
// skipping over boundary gaps.
//
// If every outgoing halfedge of the vertex is a boundary halfedge (the
// vertex has no incident face at all), the circulator comes up empty rather
// than spinning forever looking for a non-boundary halfedge that does not
// exist.
type FacesAroundVertexCirculator struct {
	topology     *Topology
	end, curr    Halfedge
	active, done bool
}

// Return a circulator over the faces incident to v.
func (t *Topology) FacesAroundVertex(v Vertex) *FacesAroundVertexCirculator {
	h, ok := t.Halfedge(v)
	if !ok {
		return &FacesAroundVertexCirculator{done: true}
	}

	start := h
	for t.IsBoundaryHalfedge(h) {
		h = t.CwRotated(h)
		if h.Equal(start) {
			return &FacesAroundVertexCirculator{done: true}
		}
	}

	return &FacesAroundVertexCirculator{topology: t, end: h, curr: h}
}

// Return the next incident face, or ok=false once the ring closes.
func (c *FacesAroundVertexCirculator) Next() (Face, bool) {
	if c.done || (c.active && c.curr.Equal(c.end)) {
		return halfmesh.InvalidHandle[halfmesh.Face](), false
	}
	c.active = true

	f, _ := c.topology.Face(c.curr)
	for {
		c.curr = c.topology.CwRotated(c.curr)
		if !c.topology.IsBoundaryHalfedge(c.curr) || c.curr.Equal(c.end) {
			break
		}
	}
	return f, true
}

// Walks the vertices bounding a face in CCW order.
type VerticesAroundFaceCirculator struct {
	topology  *Topology
	end, curr Halfedge
	active    bool
}

// Return a circulator over the vertices of f.
func (t *Topology) VerticesAroundFace(f Face) *VerticesAroundFaceCirculator {
	h := t.FaceHalfedge(f)
	return &VerticesAroundFaceCirculator{topology: t, end: h, curr: h}
}

// Return the next vertex of the face, or ok=false once the cycle closes.
func (c *VerticesAroundFaceCirculator) Next() (Vertex, bool) {
	if c.active && c.curr.Equal(c.end) {
		return halfmesh.InvalidHandle[halfmesh.Vertex](), false
	}
	c.active = true
	v := c.topology.To(c.curr)
	c.curr = c.topology.Next(c.curr)
	return v, true
}

// Walks the halfedges bounding a face in CCW order.
type HalfedgesAroundFaceCirculator struct {
	topology  *Topology
	end, curr Halfedge
	active    bool
}

// Return a circulator over the halfedges of f.
func (t *Topology) HalfedgesAroundFace(f Face) *HalfedgesAroundFaceCirculator {
	h := t.FaceHalfedge(f)
	return &HalfedgesAroundFaceCirculator{topology: t, end: h, curr: h}
}

// Return the next halfedge of the face, or ok=false once the cycle closes.
func (c *HalfedgesAroundFaceCirculator) Next() (Halfedge, bool) {
	if c.active && c.curr.Equal(c.end) {
		return halfmesh.InvalidHandle[halfmesh.Halfedge](), false
	}
	c.active = true
	h := c.curr
	c.curr = c.topology.Next(c.curr)
	return h, true
}
