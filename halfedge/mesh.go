package halfedge

import "github.com/nesfield/halfmesh"

// High-level façade over a Topology and its Properties. Every
// entity-creating operation pushes one row into each corresponding
// PropertyVec and connectivity vector before filling in connectivity, so
// topology and property rows never drift apart.
type Mesh struct {
	Topology   *Topology
	Properties *Properties
}

// Construct an empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Topology:   newTopology(),
		Properties: newProperties(),
	}
}

// Reserve capacity for at least n vertices.
func (m *Mesh) VertexReserve(n int) {
	m.Topology.vertexReserve(n)
	m.Properties.vprop.Reserve(n)
}

// Return the number of vertices the Mesh can hold without reallocating.
func (m *Mesh) VertexCapacity() int {
	return m.Topology.vertexCapacity()
}

// Reserve capacity for at least n faces.
func (m *Mesh) FaceReserve(n int) {
	m.Topology.faceReserve(n)
	m.Properties.fprop.Reserve(n)
}

// Return the number of faces the Mesh can hold without reallocating.
func (m *Mesh) FaceCapacity() int {
	return m.Topology.faceCapacity()
}

// Reserve capacity for at least n edges (2n halfedges).
func (m *Mesh) EdgeReserve(n int) {
	m.Topology.halfedgeReserve(n * 2)
	m.Properties.eprop.Reserve(n)
	m.Properties.hprop.Reserve(n * 2)
}

// Return the number of edges the Mesh can hold without reallocating.
func (m *Mesh) EdgeCapacity() int {
	return m.Topology.halfedgeCapacity() / 2
}

// Append a new vertex and return its handle.
func (m *Mesh) AddVertex() Vertex {
	m.Properties.vprop.Push()
	m.Topology.vconn.Push()
	return halfmesh.NewHandle[halfmesh.Vertex](m.Topology.vconn.Len() - 1)
}

// Reserve capacity for nb additional vertices and append them one by one.
func (m *Mesh) AddVertices(nb int) []Vertex {
	if m.VertexCapacity() < m.Topology.NVertices()+nb {
		m.VertexReserve(m.Topology.NVertices() + nb)
	}

	vertices := make([]Vertex, 0, nb)
	for i := 0; i < nb; i++ {
		vertices = append(vertices, m.AddVertex())
	}

	return vertices
}

// Allocate a new edge and return the halfedge from start to end.
func (m *Mesh) newEdge(start, end Vertex) Halfedge {
	if start.Equal(end) {
		panic("halfedge: self-loop edge")
	}

	m.Properties.eprop.Push()
	m.Properties.hprop.Push()
	m.Properties.hprop.Push()

	m.Topology.hconn.Push()
	h0 := halfmesh.NewHandle[halfmesh.Halfedge](m.Topology.hconn.Len() - 1)
	m.Topology.hconn.Push()
	h1 := halfmesh.NewHandle[halfmesh.Halfedge](m.Topology.hconn.Len() - 1)

	m.Topology.setVertex(h0, end)
	m.Topology.setVertex(h1, start)

	return h0
}

// Insert a new face bounded by vertices (CCW, len >= 3), returning ok=false
// if the insertion would violate manifoldness. No topology is mutated when
// ok is false.
func (m *Mesh) AddFace(vertices []Vertex) (face Face, ok bool) {
	n := len(vertices)
	hvec := make([]Halfedge, n)
	isNew := make([]bool, n)
	var nextCache [][2]Halfedge

	invalidFace := halfmesh.InvalidHandle[halfmesh.Face]()

	for i := 0; i < n; i++ {
		if !m.Topology.IsBoundaryVertex(vertices[i]) {
			return invalidFace, false
		}

		h, found := m.Topology.FindHalfedge(vertices[i], vertices[(i+1)%n])
		isNew[i] = !found
		if found {
			if !m.Topology.IsBoundaryHalfedge(h) {
				return invalidFace, false
			}
			hvec[i] = h
		}
	}

	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if isNew[i] || isNew[ii] {
			continue
		}

		innerPrev := hvec[i]
		innerNext := hvec[ii]
		if m.Topology.Next(innerPrev).Equal(innerNext) {
			continue
		}

		outerPrev := m.Topology.Opposite(innerNext)
		boundaryPrev := outerPrev
		for {
			boundaryPrev = m.Topology.Opposite(m.Topology.Next(boundaryPrev))
			if m.Topology.IsBoundaryHalfedge(boundaryPrev) && !boundaryPrev.Equal(innerPrev) {
				break
			}
		}

		boundaryNext := m.Topology.Next(boundaryPrev)
		if boundaryNext.Equal(innerNext) {
			return invalidFace, false
		}

		patchStart := m.Topology.Next(innerPrev)
		patchEnd := m.Topology.Prev(innerNext)
		nextCache = append(nextCache,
			[2]Halfedge{boundaryPrev, patchStart},
			[2]Halfedge{patchEnd, boundaryNext},
			[2]Halfedge{innerPrev, innerNext},
		)
	}

	for i := 0; i < n; i++ {
		if isNew[i] {
			hvec[i] = m.newEdge(vertices[i], vertices[(i+1)%n])
		}
	}

	m.Properties.fprop.Push()
	m.Topology.fconn.Push()
	f := halfmesh.NewHandle[halfmesh.Face](m.Topology.fconn.Len() - 1)
	m.Topology.fconn.Ptr(f).halfedge = hvec[n-1]

	needsAdjust := make([]bool, n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		v := vertices[ii]
		innerPrev := hvec[i]
		innerNext := hvec[ii]

		if isNew[i] || isNew[ii] {
			outerPrev := m.Topology.Opposite(innerNext)
			outerNext := m.Topology.Opposite(innerPrev)

			switch {
			case !isNew[ii]: // inner_prev is new, inner_next is not
				boundaryPrev := m.Topology.Prev(innerNext)
				nextCache = append(nextCache, [2]Halfedge{boundaryPrev, outerNext})
				m.Topology.setHalfedge(v, outerNext)
			case !isNew[i]: // inner_next is new, inner_prev is not
				boundaryNext := m.Topology.Next(innerPrev)
				nextCache = append(nextCache, [2]Halfedge{outerPrev, boundaryNext})
				m.Topology.setHalfedge(v, boundaryNext)
			default: // both are new
				if h, found := m.Topology.Halfedge(v); !found {
					m.Topology.setHalfedge(v, outerNext)
					nextCache = append(nextCache, [2]Halfedge{outerPrev, outerNext})
				} else {
					boundaryPrev := m.Topology.Prev(h)
					nextCache = append(nextCache,
						[2]Halfedge{boundaryPrev, outerNext},
						[2]Halfedge{outerPrev, h},
					)
				}
			}

			nextCache = append(nextCache, [2]Halfedge{innerPrev, innerNext})
		} else if h, found := m.Topology.Halfedge(v); found && h.Equal(innerNext) {
			needsAdjust[ii] = true
		}

		m.Topology.setFace(innerPrev, f)
	}

	for _, pair := range nextCache {
		m.Topology.setNext(pair[0], pair[1])
	}

	for i := 0; i < n; i++ {
		if needsAdjust[i] {
			m.Topology.adjustOutgoingHalfedge(vertices[i])
		}
	}

	return f, true
}
