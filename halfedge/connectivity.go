// Package halfedge implements an index-based halfedge mesh for 2-manifold
// polygonal surfaces, with a typed named-property system for attaching
// arbitrary user data to its vertices, halfedges, edges and faces.
package halfedge

import "github.com/nesfield/halfmesh"

// The four handle kinds exposed by this package. They alias the root
// package's generic Handle so that callers never have to spell out the type
// parameter.
type (
	Vertex   = halfmesh.Handle[halfmesh.Vertex]
	Halfedge = halfmesh.Handle[halfmesh.Halfedge]
	Edge     = halfmesh.Handle[halfmesh.Edge]
	Face     = halfmesh.Handle[halfmesh.Face]
)

// Topological pointers of a Vertex: one outgoing halfedge.
type vconn struct {
	halfedge Halfedge
}

func newVconn() vconn {
	return vconn{halfedge: halfmesh.InvalidHandle[halfmesh.Halfedge]()}
}

// Topological pointers of a Halfedge: the vertex it points to, its incident
// face (none on the boundary), and its neighbors along that face's boundary
// cycle.
type hconn struct {
	to   Vertex
	face Face
	next Halfedge
	prev Halfedge
}

func newHconn() hconn {
	return hconn{
		to:   halfmesh.InvalidHandle[halfmesh.Vertex](),
		face: halfmesh.InvalidHandle[halfmesh.Face](),
		next: halfmesh.InvalidHandle[halfmesh.Halfedge](),
		prev: halfmesh.InvalidHandle[halfmesh.Halfedge](),
	}
}

// Topological pointers of a Face: one halfedge on its boundary cycle.
type fconn struct {
	halfedge Halfedge
}

func newFconn() fconn {
	return fconn{halfedge: halfmesh.InvalidHandle[halfmesh.Halfedge]()}
}
