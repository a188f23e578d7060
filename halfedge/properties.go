package halfedge

import "github.com/nesfield/halfmesh"

// Four per-entity-kind property registries of a Mesh.
type Properties struct {
	vprop *halfmesh.PropertyContainer[halfmesh.Vertex]
	hprop *halfmesh.PropertyContainer[halfmesh.Halfedge]
	eprop *halfmesh.PropertyContainer[halfmesh.Edge]
	fprop *halfmesh.PropertyContainer[halfmesh.Face]
}

func newProperties() *Properties {
	return &Properties{
		vprop: halfmesh.NewPropertyContainer[halfmesh.Vertex](),
		hprop: halfmesh.NewPropertyContainer[halfmesh.Halfedge](),
		eprop: halfmesh.NewPropertyContainer[halfmesh.Edge](),
		fprop: halfmesh.NewPropertyContainer[halfmesh.Face](),
	}
}

// Typed handle to a named vertex property.
type VertexProperty[D any] = halfmesh.PropertyHandle[halfmesh.Vertex, D]

// Typed handle to a named halfedge property.
type HalfedgeProperty[D any] = halfmesh.PropertyHandle[halfmesh.Halfedge, D]

// Typed handle to a named edge property.
type EdgeProperty[D any] = halfmesh.PropertyHandle[halfmesh.Edge, D]

// Typed handle to a named face property.
type FaceProperty[D any] = halfmesh.PropertyHandle[halfmesh.Face, D]

// Add a vertex property named name with the given default value. Fails if a
// property with that name already exists.
func AddVertexProperty[D any](p *Properties, name string, defaultValue D) (VertexProperty[D], bool) {
	return halfmesh.AddProperty[halfmesh.Vertex, D](p.vprop, name, defaultValue)
}

// Add a halfedge property named name with the given default value. Fails if
// a property with that name already exists.
func AddHalfedgeProperty[D any](p *Properties, name string, defaultValue D) (HalfedgeProperty[D], bool) {
	return halfmesh.AddProperty[halfmesh.Halfedge, D](p.hprop, name, defaultValue)
}

// Add an edge property named name with the given default value. Fails if a
// property with that name already exists.
func AddEdgeProperty[D any](p *Properties, name string, defaultValue D) (EdgeProperty[D], bool) {
	return halfmesh.AddProperty[halfmesh.Edge, D](p.eprop, name, defaultValue)
}

// Add a face property named name with the given default value. Fails if a
// property with that name already exists.
func AddFaceProperty[D any](p *Properties, name string, defaultValue D) (FaceProperty[D], bool) {
	return halfmesh.AddProperty[halfmesh.Face, D](p.fprop, name, defaultValue)
}

// Return a handle to the named vertex property, only if it exists and its
// element type matches D.
func GetVertexProperty[D any](p *Properties, name string) (VertexProperty[D], bool) {
	return halfmesh.GetProperty[halfmesh.Vertex, D](p.vprop, name)
}

// Return a handle to the named halfedge property, only if it exists and its
// element type matches D.
func GetHalfedgeProperty[D any](p *Properties, name string) (HalfedgeProperty[D], bool) {
	return halfmesh.GetProperty[halfmesh.Halfedge, D](p.hprop, name)
}

// Return a handle to the named edge property, only if it exists and its
// element type matches D.
func GetEdgeProperty[D any](p *Properties, name string) (EdgeProperty[D], bool) {
	return halfmesh.GetProperty[halfmesh.Edge, D](p.eprop, name)
}

// Return a handle to the named face property, only if it exists and its
// element type matches D.
func GetFaceProperty[D any](p *Properties, name string) (FaceProperty[D], bool) {
	return halfmesh.GetProperty[halfmesh.Face, D](p.fprop, name)
}

// Return a pointer to the element of h for vertex v.
func VertexValue[D any](p *Properties, h VertexProperty[D], v Vertex) *D {
	return halfmesh.Ptr(p.vprop, h, v)
}

// Return a pointer to the element of h for halfedge he.
func HalfedgeValue[D any](p *Properties, h HalfedgeProperty[D], he Halfedge) *D {
	return halfmesh.Ptr(p.hprop, h, he)
}

// Return a pointer to the element of h for edge e.
func EdgeValue[D any](p *Properties, h EdgeProperty[D], e Edge) *D {
	return halfmesh.Ptr(p.eprop, h, e)
}

// Return a pointer to the element of h for face f.
func FaceValue[D any](p *Properties, h FaceProperty[D], f Face) *D {
	return halfmesh.Ptr(p.fprop, h, f)
}
