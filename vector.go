package halfmesh

// Cartesian vector in three-dimensional space.
//
// It carries no meaning to the mesh itself; it exists as a ready-made value
// type for a "v:position"-style vertex property, per the principle that a
// position is just another named property of a Vertex.
type Vector [3]float64

// Construct a Vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}
