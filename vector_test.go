package halfmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAsProperty(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	c.Push()

	h, ok := AddProperty[Vertex](c, "v:position", NewVector(0, 0, 0))
	assert.True(t, ok)

	pos := Ptr(c, h, NewHandle[Vertex](0))
	*pos = NewVector(1, 2, 3)
	assert.Equal(t, NewVector(1, 2, 3), *Ptr(c, h, NewHandle[Vertex](0)))
}
