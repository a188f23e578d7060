package halfmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyVecPushAndGet(t *testing.T) {
	p := NewPropertyVec[Vertex](7)
	p.Push()
	p.Push()

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 7, p.Get(NewHandle[Vertex](0)))
	assert.Equal(t, 7, p.Get(NewHandle[Vertex](1)))
}

func TestPropertyVecSet(t *testing.T) {
	p := NewPropertyVec[Vertex](0)
	p.Push()

	h := NewHandle[Vertex](0)
	p.Set(h, 42)
	assert.Equal(t, 42, p.Get(h))
}

func TestPropertyVecReserveKeepsLen(t *testing.T) {
	p := NewPropertyVec[Vertex](0)
	p.Push()
	p.Reserve(100)

	assert.Equal(t, 1, p.Len())
	assert.GreaterOrEqual(t, p.Capacity(), 100)
}

func TestPropertyVecPtrPanicsOutOfRange(t *testing.T) {
	p := NewPropertyVec[Vertex](0)
	assert.Panics(t, func() {
		p.Ptr(NewHandle[Vertex](0))
	})
}

func TestPropertyContainerAddAndGet(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	c.Push()
	c.Push()

	h, ok := AddProperty[Vertex](c, "v:position", 1.5)
	assert.True(t, ok)

	got, ok := GetProperty[Vertex, float64](c, "v:position")
	assert.True(t, ok)
	assert.Equal(t, h, got)

	assert.Equal(t, 1.5, *Ptr(c, h, NewHandle[Vertex](0)))
	assert.Equal(t, 1.5, *Ptr(c, h, NewHandle[Vertex](1)))
}

func TestPropertyContainerAddDuplicateNameFails(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	_, ok := AddProperty[Vertex](c, "v:flag", false)
	assert.True(t, ok)

	_, ok = AddProperty[Vertex](c, "v:flag", true)
	assert.False(t, ok)
}

func TestPropertyContainerGetWrongTypeFails(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	_, ok := AddProperty[Vertex](c, "v:flag", false)
	assert.True(t, ok)

	_, ok = GetProperty[Vertex, int](c, "v:flag")
	assert.False(t, ok)
}

func TestPropertyContainerGetMissingNameFails(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	_, ok := GetProperty[Vertex, int](c, "v:missing")
	assert.False(t, ok)
}

func TestPropertyContainerPushBackfillsExistingProperties(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	h, _ := AddProperty[Vertex](c, "v:count", 0)

	c.Push()
	c.Push()

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 0, *Ptr(c, h, NewHandle[Vertex](0)))
	assert.Equal(t, 0, *Ptr(c, h, NewHandle[Vertex](1)))
}

func TestPropertyContainerAddAfterPushPrepopulates(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	c.Push()
	c.Push()
	c.Push()

	h, ok := AddProperty[Vertex](c, "v:name", "unset")
	assert.True(t, ok)
	assert.Equal(t, "unset", *Ptr(c, h, NewHandle[Vertex](2)))
}

func TestPropertyHandleIsValid(t *testing.T) {
	c := NewPropertyContainer[Vertex]()
	h, ok := AddProperty[Vertex](c, "v:id", 0)
	assert.True(t, ok)
	assert.True(t, h.IsValid())

	missing, ok := GetProperty[Vertex, int](c, "v:nope")
	assert.False(t, ok)
	assert.False(t, missing.IsValid())
}
