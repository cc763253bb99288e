package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_InsertionOrder(t *testing.T) {
	s := NewStream()
	s.Put(NewIntegerValue("One", 1, FormDecimal))
	s.Put(NewStringValue("Two", "x", true))
	s.Put(NewIntegerValue("Three", 3, FormHex))

	assert.Equal(t, []string{"One", "Two", "Three"}, flatten(s, LevelNormal))
}

func TestStream_DebugFiltering(t *testing.T) {
	s := NewStream()
	s.Put(NewIntegerValue("Visible", 1, FormDecimal))
	s.PutDebug(NewIntegerValue("Hidden", 2, FormDecimal))
	s.Put(NewIntegerValue("AlsoVisible", 3, FormDecimal))

	assert.Equal(t, []string{"Visible", "AlsoVisible"}, flatten(s, LevelNormal))
	assert.Equal(t, []string{"Visible", "Hidden", "AlsoVisible"}, flatten(s, LevelDebug))
}

// TestStream_NormalIsSubsequenceOfDebug checks that the Normal traversal is a
// subsequence of the Debug traversal, nesting included.
func TestStream_NormalIsSubsequenceOfDebug(t *testing.T) {
	inner := NewStream()
	inner.Put(NewStringValue("A", "a", true))
	inner.PutDebug(NewStringValue("B", "b", true))

	s := NewStream()
	s.Put(NewIntegerValue("N1", 1, FormDecimal))
	s.PutDebug(NewIntegerValue("D1", 2, FormDecimal))
	s.Put(NewStructValue("S", inner))
	s.PutDebug(NewByteArrayValue("D2", []byte{1}))

	normal := flatten(s, LevelNormal)
	debug := flatten(s, LevelDebug)

	i := 0
	for _, name := range debug {
		if i < len(normal) && normal[i] == name {
			i++
		}
	}

	assert.Equal(t, len(normal), i, "normal traversal must be a subsequence of the debug traversal")
}

func TestStream_NestedTraversal(t *testing.T) {
	inner := NewStream()
	inner.Put(NewIntegerValue("Child", 1, FormDecimal))

	s := NewStream()
	s.Put(NewStructValue("Outer", inner))

	assert.Equal(t, []string{"Outer", "Outer/Child"}, flatten(s, LevelNormal))
}

func TestArrayValue_Elements(t *testing.T) {
	av := NewByteArrayValue("Bytes", []byte{0x10, 0x20})
	assert.Equal(t, 2, av.Size())
	assert.Equal(t, 1, av.ElementSize())
	assert.Equal(t, int64(0x20), av.At(1))

	dv := NewDwordArrayValue("Dwords", []uint32{0xAABBCCDD})
	assert.Equal(t, 4, dv.ElementSize())
	assert.Equal(t, int64(0xAABBCCDD), dv.At(0))
}

func TestStream_Size(t *testing.T) {
	s := NewStream()
	assert.Equal(t, 0, s.Size())

	s.Put(NewIntegerValue("X", 1, FormDecimal))
	assert.Equal(t, 1, s.Size())
}
