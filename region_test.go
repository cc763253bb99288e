package lnk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_PopWithinBounds(t *testing.T) {
	r := Region{}
	r.SetStart(10)
	r.SetLen(20, "test")

	assert.True(t, r.Pop(5))
	assert.Equal(t, 15, r.Start())

	assert.True(t, r.Pop(15))
	assert.Equal(t, 30, r.Start())

	// The region is exhausted now.
	assert.False(t, r.Pop(1))
	assert.Equal(t, 30, r.Start())
}

func TestRegion_SetLenOverflow(t *testing.T) {
	r := Region{}
	r.SetStart(10)

	assert.False(t, r.SetLenOk(math.MaxInt64))

	err := catchError(func() {
		r.SetLen(math.MaxInt64, "test")
	})

	require.Error(t, err)
	assert.Equal(t, KindBadLength, KindOf(err))
}

func TestRegion_CheckOffsets(t *testing.T) {
	r := Region{}
	r.SetStart(0)
	r.SetLen(100, "test")

	assert.True(t, r.CheckOffsetsOk(10, 20))
	assert.True(t, r.CheckOffsetsOk(0, 99))
	assert.False(t, r.CheckOffsetsOk(50, 50))

	err := catchError(func() {
		r.CheckOffsets(100, 0, "field")
	})

	require.Error(t, err)
	assert.Equal(t, KindBadOffset, KindOf(err))
}

func TestRegion_MaxLen(t *testing.T) {
	r := Region{}
	r.SetStart(10)
	r.SetLen(20, "test")

	assert.Equal(t, 20, r.MaxLen(0, 0))
	assert.Equal(t, 15, r.MaxLen(5, 0))
	assert.Equal(t, 12, r.MaxLen(5, 3))
	assert.Equal(t, 0, r.MaxLen(25, 0))
	assert.Equal(t, 0, r.MaxLen(math.MaxInt64, 1))
}

func TestRegion_CheckRead(t *testing.T) {
	r := Region{}
	r.SetStart(0)
	r.SetLen(10, "test")

	assert.True(t, r.CheckRead(0, 10))
	assert.True(t, r.CheckRead(8, 2))
	assert.False(t, r.CheckRead(8, 3))
	assert.False(t, r.CheckRead(11, 1))
}

func TestAddOverflows(t *testing.T) {
	assert.False(t, addOverflows(1, 2))
	assert.True(t, addOverflows(math.MaxInt64, 1))
	assert.True(t, addOverflows(1, math.MaxInt64))
	assert.True(t, addOverflows(math.MinInt64, -1))
	assert.False(t, addOverflows(math.MaxInt64, 0))
}
