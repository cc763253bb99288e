package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicodeToString_Bmp(t *testing.T) {
	assert.Equal(t, "AB", UnicodeToString([]uint16{0x41, 0x42}))
	assert.Equal(t, "éあ", UnicodeToString([]uint16{0x00E9, 0x3042}))
}

func TestUnicodeToString_SurrogatePair(t *testing.T) {
	// U+10437 encodes as D801 DC37.
	assert.Equal(t, "\U00010437", UnicodeToString([]uint16{0xD801, 0xDC37}))
}

func TestUnicodeToString_UnpairedHighAtEnd(t *testing.T) {
	assert.Equal(t, "A�", UnicodeToString([]uint16{0x41, 0xD800}))
}

func TestUnicodeToString_UnpairedHighBeforeNonLow(t *testing.T) {
	// The unit after the unpaired high surrogate is not consumed.
	assert.Equal(t, "�A", UnicodeToString([]uint16{0xD800, 0x41}))
}

func TestUnicodeToString_UnpairedLow(t *testing.T) {
	assert.Equal(t, "�A", UnicodeToString([]uint16{0xDC00, 0x41}))
}

func TestU16CharCount(t *testing.T) {
	assert.Equal(t, 0, u16CharCount(1))
	assert.Equal(t, 2, u16CharCount(4))
	assert.Equal(t, 2, u16CharCount(5))
}

func TestU16TerminatedSize(t *testing.T) {
	assert.Equal(t, 2, u16TerminatedSize(nil))
	assert.Equal(t, 6, u16TerminatedSize([]uint16{0x41, 0x42}))
}
