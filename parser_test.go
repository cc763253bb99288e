package lnk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParser_HeaderOnly covers the minimum valid file: a bare header with
// all flags clear and no sections.
func TestParser_HeaderOnly(t *testing.T) {
	tb := buildHeader(0)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	output := p.Output()
	require.NotNil(t, output)

	// Exactly one child: the header struct.
	assert.Equal(t, 1, output.Size())

	header := findStruct(output, "ShellLinkHeader")
	require.NotNil(t, header)
	assert.Equal(t, 6, countAtLevel(header, LevelNormal))

	assert.Empty(t, p.Warnings())
}

// TestParser_TruncatedHeader covers a file cut off mid-FILETIME: a fatal
// short read and no output.
func TestParser_TruncatedHeader(t *testing.T) {
	tb := buildHeader(0)

	p := NewParserFromBytes(tb.data[:40])

	err := p.Parse()
	require.Error(t, err)
	assert.Equal(t, KindShortRead, KindOf(err))
	assert.Empty(t, p.Warnings())
}

// TestParser_EmptyIdListSuppressed covers a present-but-empty item list: no
// LinkTargetIdList node is emitted.
func TestParser_EmptyIdListSuppressed(t *testing.T) {
	tb := buildHeader(1 << linkFlagHasLinkTargetIdList)
	tb.u16(2)
	tb.u16(0)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	output := p.Output()
	assert.Equal(t, 1, output.Size())
	assert.Nil(t, findStruct(output, "LinkTargetIdList"))
}

// TestParser_EmissionOrder checks that the output tree is rearranged for
// presentation: header, LinkInfo, StringData, the item list and ExtraData,
// regardless of their file order.
func TestParser_EmissionOrder(t *testing.T) {
	tb := buildHeader(1<<linkFlagHasLinkTargetIdList |
		1<<linkFlagHasLinkInfo |
		1<<linkFlagHasName)

	// IdList with one root-folder item.
	item := newTestBuilder()
	item.u16(20)
	item.u8(0x1F)
	item.u8(0x50)
	item.bytes(myComputerGuidBytes...)

	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	// LinkInfo.
	li := buildLinkInfoLocal()
	tb.bytes(li.data...)

	// StringData: Name, ANSI.
	tb.u16(4)
	tb.bytes([]byte("name")...)

	// ExtraData: one special-folder block.
	tb.u32(16)
	tb.u32(extraDataSpecialFolderSignature)
	tb.u32(7)
	tb.u32(0)
	tb.u32(0)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	output := p.Output()

	names := make([]string, 0, output.Size())
	for _, v := range output.values {
		names = append(names, v.Name())
	}

	assert.Equal(t, []string{
		"ShellLinkHeader", "LinkInfo", "StringData", "LinkTargetIdList", "ExtraData",
	}, names)
}

// TestParser_Deterministic checks that identical bytes produce identical
// trees.
func TestParser_Deterministic(t *testing.T) {
	tb := buildHeader(1 << linkFlagHasName)
	tb.u16(3)
	tb.bytes([]byte("abc")...)

	render := func() string {
		p := NewParserFromBytes(tb.data)

		err := p.Parse()
		require.NoError(t, err)

		b := new(bytes.Buffer)

		yr := NewYamlRenderer(b, nil, LevelDebug)

		err = yr.Render(p.Output(), "x.lnk")
		require.NoError(t, err)

		err = yr.Close()
		require.NoError(t, err)

		return b.String()
	}

	first := render()
	second := render()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestParser_OutputMovesOwnership(t *testing.T) {
	tb := buildHeader(0)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	first := p.Output()
	assert.NotNil(t, first)

	second := p.Output()
	assert.Nil(t, second)
}

func TestParser_TrailingGarbageIgnored(t *testing.T) {
	tb := buildHeader(0)

	// Three trailing bytes cannot hold a block size; the extra-data loop
	// stops quietly.
	tb.bytes(1, 2, 3)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	output := p.Output()
	assert.Equal(t, 1, output.Size())
}

func TestParser_HeaderAccessor(t *testing.T) {
	tb := buildHeader(1 << linkFlagHasName)
	tb.u16(0)

	p := NewParserFromBytes(tb.data)

	err := p.Parse()
	require.NoError(t, err)

	assert.True(t, p.Header().HasName())
	assert.False(t, p.Header().HasLinkInfo())
}
