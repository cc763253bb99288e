package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// myComputerGuidBytes is the on-disk encoding of
// 20D04FE0-3AEA-1069-A2D8-08002B30309D ("My Computer").
var myComputerGuidBytes = []byte{
	0xE0, 0x4F, 0xD0, 0x20, 0xEA, 0x3A, 0x69, 0x10,
	0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30, 0x30, 0x9D,
}

// buildFileItemPostXp assembles a 0x30 file item with a Unicode name "A", an
// alignment NUL and a valid BEEF0004 v9 extension whose trailing offset
// points back at the extension size.
func buildFileItemPostXp() *testBuilder {
	tb := newTestBuilder()

	tb.u16(73)         // ItemIdSize (includes these two bytes)
	tb.u8(0x36)        // clstype: 0x30 | IsFile | HasUnicodeStrings
	tb.u8(0)           // reserved
	tb.u32(2048)       // FileSize
	tb.u32(0x8C054CAF) // ModifiedTime (FAT)
	tb.u16(0x20)       // Attributes (ARCHIVE)
	tb.unicodez("A")   // primary name
	tb.u8(0)           // alignment NUL

	// BEEF0004 extension, version 9.
	tb.u16(54) // extension size, including itself and the trailing offset
	tb.u16(9)  // version
	tb.u32(0xBEEF0004)
	tb.u32(0x00004CAF)        // creation (FAT)
	tb.u32(0x00004CAF)        // access (FAT)
	tb.u16(0x2E)              // windows version
	tb.u16(0)                 // v7: reserved
	tb.u64(5<<48 | 1234)      // v7: file reference
	tb.u64(0)                 // v7: reserved
	tb.u16(0)                 // v3: long string size
	tb.u32(0)                 // v9: reserved
	tb.u32(0)                 // v8: reserved
	tb.unicodez("AB")         // v3: long name
	tb.u16(19)                // offset of the extension size within the item

	return tb
}

func TestParseLinkTargetIdList_EmptyList(t *testing.T) {
	// A list holding only the terminator produces no output.
	tb := newTestBuilder()
	tb.u16(2) // IdListSize
	tb.u16(0) // terminal item

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	assert.Equal(t, 0, ils.out.Size())
	assert.Equal(t, 4, sr.Pos())
	assert.Empty(t, ils.warnings)
}

func TestParseLinkTargetIdList_FileItemPostXp(t *testing.T) {
	item := buildFileItemPostXp()

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2)) // IdListSize
	tb.bytes(item.data...)
	tb.u16(0) // terminal item

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)
	assert.Empty(t, ils.warnings)

	fileItem := findStruct(ils.out, "FileShellId")
	require.NotNil(t, fileItem)

	name := findString(fileItem, "Name")
	require.NotNil(t, name)
	assert.Equal(t, "A", name.Value())
	assert.True(t, name.IsUtf8())

	// The heuristic selected the post-XP branch: the extension's long name
	// is present and no secondary name was read.
	longName := findString(fileItem, "LongName")
	require.NotNil(t, longName)
	assert.Equal(t, "AB", longName.Value())

	assert.Nil(t, findString(fileItem, "SecondaryName"))

	fileSize := findInteger(fileItem, "FileSize")
	require.NotNil(t, fileSize)
	assert.Equal(t, int64(2048), fileSize.Value())

	// The cursor landed on the list's declared end.
	assert.Equal(t, len(tb.data), sr.Pos())
}

func TestParseLinkTargetIdList_FileItemPreXp(t *testing.T) {
	// An ANSI item whose trailing bytes do not satisfy the back-pointer
	// rule: the trailer parses as a secondary name instead.
	item := newTestBuilder()
	item.u16(0)    // size patched below
	item.u8(0x31)  // clstype: 0x30 | IsFile
	item.u8(0)     // reserved
	item.u32(100)  // FileSize
	item.u32(0x00004CAF)
	item.u16(0x20)
	item.ansiz("FILE.TXT")
	item.ansiz("SECOND")

	item.data[0] = byte(item.len())

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	fileItem := findStruct(ils.out, "FileShellId")
	require.NotNil(t, fileItem)

	name := findString(fileItem, "Name")
	require.NotNil(t, name)
	assert.Equal(t, "FILE.TXT", name.Value())
	assert.False(t, name.IsUtf8())

	secondary := findString(fileItem, "SecondaryName")
	require.NotNil(t, secondary)
	assert.Equal(t, "SECOND", secondary.Value())
}

func TestParseLinkTargetIdList_RootFolder(t *testing.T) {
	item := newTestBuilder()
	item.u16(20)  // ItemIdSize
	item.u8(0x1F) // clstype
	item.u8(0x50) // sort index: My Computer
	item.bytes(myComputerGuidBytes...)

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	folder := findStruct(ils.out, "FolderShellId")
	require.NotNil(t, folder)

	desc := findString(folder, "ShellFolder")
	require.NotNil(t, desc)
	assert.Equal(t, "My Computer (Computer)", desc.Value())

	guid := findString(folder, "ShellFolderGuid")
	require.NotNil(t, guid)
	assert.Equal(t, "20D04FE0-3AEA-1069-A2D8-08002B30309D", guid.Value())
	assert.Equal(t, LevelDebug, guid.Level())
}

func TestParseLinkTargetIdList_NetworkItem(t *testing.T) {
	item := newTestBuilder()
	item.u16(0)
	item.u8(0x47) // clstype: 0x40 | Entire Network
	item.u8(0)
	item.u8(0x80) // flags: HasDescription
	item.ansiz("\\\\server")
	item.ansiz("a share")
	item.u8(0) // trailing pad

	item.data[0] = byte(item.len())

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	network := findStruct(ils.out, "NetworkLocationShellId")
	require.NotNil(t, network)

	location := findString(network, "Location")
	require.NotNil(t, location)
	assert.Equal(t, "\\\\server", location.Value())

	description := findString(network, "Description")
	require.NotNil(t, description)
	assert.Equal(t, "a share", description.Value())
}

func TestParseLinkTargetIdList_UnknownItem(t *testing.T) {
	item := newTestBuilder()
	item.u16(5)
	item.u8(0x0B) // no parser for this class type
	item.u8(0xAA)
	item.u8(0xBB)

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	// Unknown items only surface at debug level.
	assert.NotContains(t, flatten(ils.out, LevelNormal), "UnknownShellId")
	assert.Contains(t, flatten(ils.out, LevelDebug), "UnknownShellId")
}

func TestParseLinkTargetIdList_OversizedItemTerminates(t *testing.T) {
	tb := newTestBuilder()
	tb.u16(10) // IdListSize
	tb.u16(50) // item size exceeding the list
	tb.bytes(make([]byte, 8)...)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	assert.NotEmpty(t, ils.warnings)

	// The cursor still lands on the declared end.
	assert.Equal(t, 12, sr.Pos())
}

func TestParseLinkTargetIdList_ListBeyondBuffer(t *testing.T) {
	// The declared region extends past the actual buffer; the read fails
	// and becomes a warning, not a fatal error.
	tb := newTestBuilder()
	tb.u16(100)
	tb.u16(90)
	tb.bytes(make([]byte, 16)...)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	assert.NotEmpty(t, ils.warnings)
	assert.Equal(t, 102, sr.Pos())
}

func TestParseLinkTargetIdList_VolumeItem(t *testing.T) {
	item := newTestBuilder()
	item.u16(5)
	item.u8(0x2F) // clstype: 0x20 | 0x0F
	item.u8(0)
	item.u8(0)

	tb := newTestBuilder()
	tb.u16(uint16(item.len() + 2))
	tb.bytes(item.data...)
	tb.u16(0)

	sr := NewStreamReader(tb.data)

	ils, err := parseLinkTargetIdList(sr)
	require.NoError(t, err)

	volume := findStruct(ils.out, "VolumeShellId")
	require.NotNil(t, volume)

	flags := findInteger(volume, "Flags")
	require.NotNil(t, flags)
	assert.Equal(t, int64(0x0F), flags.Value())
	assert.Equal(t, FormHex, flags.Form())
}
