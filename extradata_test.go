package lnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraData_UnknownBlock(t *testing.T) {
	tb := newTestBuilder()

	// An unknown signature followed by a well-known block: the unknown one
	// is surfaced as opaque bytes and the loop keeps going.
	tb.u32(0x20)
	tb.u32(0xA0FFFFFF)
	tb.bytes(make([]byte, 0x18)...)

	tb.u32(12)
	tb.u32(extraDataConsoleFeSignature)
	tb.u32(932)

	tb.u32(0) // terminator

	sr := NewStreamReader(tb.data)

	eds, err := parseExtraData(sr)
	require.NoError(t, err)

	unknown := findStruct(eds.out, "UnknownExtraDataBlock")
	require.NotNil(t, unknown)

	names := flatten(eds.out, LevelNormal)
	assert.NotContains(t, names, "UnknownExtraDataBlock")

	bytesValue := unknown.values[0].(*ArrayValue)
	assert.Equal(t, 24, bytesValue.Size())

	consoleFe := findStruct(eds.out, "ConsoleFeDataBlock")
	require.NotNil(t, consoleFe)

	codePage := findInteger(consoleFe, "CodePage")
	require.NotNil(t, codePage)
	assert.Equal(t, int64(932), codePage.Value())
}

func TestParseExtraData_EnvVar(t *testing.T) {
	tb := newTestBuilder()

	tb.u32(uint32(8 + 260 + 520))
	tb.u32(extraDataEnvVarSignature)

	ansi := make([]byte, 260)
	copy(ansi, "%WINDIR%")
	tb.bytes(ansi...)

	unicode := make([]byte, 520)
	copy(unicode, []byte{'%', 0, 'W', 0, 'I', 0, 'N', 0, 'D', 0, 'I', 0, 'R', 0, '%', 0})
	tb.bytes(unicode...)

	tb.u32(0)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	block := findStruct(eds.out, "EnvironmentVariableDataBlock")
	require.NotNil(t, block)

	target := findString(block, "TargetUnicode")
	require.NotNil(t, target)
	assert.Equal(t, "%WINDIR%", target.Value())

	targetAnsi := findString(block, "TargetAnsi")
	require.NotNil(t, targetAnsi)
	assert.Equal(t, "%WINDIR%", targetAnsi.Value())
	assert.False(t, targetAnsi.IsUtf8())
}

func TestParseExtraData_Tracker(t *testing.T) {
	tb := newTestBuilder()

	tb.u32(uint32(8 + trackerBlockFixedSize))
	tb.u32(extraDataTrackerSignature)
	tb.u32(trackerBlockFixedSize)
	tb.u32(0)

	machine := make([]byte, 16)
	copy(machine, "workstation")
	tb.bytes(machine...)

	tb.bytes(testLinkClsidBytes...) // DroidVolume
	tb.bytes(make([]byte, 48)...)   // remaining GUIDs zeroed

	tb.u32(0)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	tracker := findStruct(eds.out, "TrackerDataBlock")
	require.NotNil(t, tracker)

	machineId := findString(tracker, "MachineID")
	require.NotNil(t, machineId)
	assert.Equal(t, "workstation", machineId.Value())

	droid := findString(tracker, "DroidVolume")
	require.NotNil(t, droid)
	assert.Equal(t, "00021401-0000-0000-C000-000000000046", droid.Value())
	assert.Equal(t, LevelDebug, droid.Level())
}

func TestParseExtraData_SpecialFolder(t *testing.T) {
	tb := newTestBuilder()

	tb.u32(16)
	tb.u32(extraDataSpecialFolderSignature)
	tb.u32(0x25) // CSIDL
	tb.u32(0xF0)

	tb.u32(0)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	block := findStruct(eds.out, "SpecialFolderDataBlock")
	require.NotNil(t, block)

	id := findInteger(block, "SpecialFolderId")
	require.NotNil(t, id)
	assert.Equal(t, int64(0x25), id.Value())
}

func TestParseExtraData_TruncatedBlockResyncs(t *testing.T) {
	tb := newTestBuilder()

	// A console block whose declared size extends past the buffer: its
	// fields are left unemitted but nothing fatal happens.
	tb.u32(0xC8)
	tb.u32(extraDataConsoleSignature)
	tb.bytes(make([]byte, 8)...)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	assert.Nil(t, findStruct(eds.out, "ConsoleDataBlock"))
	assert.NotEmpty(t, eds.warnings)
}

func TestParseExtraData_Console(t *testing.T) {
	tb := newTestBuilder()

	body := newTestBuilder()
	body.u16(0x07) // FillAttributes
	body.u16(0xF0) // PopupFillAttributes
	body.u16(80)   // ScreenBufferSizeX
	body.u16(300)  // ScreenBufferSizeY
	body.u16(80)   // WindowSizeX
	body.u16(25)   // WindowSizeY
	body.u16(0)    // WindowOriginX
	body.u16(0)    // WindowOriginY
	body.u32(0)    // Reserved1
	body.u32(0)    // Reserved2
	body.u32(14)   // FontSize
	body.u32(0x31) // FontFamily MODERN | FontPitch FIXED_PITCH
	body.u32(400)  // FontWeight

	faceName := make([]byte, 64)
	copy(faceName, []byte{'C', 0, 'o', 0, 'n', 0, 's', 0, 'o', 0, 'l', 0, 'a', 0, 's', 0})
	body.bytes(faceName...)

	body.u32(25) // CursorSize
	body.u32(0)  // FullScreen
	body.u32(1)  // QuickEdit
	body.u32(1)  // InsertMode
	body.u32(1)  // AutoPosition
	body.u32(50) // HistoryBufferSize
	body.u32(4)  // NumberOfHistoryBuffers
	body.u32(0)  // HistoryNoDup

	for i := 0; i < 16; i++ {
		body.u32(uint32(i))
	}

	tb.u32(uint32(8 + body.len()))
	tb.u32(extraDataConsoleSignature)
	tb.bytes(body.data...)
	tb.u32(0)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	console := findStruct(eds.out, "ConsoleDataBlock")
	require.NotNil(t, console)

	faceNameValue := findString(console, "FaceName")
	require.NotNil(t, faceNameValue)
	assert.Equal(t, "Consolas", faceNameValue.Value())

	names := flatten(console, LevelDebug)
	assert.Contains(t, names, "FontFamily")
	assert.Contains(t, names, "FontPitch")
	assert.Contains(t, names, "ColorTable")

	// The color table only shows at debug level.
	assert.NotContains(t, flatten(console, LevelNormal), "ColorTable")
}

func TestParseExtraData_EmptyInput(t *testing.T) {
	eds, err := parseExtraData(NewStreamReader(nil))
	require.NoError(t, err)

	assert.Equal(t, 0, eds.out.Size())
}

func TestParseExtraData_Shim(t *testing.T) {
	tb := newTestBuilder()

	layer := []byte{'W', 0, 'i', 0, 'n', 0, '9', 0, '5', 0, 0, 0}

	tb.u32(uint32(8 + len(layer)))
	tb.u32(extraDataShimSignature)
	tb.bytes(layer...)
	tb.u32(0)

	eds, err := parseExtraData(NewStreamReader(tb.data))
	require.NoError(t, err)

	shim := findStruct(eds.out, "ShimDataBlock")
	require.NotNil(t, shim)

	layerName := findString(shim, "LayerName")
	require.NotNil(t, layerName)
	assert.Equal(t, "Win95", layerName.Value())
}
