// ExtraData parsing ([MS-SHLLINK] 2.5). The section is a sequence of
// signature-dispatched blocks terminated by a block size below eight. After
// every block the cursor seeks to block start plus declared size
// unconditionally, so an under-read (or a truncated block) never desyncs the
// loop. Unknown signatures are surfaced as opaque byte arrays.

package lnk

import (
	"fmt"
	"reflect"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

const (
	extraDataEnvVarSignature        = 0xA0000001
	extraDataConsoleSignature       = 0xA0000002
	extraDataTrackerSignature       = 0xA0000003
	extraDataConsoleFeSignature     = 0xA0000004
	extraDataSpecialFolderSignature = 0xA0000005
	extraDataDarwinSignature        = 0xA0000006
	extraDataIconEnvSignature       = 0xA0000007
	extraDataShimSignature          = 0xA0000008
	extraDataPropertyStoreSignature = 0xA0000009
	extraDataKnownFolderSignature   = 0xA000000B
	extraDataVistaIdListSignature   = 0xA000000C

	// extraDataBlockHeaderSize covers BlockSize and Signature.
	extraDataBlockHeaderSize = 8

	// extraDataTargetAnsiSize and extraDataTargetUnicodeSize are the fixed
	// field widths of the environment-style blocks.
	extraDataTargetAnsiSize    = 260
	extraDataTargetUnicodeSize = 520
)

type extraDataSection struct {
	in       *StreamReader
	out      *Stream
	warnings []string
}

func (eds *extraDataSection) warn(format string, args ...interface{}) {
	eds.warnings = append(eds.warnings, fmt.Sprintf(format, args...))
}

// consoleBlockFixed is the fixed-layout run of fields before FaceName in a
// ConsoleDataBlock.
type consoleBlockFixed struct {
	FillAttributes      uint16
	PopupFillAttributes uint16
	ScreenBufferSizeX   int16
	ScreenBufferSizeY   int16
	WindowSizeX         int16
	WindowSizeY         int16
	WindowOriginX       int16
	WindowOriginY       int16
	Reserved1           uint32
	Reserved2           uint32
	FontSize            uint32
	FontFamily          uint32
	FontWeight          uint32
}

const consoleBlockFixedSize = 36

func (eds *extraDataSection) consoleData() {
	o := NewStream()

	raw := eds.in.ReadBinary(consoleBlockFixedSize)

	fixed := consoleBlockFixed{}

	err := restruct.Unpack(raw, defaultEncoding, &fixed)
	log.PanicIf(err)

	o.Put(NewBitfieldValue("FillAttributes", Bitfield{Bits: uint64(fixed.FillAttributes), Spec: fillAttributesSpec}))
	o.Put(NewBitfieldValue("PopupFillAttributes", Bitfield{Bits: uint64(fixed.PopupFillAttributes), Spec: fillAttributesSpec}))
	o.Put(NewIntegerValue("ScreenBufferSizeX", int64(fixed.ScreenBufferSizeX), FormDecimal))
	o.Put(NewIntegerValue("ScreenBufferSizeY", int64(fixed.ScreenBufferSizeY), FormDecimal))
	o.Put(NewIntegerValue("WindowSizeX", int64(fixed.WindowSizeX), FormDecimal))
	o.Put(NewIntegerValue("WindowSizeY", int64(fixed.WindowSizeY), FormDecimal))
	o.Put(NewIntegerValue("WindowOriginX", int64(fixed.WindowOriginX), FormDecimal))
	o.Put(NewIntegerValue("WindowOriginY", int64(fixed.WindowOriginY), FormDecimal))
	o.Put(NewIntegerValue("FontSize", int64(fixed.FontSize), FormDecimal))

	// The font family dword is both an enumeration above the low four bits
	// and a bitwise-or'd pitch in the low four bits.
	o.Put(NewEnumeratedValue("FontFamily", Enumerated{Value: int64(fixed.FontFamily & 0xFFFFFFF0), Spec: fontFamilySpec}))
	o.Put(NewEnumeratedValue("FontPitch", Enumerated{Value: int64(fixed.FontFamily & 0x0000000F), Spec: fontPitchSpec}))

	o.Put(NewIntegerValue("FontWeight", int64(fixed.FontWeight), FormDecimal))

	faceName := eds.in.ReadExactUnicode(64)
	o.Put(NewStringValue("FaceName", UnicodeToString(faceName), true))

	o.Put(NewIntegerValue("CursorSize", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("FullScreen", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("QuickEdit", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("InsertMode", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("AutoPosition", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("HistoryBufferSize", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("NumberOfHistoryBuffers", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("HistoryNoDup", int64(eds.in.ReadU32()), FormDecimal))

	colorTable := make([]uint32, 16)
	for i := range colorTable {
		colorTable[i] = eds.in.ReadU32()
	}

	o.PutDebug(NewDwordArrayValue("ColorTable", colorTable))

	eds.out.Put(NewStructValue("ConsoleDataBlock", o))
}

func (eds *extraDataSection) consoleFeData() {
	o := NewStream()

	o.Put(NewIntegerValue("CodePage", int64(eds.in.ReadU32()), FormDecimal))

	eds.out.Put(NewStructValue("ConsoleFeDataBlock", o))
}

func (eds *extraDataSection) darwinData() {
	o := NewStream()

	// The ANSI rendition is specified as ignored.
	eds.in.ReadExactAnsi(extraDataTargetAnsiSize)

	u := eds.in.ReadExactUnicode(extraDataTargetUnicodeSize)
	o.Put(NewStringValue("DarwinDataUnicode", UnicodeToString(u), true))

	eds.out.Put(NewStructValue("DarwinDataBlock", o))
}

func (eds *extraDataSection) envVarData() {
	o := NewStream()

	a := eds.in.ReadExactAnsi(extraDataTargetAnsiSize)
	o.Put(NewStringValue("TargetAnsi", string(a), false))

	u := eds.in.ReadExactUnicode(extraDataTargetUnicodeSize)
	o.Put(NewStringValue("TargetUnicode", UnicodeToString(u), true))

	eds.out.Put(NewStructValue("EnvironmentVariableDataBlock", o))
}

func (eds *extraDataSection) iconEnvData() {
	o := NewStream()

	a := eds.in.ReadExactAnsi(extraDataTargetAnsiSize)
	o.Put(NewStringValue("TargetAnsi", string(a), false))

	u := eds.in.ReadExactUnicode(extraDataTargetUnicodeSize)
	o.Put(NewStringValue("TargetUnicode", UnicodeToString(u), true))

	eds.out.Put(NewStructValue("IconEnvironmentDataBlock", o))
}

func (eds *extraDataSection) knownFolderData() {
	o := NewStream()

	o.Put(NewGuidValue("KnownFolderId", eds.in.ReadGuid()))
	o.Put(NewIntegerValue("Offset", int64(eds.in.ReadU32()), FormDecimal))

	eds.out.Put(NewStructValue("KnownFolderDataBlock", o))
}

func (eds *extraDataSection) shimData(blockSize int) {
	o := NewStream()

	u := eds.in.ReadExactUnicode(blockSize - extraDataBlockHeaderSize)
	o.Put(NewStringValue("LayerName", UnicodeToString(u), true))

	eds.out.Put(NewStructValue("ShimDataBlock", o))
}

func (eds *extraDataSection) specialFolderData() {
	o := NewStream()

	o.Put(NewIntegerValue("SpecialFolderId", int64(eds.in.ReadU32()), FormDecimal))
	o.Put(NewIntegerValue("Offset", int64(eds.in.ReadU32()), FormDecimal))

	eds.out.Put(NewStructValue("SpecialFolderDataBlock", o))
}

// trackerBlockFixed is the fixed-layout part of a TrackerDataBlock.
type trackerBlockFixed struct {
	Length    uint32
	Version   uint32
	MachineId [16]byte
	Droid1    [16]byte
	Droid2    [16]byte

	DroidBirth1 [16]byte
	DroidBirth2 [16]byte
}

const trackerBlockFixedSize = 88

func (eds *extraDataSection) trackerData() {
	o := NewStream()

	raw := eds.in.ReadBinary(trackerBlockFixedSize)

	fixed := trackerBlockFixed{}

	err := restruct.Unpack(raw, defaultEncoding, &fixed)
	log.PanicIf(err)

	machineId := fixed.MachineId[:]
	for i, c := range machineId {
		if c == 0 {
			machineId = machineId[:i]
			break
		}
	}

	o.Put(NewStringValue("MachineID", string(machineId), false))

	o.PutDebug(NewGuidValue("DroidVolume", Guid(fixed.Droid1)))
	o.PutDebug(NewGuidValue("DroidFile", Guid(fixed.Droid2)))
	o.PutDebug(NewGuidValue("DroidBirthVolume", Guid(fixed.DroidBirth1)))
	o.PutDebug(NewGuidValue("DroidBirthFile", Guid(fixed.DroidBirth2)))

	eds.out.Put(NewStructValue("TrackerDataBlock", o))
}

func (eds *extraDataSection) opaqueBlock(name string, blockSize int) {
	o := NewStream()

	b := eds.in.ReadBinary(blockSize - extraDataBlockHeaderSize)
	o.Put(NewByteArrayValue("Bytes", b))

	eds.out.PutDebug(NewStructValue(name, o))
}

func parseExtraData(in *StreamReader) (eds *extraDataSection, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(err).Name(), err)
			}
		}
	}()

	eds = &extraDataSection{
		in:  in,
		out: NewStream(),
	}

	if in.Eof() == true {
		return eds, nil
	}

	for {
		pos := in.Pos()

		if in.Len()-pos < 4 {
			break
		}

		blockSize := int(in.ReadU32())
		if blockSize < extraDataBlockHeaderSize {
			break
		}

		if in.Len()-in.Pos() < 4 {
			eds.warn("ExtraData: block at (%d) ends before its signature", pos)
			break
		}

		signature := in.ReadU32()

		eds.parseBlock(signature, blockSize, pos)

		in.Seek(pos + blockSize)
	}

	return eds, nil
}

// parseBlock dispatches one block body. A truncated block leaves its fields
// unemitted; the caller's unconditional seek resynchronizes the loop.
func (eds *extraDataSection) parseBlock(signature uint32, blockSize, pos int) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			warnErr, ok := errRaw.(error)
			if ok == false {
				warnErr = log.Errorf("[%v]", errRaw)
			}

			eds.warn("ExtraData: block %08X at (%d): %s", signature, pos, warnErr.Error())
		}
	}()

	switch signature {
	case extraDataConsoleSignature:
		eds.consoleData()
	case extraDataConsoleFeSignature:
		eds.consoleFeData()
	case extraDataDarwinSignature:
		eds.darwinData()
	case extraDataEnvVarSignature:
		eds.envVarData()
	case extraDataIconEnvSignature:
		eds.iconEnvData()
	case extraDataKnownFolderSignature:
		eds.knownFolderData()
	case extraDataPropertyStoreSignature:
		eds.opaqueBlock("PropertyStoreDataBlock", blockSize)
	case extraDataShimSignature:
		eds.shimData(blockSize)
	case extraDataSpecialFolderSignature:
		eds.specialFolderData()
	case extraDataTrackerSignature:
		eds.trackerData()
	case extraDataVistaIdListSignature:
		eds.opaqueBlock("VistaAndAboveIDListDataBlock", blockSize)
	default:
		eds.opaqueBlock("UnknownExtraDataBlock", blockSize)
	}
}
