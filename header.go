// ShellLinkHeader parsing ([MS-SHLLINK] 2.1). The header is the one section
// that is never recovered from: its size and CLSID identify the format, and
// its flags gate the structure of everything after it.

package lnk

import (
	"reflect"

	"encoding/binary"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

const (
	// shellLinkHeaderSize is the required value of the HeaderSize field and
	// the fixed byte length of the section.
	shellLinkHeaderSize = 0x4C
)

var (
	// requiredLinkClsid identifies a shell-link file.
	requiredLinkClsid = "00021401-0000-0000-C000-000000000046"

	defaultEncoding = binary.LittleEndian
)

// ShellLinkHeader is the fixed 76-byte preamble of every link file.
type ShellLinkHeader struct {
	// HeaderSize: must be 0x4C.
	HeaderSize uint32

	// LinkClsid: must be the shell-link class id.
	LinkClsid [16]byte

	// LinkFlags: presence and encoding switches for the rest of the file.
	LinkFlags uint32

	// FileAttributes: attributes of the link target.
	FileAttributes uint32

	// CreationTime, AccessTime, WriteTime: FILETIME stamps of the target.
	CreationTime uint64
	AccessTime   uint64
	WriteTime    uint64

	// FileSize: low 32 bits of the target size.
	FileSize uint32

	// IconIndex: index of the icon within the icon location.
	IconIndex uint32

	// ShowCommand: window state requested when activating the target.
	ShowCommand uint32

	// HotKeyLow, HotKeyHigh: virtual-key code and modifier bits.
	HotKeyLow  uint8
	HotKeyHigh uint8

	// Reserved1, Reserved2, Reserved3: read and discarded.
	Reserved1 uint16
	Reserved2 uint32
	Reserved3 uint32
}

// HasLinkTargetIdList indicates the LinkTargetIdList section follows.
func (h ShellLinkHeader) HasLinkTargetIdList() bool {
	return h.flag(linkFlagHasLinkTargetIdList)
}

// HasLinkInfo indicates the LinkInfo section is present.
func (h ShellLinkHeader) HasLinkInfo() bool {
	return h.flag(linkFlagHasLinkInfo)
}

// HasName indicates the NAME_STRING StringData entry is present.
func (h ShellLinkHeader) HasName() bool {
	return h.flag(linkFlagHasName)
}

// HasRelativePath indicates the RELATIVE_PATH StringData entry is present.
func (h ShellLinkHeader) HasRelativePath() bool {
	return h.flag(linkFlagHasRelativePath)
}

// HasWorkingDir indicates the WORKING_DIR StringData entry is present.
func (h ShellLinkHeader) HasWorkingDir() bool {
	return h.flag(linkFlagHasWorkingDir)
}

// HasArguments indicates the COMMAND_LINE_ARGUMENTS StringData entry is
// present.
func (h ShellLinkHeader) HasArguments() bool {
	return h.flag(linkFlagHasArguments)
}

// HasIconLocation indicates the ICON_LOCATION StringData entry is present.
func (h ShellLinkHeader) HasIconLocation() bool {
	return h.flag(linkFlagHasIconLocation)
}

// IsUnicode indicates StringData entries are UTF-16LE rather than codepage
// text.
func (h ShellLinkHeader) IsUnicode() bool {
	return h.flag(linkFlagIsUnicode)
}

func (h ShellLinkHeader) flag(bit int) bool {
	return h.LinkFlags&(1<<uint(bit)) != 0
}

// headerSection parses and emits the header.
type headerSection struct {
	data ShellLinkHeader
	out  *Stream
}

func parseHeader(in *StreamReader) (hs *headerSection, err error) {
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

	if in.Len() < shellLinkHeaderSize {
		log.PanicIf(newError(KindShortRead, "file ends inside the header: (%d) bytes", in.Len()))
	}

	raw := in.ReadBinary(shellLinkHeaderSize)

	h := ShellLinkHeader{}

	err = restruct.Unpack(raw, defaultEncoding, &h)
	log.PanicIf(err)

	if h.HeaderSize != shellLinkHeaderSize {
		log.PanicIf(newError(KindBadHeader, "wrong header size, should be 0x4C, got %#x", h.HeaderSize))
	}

	clsid := Guid(h.LinkClsid)
	if clsid.String() != requiredLinkClsid {
		log.PanicIf(newError(KindBadHeader, "wrong magic number, expected %s, got %s", requiredLinkClsid, clsid))
	}

	linkFlags := Bitfield{Bits: uint64(h.LinkFlags), Spec: linkFlagsSpec}
	if linkFlags.Verify() == false {
		// Invalid link flags are fatal because they define the structure of
		// the rest of the file.
		log.PanicIf(newError(KindBadFlags, "link flags are not valid: %#x, invalid bits are %#x", h.LinkFlags, linkFlags.InvalidBits()))
	}

	out := NewStream()

	out.Put(NewBitfieldValue("LinkFlags", linkFlags))
	out.Put(NewBitfieldValue("FileAttributes", Bitfield{Bits: uint64(h.FileAttributes), Spec: fileAttributesSpec}))
	out.Put(NewTimeValue("CreationTime", FiletimeToUnix(h.CreationTime)))
	out.Put(NewTimeValue("AccessTime", FiletimeToUnix(h.AccessTime)))
	out.Put(NewTimeValue("WriteTime", FiletimeToUnix(h.WriteTime)))
	out.Put(NewIntegerValue("FileSize", int64(h.FileSize), FormFileSize))
	out.PutDebug(NewIntegerValue("IconIndex", int64(h.IconIndex), FormDecimal))
	out.PutDebug(NewEnumeratedValue("ShowCommand", Enumerated{Value: int64(h.ShowCommand), Spec: showCommandSpec}))
	out.PutDebug(NewEnumeratedValue("HotKeyLow", Enumerated{Value: int64(h.HotKeyLow), Spec: hotKeyLowSpec}))
	out.PutDebug(NewBitfieldValue("HotKeyHigh", Bitfield{Bits: uint64(h.HotKeyHigh), Spec: hotKeyHighSpec}))

	hs = &headerSection{
		data: h,
		out:  out,
	}

	return hs, nil
}
