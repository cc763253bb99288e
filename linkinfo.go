// LinkInfo parsing ([MS-SHLLINK] 2.3). Unlike the item list, this section is
// offset-indexed: the header carries offsets to a VolumeID block, an optional
// CommonNetworkRelativeLink block and several strings. Bounds errors here are
// fatal because a bad offset implies a corrupt header.

package lnk

import (
	"reflect"

	"github.com/dsoprea/go-logging"
)

// linkInfoHeader is the fixed (or extended) leading part of the section.
type linkInfoHeader struct {
	LinkInfoSize                    uint32
	LinkInfoHeaderSize              uint32
	LinkInfoFlags                   Bitfield
	VolumeIdOffset                  uint32
	LocalBasePathOffset             uint32
	CommonNetworkRelativeLinkOffset uint32
	CommonPathSuffixOffset          uint32

	// Only present when the header is the extended form.
	LocalBasePathOffsetUnicode     uint32
	CommonPathSuffixOffsetUnicode  uint32
}

// hasOptionalFields reports 1 for the extended header form, 0 for the basic
// form and -1 for an invalid size.
func (h linkInfoHeader) hasOptionalFields() int {
	if h.LinkInfoHeaderSize == 0x1C {
		return 0
	} else if h.LinkInfoHeaderSize >= 0x24 {
		return 1
	}

	return -1
}

func (h linkInfoHeader) hasVolumeIdAndLocalBasePath() bool {
	return h.LinkInfoFlags.ValueOf(linkInfoFlagVolumeIdAndLocalBasePath)
}

func (h linkInfoHeader) hasCommonNetworkRelativeLink() bool {
	return h.LinkInfoFlags.ValueOf(linkInfoFlagCommonNetworkRelative)
}

type linkInfoSection struct {
	in       *StreamReader
	out      *Stream
	warnings []string

	region Region
	header linkInfoHeader
}

// offsetAnsi reads a NUL-terminated codepage string at start+off1+off2.
func (lis *linkInfoSection) offsetAnsi(off1, off2 int, fieldName string) []byte {
	lis.region.CheckOffsets(off1, off2, fieldName)
	lis.in.Seek(lis.region.Start() + off1 + off2)

	return lis.in.ReadAnsi(lis.region.MaxLen(off1, off2))
}

// offsetUnicode reads a NUL-terminated UTF-16LE string at start+off1+off2
// and converts it.
func (lis *linkInfoSection) offsetUnicode(off1, off2 int, fieldName string) string {
	lis.region.CheckOffsets(off1, off2, fieldName)
	lis.in.Seek(lis.region.Start() + off1 + off2)

	u := lis.in.ReadUnicode(u16CharCount(lis.region.MaxLen(off1, off2)))

	return UnicodeToString(u)
}

func (lis *linkInfoSection) parseHeader() {
	lis.region.SetStart(lis.in.Pos())

	h := linkInfoHeader{}

	h.LinkInfoSize = lis.in.ReadU32()
	h.LinkInfoHeaderSize = lis.in.ReadU32()

	lis.region.SetLen(int(h.LinkInfoSize), "LinkInfo")

	h.LinkInfoFlags = Bitfield{Bits: uint64(lis.in.ReadU32()), Spec: linkInfoFlagsSpec}
	lis.out.PutDebug(NewBitfieldValue("LinkInfoFlags", h.LinkInfoFlags))

	h.VolumeIdOffset = lis.in.ReadU32()
	h.LocalBasePathOffset = lis.in.ReadU32()
	h.CommonNetworkRelativeLinkOffset = lis.in.ReadU32()
	h.CommonPathSuffixOffset = lis.in.ReadU32()

	switch h.hasOptionalFields() {
	case 1:
		h.LocalBasePathOffsetUnicode = lis.in.ReadU32()
		h.CommonPathSuffixOffsetUnicode = lis.in.ReadU32()
	case 0:
	default:
		log.PanicIf(newError(KindBadHeader, "wrong LinkInfo header size, expected 0x1C or >=0x24, got %#x", h.LinkInfoHeaderSize))
	}

	if addOverflows(int(h.LinkInfoSize), lis.region.Start()) == true {
		log.PanicIf(newError(KindBadLength, "LinkInfo size is wrong, got (%d) bytes", h.LinkInfoSize))
	}

	lis.header = h
}

func (lis *linkInfoSection) parseVolumeId() {
	volumeIdOffset := int(lis.header.VolumeIdOffset)

	// 0x10 is the minimum size of a VolumeID block.
	lis.region.CheckOffsets(volumeIdOffset, 0x10, "VolumeID")
	lis.in.Seek(lis.region.Start() + volumeIdOffset)

	size := lis.in.ReadU32()
	lis.region.CheckOffsets(volumeIdOffset, int(size), "VolumeIDSize")

	driveType := lis.in.ReadU32()
	lis.out.Put(NewEnumeratedValue("DriveType", Enumerated{Value: int64(driveType), Spec: driveTypeSpec}))

	driveSerialNumber := lis.in.ReadU32()
	lis.out.PutDebug(NewIntegerValue("DriveSerialNumber", int64(driveSerialNumber), FormDecimal))

	volumeLabelOffset := int(lis.in.ReadU32())
	volumeLabelOffsetUnicode := int(lis.in.ReadU32())

	// A Unicode label is present exactly when the plain label offset is
	// 0x14.
	if volumeLabelOffset == 0x14 {
		label := lis.offsetUnicode(volumeIdOffset, volumeLabelOffsetUnicode, "VolumeLabelUnicode")
		lis.out.Put(NewStringValue("VolumeLabel", label, true))
	} else {
		label := lis.offsetAnsi(volumeIdOffset, volumeLabelOffset, "VolumeLabel")
		lis.out.Put(NewStringValue("VolumeLabel", string(label), false))
	}
}

func (lis *linkInfoSection) parseCommonNetworkRelativeLink() {
	cnrlOffset := int(lis.header.CommonNetworkRelativeLinkOffset)

	// 0x14 is the minimum size of the block.
	lis.region.CheckOffsets(cnrlOffset, 0x14, "CommonNetworkRelativeLinkOffset")
	lis.in.Seek(lis.region.Start() + cnrlOffset)

	size := lis.in.ReadU32()
	lis.region.CheckOffsets(cnrlOffset, int(size), "CommonNetworkRelativeLinkSize")

	flags := Bitfield{Bits: uint64(lis.in.ReadU32()), Spec: cnrFlagsSpec}
	if flags.Verify() == false {
		// Fatal: the flags are required to detect the presence of the
		// offsets that follow.
		log.PanicIf(newError(KindBadFlags, "CommonNetworkRelativeLink flags are not valid: %#x, invalid bits are %#x", flags.Bits, flags.InvalidBits()))
	}

	lis.out.Put(NewBitfieldValue("CommonNetworkRelativeLinkFlags", flags))

	netNameOffset := int(lis.in.ReadU32())
	deviceNameOffset := int(lis.in.ReadU32())

	networkProviderType := lis.in.ReadU32()
	lis.out.Put(NewEnumeratedValue("NetworkProviderType", Enumerated{Value: int64(networkProviderType), Spec: networkProviderSpec}))

	hasOptional := netNameOffset > 0x14

	netNameOffsetUnicode := 0
	deviceNameOffsetUnicode := 0

	if hasOptional == true {
		netNameOffsetUnicode = int(lis.in.ReadU32())
		deviceNameOffsetUnicode = int(lis.in.ReadU32())
	}

	hasDeviceName := flags.ValueOf(cnrFlagValidDevice)

	if hasOptional == true {
		netName := lis.offsetUnicode(cnrlOffset, netNameOffsetUnicode, "NetNameUnicode")
		lis.out.Put(NewStringValue("NetName", netName, true))

		if hasDeviceName == true {
			deviceName := lis.offsetUnicode(cnrlOffset, deviceNameOffsetUnicode, "DeviceNameUnicode")
			lis.out.Put(NewStringValue("DeviceName", deviceName, true))
		}
	} else {
		netName := lis.offsetAnsi(cnrlOffset, netNameOffset, "NetName")
		lis.out.Put(NewStringValue("NetName", string(netName), false))

		if hasDeviceName == true {
			deviceName := lis.offsetAnsi(cnrlOffset, deviceNameOffset, "DeviceName")
			lis.out.Put(NewStringValue("DeviceName", string(deviceName), false))
		}
	}
}

func parseLinkInfo(in *StreamReader) (lis *linkInfoSection, err error) {
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

	lis = &linkInfoSection{
		in:  in,
		out: NewStream(),
	}

	lis.parseHeader()

	if lis.header.hasVolumeIdAndLocalBasePath() == true {
		lis.parseVolumeId()

		h := lis.header

		if h.hasOptionalFields() == 1 {
			localBasePath := lis.offsetUnicode(int(h.LocalBasePathOffsetUnicode), 0, "LocalBasePathUnicode")
			commonPathSuffix := lis.offsetUnicode(int(h.CommonPathSuffixOffsetUnicode), 0, "CommonPathSuffixUnicode")

			lis.out.Put(NewStringValue("LocalBasePath", localBasePath, true))
			lis.out.Put(NewStringValue("CommonPathSuffix", commonPathSuffix, true))
		} else {
			localBasePath := lis.offsetAnsi(int(h.LocalBasePathOffset), 0, "LocalBasePath")
			commonPathSuffix := lis.offsetAnsi(int(h.CommonPathSuffixOffset), 0, "CommonPathSuffix")

			lis.out.Put(NewStringValue("LocalBasePath", string(localBasePath), false))
			lis.out.Put(NewStringValue("CommonPathSuffix", string(commonPathSuffix), false))
		}
	}

	if lis.header.hasCommonNetworkRelativeLink() == true {
		lis.parseCommonNetworkRelativeLink()
	}

	in.Seek(lis.region.End())

	return lis, nil
}
