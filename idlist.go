// LinkTargetIdList parsing ([MS-SHLLINK] 2.2). The list is a sequence of
// variable-size shell items, each class-typed by its first byte. The item
// layouts are poorly documented, so every read is bounds-checked against the
// item's region and a failing item terminates the list with a warning
// instead of aborting the file: on exit the cursor always lands on the
// list's declared end.
//
// The item layouts follow the libfwsi Windows Shell Item format
// documentation.

package lnk

import (
	"fmt"
	"reflect"

	"github.com/dsoprea/go-logging"
)

const (
	// beef0004Signature marks the versioned extension block appended to
	// file items from Windows XP onward.
	beef0004Signature = 0xBEEF0004

	// delegateSubItemSignature marks the nested sub-item inside a 0x74
	// user-folder delegate item.
	delegateSubItemSignature = 0x46534643

	// clstypeMask selects the class nibbles used for dispatch.
	clstypeMask = 0x70
)

type idListSection struct {
	in       *StreamReader
	out      *Stream
	warnings []string

	region Region
}

func (ils *idListSection) warn(format string, args ...interface{}) {
	ils.warnings = append(ils.warnings, fmt.Sprintf(format, args...))
}

// parseBeef0004 reads a BEEF0004 extension block body. The size, version and
// signature have already been consumed. Fields are included only if the version is
// high enough; every read is guarded by the enclosing region.
func (ils *idListSection) parseBeef0004(b *Region, o *Stream, version uint16) bool {
	if b.Pop(4+4+2) == false {
		return false
	}

	creationTime := FatTime(ils.in.ReadU32())
	accessTime := FatTime(ils.in.ReadU32())
	windowsVersion := ils.in.ReadU16()

	o.Put(NewTimeValue("CreationTime", creationTime.Unix()))
	o.Put(NewTimeValue("AccessTime", accessTime.Unix()))
	o.PutDebug(NewEnumeratedValue("WindowsVersion", Enumerated{Value: int64(windowsVersion), Spec: beefWinverSpec}))

	if version >= 7 {
		if b.Pop(2+8+8) == false {
			return false
		}

		ils.in.ReadU16()

		fileReference := ils.in.ReadU64()

		// The file reference splits into an MFT entry (bits 0-47) and a
		// sequence number (bits 48-63).
		o.PutDebug(NewIntegerValue("MFTEntryIndex", int64(fileReference&0xFFFFFFFFFFFF), FormDecimal))
		o.PutDebug(NewIntegerValue("Sequence", int64(fileReference>>48), FormDecimal))

		ils.in.ReadU64()
	}

	longStringSize := uint16(0)
	if version >= 3 {
		if b.Pop(2) == false {
			return false
		}

		longStringSize = ils.in.ReadU16()
	}

	if version >= 9 {
		if b.Pop(4) == false {
			return false
		}

		ils.in.ReadU32()
	}

	if version >= 8 {
		if b.Pop(4) == false {
			return false
		}

		ils.in.ReadU32()
	}

	if version >= 3 {
		u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
		if b.Pop(u16TerminatedSize(u)) == false {
			return false
		}

		o.Put(NewStringValue("LongName", UnicodeToString(u), true))
	}

	if version >= 3 && longStringSize > 0 {
		a := ils.in.ReadAnsi(b.MaxLen(0, 0))
		if b.Pop(len(a)+1) == false {
			return false
		}

		o.Put(NewStringValue("LocalizedName", string(a), false))
	}

	if version >= 7 && longStringSize > 0 {
		u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
		if b.Pop(u16TerminatedSize(u)) == false {
			return false
		}

		o.Put(NewStringValue("LocalizedNameU", UnicodeToString(u), true))
	}

	return true
}

// parseRootFolder handles 0x1F items: a sort index and a shell-namespace
// GUID.
func (ils *idListSection) parseRootFolder(b Region) *Stream {
	o := NewStream()

	if b.Pop(1+16) == false {
		return o
	}

	sortIndex := ils.in.ReadU8()
	o.PutDebug(NewEnumeratedValue("SortIndex", Enumerated{Value: int64(sortIndex), Spec: sortIndexSpec}))

	folder := ils.in.ReadGuid()

	if desc := DescribeShellFolderGuid(folder.String()); desc != "" {
		o.Put(NewStringValue("ShellFolder", desc, true))
		o.PutDebug(NewGuidValue("ShellFolderGuid", folder))
	} else {
		o.Put(NewGuidValue("ShellFolderGuid", folder))
	}

	return o
}

// parseVolume handles 0x20 items. No documentation was found for these
// beyond the flag bits folded into the class type.
func (ils *idListSection) parseVolume(data []byte) *Stream {
	o := NewStream()

	flags := data[0] &^ clstypeMask
	o.Put(NewIntegerValue("Flags", int64(flags), FormHex))

	return o
}

// parseFileItem handles 0x30 file/folder items, including the pre-XP versus
// post-XP disambiguation: after the primary name (and optional alignment
// NUL), a tentative extension size and the item's trailing back-pointer are
// peeked. Only when the size fits the remaining bytes and the back-pointer
// equals the offset of the tentative size relative to the item start is the
// post-XP branch (a BEEF0004 extension) taken; otherwise a secondary name is
// read at the same position.
func (ils *idListSection) parseFileItem(data []byte, b Region) *Stream {
	o := NewStream()

	flags := Bitfield{Bits: uint64(data[0] &^ clstypeMask), Spec: fileItemFlagsSpec}
	o.PutDebug(NewBitfieldValue("Flags", flags))

	savedItemIdOffset := b.Start() - 1

	if b.Pop(1+4+4+2) == false {
		return o
	}

	ils.in.ReadU8()

	fileSize := ils.in.ReadU32()
	o.Put(NewIntegerValue("FileSize", int64(fileSize), FormFileSize))

	modifiedTime := FatTime(ils.in.ReadU32())
	o.Put(NewTimeValue("ModifiedTime", modifiedTime.Unix()))

	// Attributes are only sixteen bits wide here.
	attributes := ils.in.ReadU16()
	o.Put(NewBitfieldValue("Attributes", Bitfield{Bits: uint64(attributes), Spec: fileAttributesSpec}))

	if b.MaxLen(0, 0) <= 0 {
		return o
	}

	isUnicode := flags.ValueOf(fileItemFlagHasUnicodeStrings)

	if isUnicode == true {
		u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
		if b.Pop(u16TerminatedSize(u)) == false {
			return o
		}

		o.Put(NewStringValue("Name", UnicodeToString(u), true))
	} else {
		a := ils.in.ReadAnsi(b.MaxLen(0, 0))
		if b.Pop(len(a)+1) == false {
			return o
		}

		o.Put(NewStringValue("Name", string(a), false))
	}

	// An alignment NUL may follow the name.
	if b.MaxLen(0, 0) <= 0 {
		return o
	}

	if ils.in.Peek() == 0 {
		ils.in.Skip(1)
		b.Pop(1)
	}

	if b.MaxLen(0, 0) < 2 {
		return o
	}

	maybeSize := int(ils.in.ReadU16())
	versionOffset := ils.in.Pos()

	ils.in.Seek(b.End() - 2)
	maybeOffset := int(ils.in.ReadU16())

	if b.MaxLen(0, 0) >= maybeSize && maybeOffset == versionOffset-savedItemIdOffset {
		// Post-XP: the extension size includes itself and the trailing
		// offset points back at it.
		if b.Pop(2) == false {
			return o
		}

		ils.in.Seek(b.Start())

		if b.Pop(2+4) == false {
			return o
		}

		version := ils.in.ReadU16()
		o.PutDebug(NewIntegerValue("Version", int64(version), FormDecimal))

		signature := ils.in.ReadU32()
		o.PutDebug(NewIntegerValue("Signature", int64(signature), FormHex))

		if signature == beef0004Signature {
			ils.parseBeef0004(&b, o, version)
		}
	} else {
		// Pre-XP: a secondary name sits where the extension would be.
		ils.in.Seek(b.Start())

		if isUnicode == true {
			u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
			if b.Pop(u16TerminatedSize(u)) == false {
				return o
			}

			o.Put(NewStringValue("SecondaryName", UnicodeToString(u), true))
		} else {
			a := ils.in.ReadAnsi(b.MaxLen(0, 0))
			if b.Pop(len(a)+1) == false {
				return o
			}

			o.Put(NewStringValue("SecondaryName", string(a), false))
		}
	}

	return o
}

// parseNetworkItem handles 0x40 network-location items.
func (ils *idListSection) parseNetworkItem(data []byte, b Region) *Stream {
	o := NewStream()

	itemType := data[0] &^ clstypeMask
	o.Put(NewEnumeratedValue("Type", Enumerated{Value: int64(itemType), Spec: networkItemTypeSpec}))

	if b.Pop(1+1) == false {
		return o
	}

	ils.in.ReadU8()

	flags := Bitfield{Bits: uint64(ils.in.ReadU8()), Spec: networkItemFlagsSpec}
	o.PutDebug(NewBitfieldValue("Flags", flags))

	if b.MaxLen(0, 0) <= 0 {
		return o
	}

	location := ils.in.ReadAnsi(b.MaxLen(0, 0))
	if b.Pop(len(location)+1) == false || b.MaxLen(0, 0) <= 0 {
		return o
	}

	o.Put(NewStringValue("Location", string(location), false))

	if flags.ValueOf(networkItemFlagHasDescription) == true {
		description := ils.in.ReadAnsi(b.MaxLen(0, 0))
		if b.Pop(len(description)+1) == false || b.MaxLen(0, 0) <= 0 {
			return o
		}

		o.Put(NewStringValue("Description", string(description), false))
	}

	if flags.ValueOf(networkItemFlagHasComments) == true {
		comments := ils.in.ReadAnsi(b.MaxLen(0, 0))
		o.Put(NewStringValue("Comments", string(comments), false))
	}

	return o
}

// parseZipFolderItem handles 0x50 compressed-folder children.
func (ils *idListSection) parseZipFolderItem(b Region) *Stream {
	o := NewStream()

	if b.Pop(1+2+4+8+4+4+4+4+4) == false {
		return o
	}

	ils.in.ReadU8()
	ils.in.ReadU16()
	ils.in.ReadU32()
	ils.in.ReadU64()
	ils.in.ReadU32()
	ils.in.ReadU32()

	timestamp := FatTime(ils.in.ReadU32())
	o.Put(NewTimeValue("Timestamp", timestamp.Unix()))

	ils.in.ReadU32()

	timestamp2 := FatTime(ils.in.ReadU32())
	if timestamp2 != 0 {
		o.Put(NewTimeValue("Timestamp2", timestamp2.Unix()))
	}

	if b.Pop(4) == false {
		return o
	}

	// The declared path size is ignored; the string is NUL-terminated.
	ils.in.ReadU32()

	if b.MaxLen(0, 0) <= 0 {
		return o
	}

	u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
	if b.Pop(u16TerminatedSize(u)) == false {
		return o
	}

	o.Put(NewStringValue("FullPath", UnicodeToString(u), true))

	return o
}

// parseUriItem handles 0x60 URI items (e.g. FTP). Two shapes exist: a short
// one holding little more than the URI, and a long one with FTP host, user
// and password as length-prefixed strings.
func (ils *idListSection) parseUriItem(data []byte, b Region) *Stream {
	o := NewStream()

	if b.Pop(1) == false {
		return o
	}

	flags := Bitfield{Bits: uint64(ils.in.ReadU8()), Spec: uriItemFlagsSpec}
	o.PutDebug(NewBitfieldValue("Flags", flags))

	isUnicode := flags.ValueOf(uriItemFlagIsUnicode)

	if data[0]&^clstypeMask == 0x01 && flags.Bits&^0x80 == 0x00 {
		// Short shape: one byte of flags, four reserved bytes and the URI.
		if b.Pop(4) == false {
			return o
		}

		ils.in.ReadU32()

		uri := ils.readUriString(isUnicode, &b)
		if len(uri) > 0 {
			o.Put(NewStringValue("URI", uri, isUnicode))
		}

		return o
	}

	if b.Pop(2) == false {
		return o
	}

	dataSize := ils.in.ReadU16()

	if dataSize > 0 {
		if b.Pop(4+4+8+4+4+4+4+4+4) == false {
			return o
		}

		ils.in.ReadU32()
		ils.in.ReadU32()

		timestamp := ils.in.ReadU64()
		o.Put(NewTimeValue("Timestamp", FiletimeToUnix(timestamp)))

		ils.in.ReadU32()
		ils.in.ReadU32()
		ils.in.ReadU32()
		ils.in.ReadU32()
		ils.in.ReadU32()

		hostnameBytes := int(ils.in.ReadU32())
		if b.Pop(hostnameBytes) == false {
			return o
		}

		hostname := ils.readExactString(isUnicode, hostnameBytes)
		if len(hostname) > 0 {
			o.Put(NewStringValue("FTPHostName", hostname, isUnicode))
		}

		if b.Pop(4) == false {
			return o
		}

		userBytes := int(ils.in.ReadU32())
		if b.Pop(userBytes) == false {
			return o
		}

		user := ils.readExactString(isUnicode, userBytes)
		if len(user) > 0 {
			o.Put(NewStringValue("FTPUser", user, isUnicode))
		}

		if b.Pop(4) == false {
			return o
		}

		passwordBytes := int(ils.in.ReadU32())
		if b.Pop(passwordBytes) == false {
			return o
		}

		password := ils.readExactString(isUnicode, passwordBytes)
		if len(password) > 0 {
			o.Put(NewStringValue("FTPPassword", password, isUnicode))
		}
	}

	if b.MaxLen(0, 0) <= 0 {
		return o
	}

	uri := ils.readUriString(isUnicode, &b)
	if len(uri) > 0 {
		o.Put(NewStringValue("URI", uri, isUnicode))
	}

	// More data can follow, including a BEEF0014 block, which is not
	// carried.

	return o
}

func (ils *idListSection) readUriString(isUnicode bool, b *Region) string {
	if isUnicode == true {
		u := ils.in.ReadUnicode(u16CharCount(b.MaxLen(0, 0)))
		return UnicodeToString(u)
	}

	a := ils.in.ReadAnsi(b.MaxLen(0, 0))

	return string(a)
}

func (ils *idListSection) readExactString(isUnicode bool, nBytes int) string {
	if isUnicode == true {
		u := ils.in.ReadExactUnicode(nBytes)
		return UnicodeToString(u)
	}

	a := ils.in.ReadExactAnsi(nBytes)

	return string(a)
}

// parseControlPanelItem handles 0x70 control-panel items.
func (ils *idListSection) parseControlPanelItem(b Region) *Stream {
	o := NewStream()

	if b.Pop(1+4+4+2+16) == false {
		return o
	}

	sortOrder := ils.in.ReadU8()
	o.PutDebug(NewIntegerValue("SortOrder", int64(sortOrder), FormHex))

	ils.in.ReadU32()
	ils.in.ReadU32()
	ils.in.ReadU16()

	guid := ils.in.ReadGuid()

	if desc := DescribeControlPanelGuid(guid.String()); desc != "" {
		o.Put(NewStringValue("Category", desc, true))
	}

	o.Put(NewGuidValue("GUID", guid))

	return o
}

// parseUserFolderDelegate handles 0x74 items: a nested sub-shell-item
// followed by a delegate GUID pair located through DelegateOffset, and a
// BEEF0004 extension. The inner item is bounded both by its declared size
// and by the outer delegate offset.
func (ils *idListSection) parseUserFolderDelegate(b Region) *Stream {
	o := NewStream()

	outer := b

	if b.Pop(1+2+4+2) == false {
		return o
	}

	inner := b

	ils.in.ReadU8()

	delegateOffset := int(ils.in.ReadU16())

	// Offset plus three, to exclude the leading byte and the offset field
	// itself.
	if outer.CheckOffsetsOk(3, delegateOffset) == false {
		return o
	}

	subItemSignature := ils.in.ReadU32()
	subItemSize := int(ils.in.ReadU16())

	if subItemSignature != delegateSubItemSignature || b.Pop(subItemSize) == false {
		return o
	}

	inner.SetLen(subItemSize, "SubShellItem")

	if inner.End() > outer.End() ||
		inner.End() > outer.Start()+delegateOffset+3 ||
		inner.Pop(1+1+4+4+2) == false {
		return o
	}

	clsType := ils.in.ReadU8()
	if clsType != 0x31 {
		return o
	}

	ils.in.ReadU8()

	fileSize := ils.in.ReadU32()
	o.Put(NewIntegerValue("FileSize", int64(fileSize), FormFileSize))

	modifiedTime := FatTime(ils.in.ReadU32())
	o.Put(NewTimeValue("ModifiedTime", modifiedTime.Unix()))

	fileAttributes := ils.in.ReadU16()
	o.Put(NewBitfieldValue("FileAttributes", Bitfield{Bits: uint64(fileAttributes), Spec: fileAttributesSpec}))

	primaryName := ils.in.ReadAnsi(inner.MaxLen(0, 0))
	o.Put(NewStringValue("PrimaryName", string(primaryName), false))

	ils.in.Seek(outer.Start() + 3 + delegateOffset)

	if b.Pop(16+16) == false {
		return o
	}

	delegateGuid := ils.in.ReadGuid()
	o.PutDebug(NewGuidValue("DelegateGuid", delegateGuid))

	delegateClass := ils.in.ReadGuid()

	if desc := DescribeShellFolderGuid(delegateClass.String()); desc != "" {
		o.PutDebug(NewStringValue("DelegateClass", desc, true))
	}

	o.PutDebug(NewGuidValue("DelegateClassGuid", delegateClass))

	if b.Pop(2+2+4) == false {
		return o
	}

	ils.in.ReadU16()

	version := ils.in.ReadU16()
	signature := ils.in.ReadU32()

	if signature == beef0004Signature {
		ils.parseBeef0004(&b, o, version)
	}

	return o
}

func (ils *idListSection) putUnknownItem(data []byte) {
	o := NewStream()
	o.Put(NewByteArrayValue("Bytes", data))
	ils.out.PutDebug(NewStructValue("UnknownShellId", o))
}

// parseItems runs the item loop. Any raised failure is converted by the
// caller into a warning that terminates the list.
func (ils *idListSection) parseItems() {
	for {
		itemBounds := Region{}
		itemBounds.SetStart(ils.region.Start())

		if ils.region.CheckRead(0, 2) == false {
			ils.warn("LinkTargetIdList: list ended before an item size")
			ils.in.Seek(ils.region.End())
			return
		}

		itemIdSize := int(ils.in.ReadU16())
		if itemIdSize == 0 {
			// Terminal item.
			break
		}

		// The item size includes its own two bytes.
		if ils.region.CheckRead(0, itemIdSize) == false ||
			itemBounds.SetLenOk(itemIdSize) == false ||
			itemBounds.Pop(2) == false {
			ils.warn("LinkTargetIdList: item size (%d) does not fit the list", itemIdSize)
			ils.in.Seek(ils.region.End())
			return
		}

		if ils.region.CheckRead(0, itemIdSize-2) == false {
			ils.warn("LinkTargetIdList: item data does not fit the list")
			ils.in.Seek(ils.region.End())
			return
		}

		data := ils.in.ReadBinary(itemIdSize - 2)

		ils.in.Seek(itemBounds.Start())

		if itemBounds.Pop(1) == false {
			ils.warn("LinkTargetIdList: item too small for a class type")
			ils.in.Seek(ils.region.End())
			return
		}

		clstype := ils.in.ReadU8()

		if clstype == 0x1F {
			o := ils.parseRootFolder(itemBounds)
			ils.out.Put(NewStructValue("FolderShellId", o))
		} else if clstype&clstypeMask == 0x20 {
			o := ils.parseVolume(data)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("VolumeShellId", o))
		} else if clstype&clstypeMask == 0x30 {
			o := ils.parseFileItem(data, itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("FileShellId", o))
		} else if clstype&clstypeMask == 0x40 {
			o := ils.parseNetworkItem(data, itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("NetworkLocationShellId", o))
		} else if clstype&clstypeMask == 0x50 {
			o := ils.parseZipFolderItem(itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("ZipFolderShellId", o))
		} else if clstype&clstypeMask == 0x60 {
			o := ils.parseUriItem(data, itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("URIShellId", o))
		} else if clstype == 0x74 {
			o := ils.parseUserFolderDelegate(itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("UserFolderDelegate", o))
		} else if clstype&clstypeMask == 0x70 {
			o := ils.parseControlPanelItem(itemBounds)
			o.PutDebug(NewByteArrayValue("Bytes", data))
			ils.out.Put(NewStructValue("ControlPanelShellId", o))
		} else {
			ils.putUnknownItem(data)
		}

		ils.region.Pop(itemIdSize)
		ils.in.Seek(ils.region.Start())
	}

	ils.in.Seek(ils.region.End())
}

// parseLinkTargetIdList reads the whole section. Malformed items terminate
// the list early without affecting the outer cursor, which always ends up at
// the list's declared end.
func parseLinkTargetIdList(in *StreamReader) (ils *idListSection, err error) {
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

	ils = &idListSection{
		in:  in,
		out: NewStream(),
	}

	// The list size does not include its own two bytes.
	idListSize := int(in.ReadU16())

	ils.region.SetStart(in.Pos())
	ils.region.SetLen(idListSize, "LinkTargetIdList")

	func() {
		defer func() {
			if errRaw := recover(); errRaw != nil {
				// A read escaped the guarded paths (e.g. the declared list
				// region extends beyond the actual buffer). Keep the fields
				// collected so far and resynchronize.
				warnErr, ok := errRaw.(error)
				if ok == false {
					warnErr = log.Errorf("[%v]", errRaw)
				}

				ils.warn("LinkTargetIdList: %s", warnErr.Error())
				ils.in.Seek(ils.region.End())
			}
		}()

		ils.parseItems()
	}()

	return ils, nil
}
