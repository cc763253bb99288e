// Static descriptions for every enumerated and flags field in the format.
// The tables mirror [MS-SHLLINK] and the libfwsi shell-item documentation.

package lnk

// EnumPair associates one raw value with its label.
type EnumPair struct {
	Key   int64
	Label string
}

// EnumSpec is a static description table, sorted by key.
type EnumSpec []EnumPair

// Describe returns the label matching the raw value, or an empty string.
func (es EnumSpec) Describe(value int64) string {
	for _, p := range es {
		if p.Key == value {
			return p.Label
		}
	}

	return ""
}

// Valid indicates whether the value appears in the table.
func (es EnumSpec) Valid(value int64) bool {
	for _, p := range es {
		if p.Key == value {
			return true
		}
	}

	return false
}

// Enumerated pairs a raw integer with its description table.
type Enumerated struct {
	Value int64
	Spec  EnumSpec
}

func (e Enumerated) Describe() string {
	return e.Spec.Describe(e.Value)
}

func (e Enumerated) Valid() bool {
	return e.Spec.Valid(e.Value)
}

// BitfieldSpec is a static per-bit label table. Entries may be empty for
// reserved bits. InvalidBits masks the bits that must never be set.
type BitfieldSpec struct {
	Labels      []string
	InvalidBits uint64
}

// Bitfield pairs raw bits with their description table.
type Bitfield struct {
	Bits uint64
	Spec *BitfieldSpec
}

// NumBits is the width of the field.
func (b Bitfield) NumBits() int {
	return len(b.Spec.Labels)
}

// ValueOf indicates whether the given bit is set.
func (b Bitfield) ValueOf(bit int) bool {
	if bit < 0 {
		return false
	}

	return b.Bits&(1<<uint(bit)) != 0
}

// Describe returns the label of one bit, empty for reserved bits.
func (b Bitfield) Describe(bit int) string {
	return b.Spec.Labels[bit]
}

// InvalidBits returns the set bits that the table marks invalid.
func (b Bitfield) InvalidBits() uint64 {
	return b.Bits & b.Spec.InvalidBits
}

// Verify indicates that no invalid bit is set.
func (b Bitfield) Verify() bool {
	return b.Bits&b.Spec.InvalidBits == 0
}

// Header link flags ([MS-SHLLINK] 2.1.1). The bit positions gate the
// presence and encoding of every later section.
const (
	linkFlagHasLinkTargetIdList = 0
	linkFlagHasLinkInfo         = 1
	linkFlagHasName             = 2
	linkFlagHasRelativePath     = 3
	linkFlagHasWorkingDir       = 4
	linkFlagHasArguments        = 5
	linkFlagHasIconLocation     = 6
	linkFlagIsUnicode           = 7
)

var linkFlagsSpec = &BitfieldSpec{
	InvalidBits: (1 << 11) | (0x3F << 26),
	Labels: []string{
		"HasLinkTargetIdList",       // 0
		"HasLinkInfo",               // 1
		"HasName",                   // 2
		"HasRelativePath",           // 3
		"HasWorkingDir",             // 4
		"HasArguments",              // 5
		"HasIconLocation",           // 6
		"IsUnicode",                 // 7
		"ForceNoLinkInfo",           // 8
		"HasExpString",              // 9
		"RunInSeparateProcess",      // 10
		"Unused1",                   // 11
		"HasDarwinId",               // 12
		"RunAsUser",                 // 13
		"HasExpIcon",                // 14
		"NoPidIAlias",               // 15
		"Unused2",                   // 16
		"RunWithShimLayer",          // 17
		"ForceNoLinkTrack",          // 18
		"EnableTargetMetadata",      // 19
		"DisableLinkPathTracking",   // 20
		"DisableKnownFolderTracking", // 21
		"DisableKnownFolderAlias",   // 22
		"AllowLinkToLink",           // 23
		"UnaliasOnSave",             // 24
		"PreferEnvironmentPath",     // 25
		"", "", "", "", "", "",      // 26..31
	},
}

// File attributes ([MS-SHLLINK] 2.1.2).
var fileAttributesSpec = &BitfieldSpec{
	InvalidBits: (1 << 3) | (1 << 6) | (0x1FFFF << 15),
	Labels: []string{
		"READONLY",            // 0
		"HIDDEN",              // 1
		"SYSTEM",              // 2
		"Reserved1",           // 3
		"DIRECTORY",           // 4
		"ARCHIVE",             // 5
		"Reserved2",           // 6
		"NORMAL",              // 7
		"TEMPORARY",           // 8
		"SPARSE_FILE",         // 9
		"REPARSE_POINT",       // 10
		"COMPRESSED",          // 11
		"OFFLINE",             // 12
		"NOT_CONTENT_INDEXED", // 13
		"ENCRYPTED",           // 14
		"", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", // 15..31
	},
}

// ShowCommand ([MS-SHLLINK] 2.1).
var showCommandSpec = EnumSpec{
	{0x1, "SHOWNORMAL"},
	{0x3, "SHOWMAXIMIZED"},
	{0x7, "SHOWMINNOACTIVE"},
}

// Hotkey low byte: virtual-key codes ([MS-SHLLINK] 2.1.3).
var hotKeyLowSpec = EnumSpec{
	{0x00, "None"},
	{0x30, "0"},
	{0x31, "1"},
	{0x32, "2"},
	{0x33, "3"},
	{0x34, "4"},
	{0x35, "5"},
	{0x36, "6"},
	{0x37, "7"},
	{0x38, "8"},
	{0x39, "9"},
	{0x41, "A"},
	{0x42, "B"},
	{0x43, "C"},
	{0x44, "D"},
	{0x45, "E"},
	{0x46, "F"},
	{0x47, "G"},
	{0x48, "H"},
	{0x49, "I"},
	{0x4A, "J"},
	{0x4B, "K"},
	{0x4C, "L"},
	{0x4D, "M"},
	{0x4E, "N"},
	{0x4F, "O"},
	{0x50, "P"},
	{0x51, "Q"},
	{0x52, "R"},
	{0x53, "S"},
	{0x54, "T"},
	{0x55, "U"},
	{0x56, "V"},
	{0x57, "W"},
	{0x58, "X"},
	{0x59, "Y"},
	{0x70, "F1"},
	{0x71, "F2"},
	{0x72, "F3"},
	{0x73, "F4"},
	{0x74, "F5"},
	{0x75, "F6"},
	{0x76, "F7"},
	{0x77, "F8"},
	{0x78, "F9"},
	{0x79, "F10"},
	{0x7A, "F11"},
	{0x7B, "F12"},
	{0x7C, "F13"},
	{0x7D, "F14"},
	{0x7E, "F15"},
	{0x7F, "F16"},
	{0x80, "F17"},
	{0x81, "F18"},
	{0x82, "F19"},
	{0x83, "F20"},
	{0x84, "F21"},
	{0x85, "F22"},
	{0x86, "F23"},
	{0x87, "F24"},
	{0x88, "NUM_LOCK"},
	{0x89, "SCROLL_LOCK"},
}

// Hotkey high byte: modifier bits. The reserved bits must verify as zero.
var hotKeyHighSpec = &BitfieldSpec{
	InvalidBits: 0x1F << 3,
	Labels: []string{
		"SHIFT",   // 0
		"CONTROL", // 1
		"ALT",     // 2
		"", "", "", "", "", // 3..7
	},
}

// Shell-item 0x1F sort index.
var sortIndexSpec = EnumSpec{
	{0x00, "Internet Explorer"},
	{0x42, "Libraries"},
	{0x44, "Users"},
	{0x48, "My Documents"},
	{0x50, "My Computer"},
	{0x58, "My Network Places"},
	{0x60, "Recycle Bin"},
	{0x68, "Internet Explorer"},
	{0x80, "My Games"},
}

// Shell-item 0x30 flags. Only the low bits carry meaning; bit 7 marks an
// embedded class id.
const (
	fileItemFlagIsDirectory       = 0
	fileItemFlagIsFile            = 1
	fileItemFlagHasUnicodeStrings = 2
)

var fileItemFlagsSpec = &BitfieldSpec{
	InvalidBits: 0x78,
	Labels: []string{
		"IsDirectory",       // 0
		"IsFile",            // 1
		"HasUnicodeStrings", // 2
		"", "", "", "",      // 3..6
		"HasClassId",        // 7
	},
}

// Shell-item 0x40 network location types.
var networkItemTypeSpec = EnumSpec{
	{0x01, "Domain/Workgroup Name"},
	{0x02, "Server UNC Path"},
	{0x03, "Share UNC Path"},
	{0x06, "Microsoft Windows Network"},
	{0x07, "Entire Network"},
	{0x0D, "Network Places / Generic"},
	{0x0E, "Network Places / Root"},
}

const (
	networkItemFlagHasComments    = 6
	networkItemFlagHasDescription = 7
)

var networkItemFlagsSpec = &BitfieldSpec{
	InvalidBits: 0x3F,
	Labels: []string{
		"", "", "", "", "", "", // 0..5
		"HasComments",    // 6
		"HasDescription", // 7
	},
}

// Shell-item 0x60 URI flags.
const (
	uriItemFlagIsUnicode = 7
)

var uriItemFlagsSpec = &BitfieldSpec{
	InvalidBits: 0x00,
	Labels: []string{
		"Flag0x01", // 0
		"Flag0x02", // 1
		"", "", "", "", "", // 2..6
		"IsUnicode", // 7
	},
}

// Windows version labels found in BEEF0004 extension blocks.
var beefWinverSpec = EnumSpec{
	{0x0014, "Windows XP or 2003"},
	{0x0026, "Windows Vista"},
	{0x002A, "Windows 7, 8.0"},
	{0x002E, "Windows 8.1, 10"},
}

// LinkInfo flags ([MS-SHLLINK] 2.3). Only the low two bits are defined.
const (
	linkInfoFlagVolumeIdAndLocalBasePath = 0
	linkInfoFlagCommonNetworkRelative    = 1
)

var linkInfoFlagsSpec = &BitfieldSpec{
	InvalidBits: 0xFFFFFFFC,
	Labels: []string{
		"VolumeIDAndLocalBasePath",               // 0
		"CommonNetworkRelativeLinkAndPathSuffix", // 1
		"", "", "", "", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "",
	},
}

// VolumeID drive types ([MS-SHLLINK] 2.3.1).
var driveTypeSpec = EnumSpec{
	{0x0, "UNKNOWN"},
	{0x1, "NO_ROOT_DIR"},
	{0x2, "REMOVABLE"},
	{0x3, "FIXED"},
	{0x4, "REMOTE"},
	{0x5, "CDROM"},
	{0x6, "RAMDISK"},
}

// CommonNetworkRelativeLink flags ([MS-SHLLINK] 2.3.2).
const (
	cnrFlagValidDevice  = 0
	cnrFlagValidNetType = 1
)

var cnrFlagsSpec = &BitfieldSpec{
	InvalidBits: 0xFFFFFFFC,
	Labels: []string{
		"ValidDevice",  // 0
		"ValidNetType", // 1
		"", "", "", "", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "",
	},
}

// Network provider types ([MS-SHLLINK] 2.3.2, field NetworkProviderType).
var networkProviderSpec = EnumSpec{
	{0x001A0000, "AVID"},
	{0x001B0000, "DOCUSPACE"},
	{0x001C0000, "MANGOSOFT"},
	{0x001D0000, "SERNET"},
	{0x001E0000, "RIVERFRONT1"},
	{0x001F0000, "RIVERFRONT2"},
	{0x00200000, "DECORB"},
	{0x00210000, "PROTSTOR"},
	{0x00220000, "FJ_REDIR"},
	{0x00230000, "DISTINCT"},
	{0x00240000, "TWINS"},
	{0x00250000, "RDR2SAMPLE"},
	{0x00260000, "CSC"},
	{0x00270000, "3IN1"},
	{0x00290000, "EXTENDNET"},
	{0x002A0000, "STAC"},
	{0x002B0000, "FOXBAT"},
	{0x002C0000, "YAHOO"},
	{0x002D0000, "EXIFS"},
	{0x002E0000, "DAV"},
	{0x002F0000, "KNOWARE"},
	{0x00300000, "OBJECT_DIRE"},
	{0x00310000, "MASFAX"},
	{0x00320000, "HOB_NFS"},
	{0x00330000, "SHIVA"},
	{0x00340000, "IBMAL"},
	{0x00350000, "LOCK"},
	{0x00360000, "TERMSRV"},
	{0x00370000, "SRT"},
	{0x00380000, "QUINCY"},
	{0x00390000, "OPENAFS"},
	{0x003A0000, "AVID1"},
	{0x003B0000, "DFS"},
	{0x003C0000, "KWNP"},
	{0x003D0000, "ZENWORKS"},
	{0x003E0000, "DRIVEONWEB"},
	{0x003F0000, "VMWARE"},
	{0x00400000, "RSFX"},
	{0x00410000, "MFILES"},
	{0x00420000, "MS_NFS"},
	{0x00430000, "GOOGLE"},
}

// Console fill attributes. Sixteen bits wide, but only the low byte carries
// labels; the reserved high byte must verify as zero.
var fillAttributesSpec = &BitfieldSpec{
	InvalidBits: 0xFF00,
	Labels: []string{
		"FOREGROUND_BLUE",      // 0
		"FOREGROUND_GREEN",     // 1
		"FOREGROUND_RED",       // 2
		"FOREGROUND_INTENSITY", // 3
		"BACKGROUND_BLUE",      // 4
		"BACKGROUND_GREEN",     // 5
		"BACKGROUND_RED",       // 6
		"BACKGROUND_INTENSITY", // 7
		"", "", "", "", "", "", "", "", // 8..15
	},
}

// Console font family. The raw dword is both an enumeration (bits 4 and up)
// and a bitwise-or'd pitch (low four bits); the parser splits it into two
// values.
var fontFamilySpec = EnumSpec{
	{0x0000, "DONTCARE"},
	{0x0010, "ROMAN"},
	{0x0020, "SWISS"},
	{0x0030, "MODERN"},
	{0x0040, "SCRIPT"},
	{0x0050, "DECORATIVE"},
}

var fontPitchSpec = EnumSpec{
	{0x0000, "NONE"},
	{0x0001, "FIXED_PITCH"},
	{0x0002, "VECTOR"},
	{0x0004, "TRUETYPE"},
	{0x0008, "DEVICE"},
}
