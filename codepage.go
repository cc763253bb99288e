// Legacy codepage decoding. Non-Unicode strings in a .lnk carry no encoding
// marker, so the caller picks one of the fifteen supported codepages and the
// renderer decodes through it on the way out.

package lnk

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

const (
	// invalidRepl replaces any byte or sequence with no defined mapping.
	invalidRepl = '�'
)

type codecDef struct {
	// tag is the Windows codepage number.
	tag int

	// label is the human name matched by CodecFactory.GetByName.
	label string

	// encoding is nil for codepages that have no x/text implementation and
	// decode through a custom function instead.
	encoding encoding.Encoding
}

// codecDefs is the full catalogue. Order is presentation order; lookups by
// name prefix-match against the label.
var codecDefs = []codecDef{
	{874, "874 - Thai", charmap.Windows874},
	{932, "932 - Japanese (Shift-JIS)", japanese.ShiftJIS},
	{936, "936 - Chinese Simplified (GBK)", simplifiedchinese.GBK},
	{949, "949 - Korean (Hangul)", korean.EUCKR},
	{950, "950 - Chinese (Big5)", traditionalchinese.Big5},
	{1250, "1250 - Eastern European", charmap.Windows1250},
	{1251, "1251 - Cyrillic", charmap.Windows1251},
	{1252, "1252 - Latin 1", charmap.Windows1252},
	{1253, "1253 - Greek", charmap.Windows1253},
	{1254, "1254 - Turkish", charmap.Windows1254},
	{1255, "1255 - Hebrew", charmap.Windows1255},
	{1256, "1256 - Arabic", charmap.Windows1256},
	{1257, "1257 - Baltic", charmap.Windows1257},
	{1258, "1258 - Vietnam", charmap.Windows1258},
	{1361, "1361 - Korean (Johab)", nil},
}

// CodecCount is the number of supported codepages.
func CodecCount() int {
	return len(codecDefs)
}

// CodecLabel returns the human label of the codec at the given catalogue
// index.
func CodecLabel(index int) string {
	return codecDefs[index].label
}

// Codec decodes one legacy codepage into UTF-8. Codec values are pure,
// read-only and safe to share between concurrent parses.
type Codec struct {
	index int
	def   codecDef
}

func newCodec(index int) *Codec {
	return &Codec{
		index: index,
		def:   codecDefs[index],
	}
}

// Index returns the catalogue index this codec was created from.
func (c *Codec) Index() int {
	return c.index
}

// Tag returns the Windows codepage number.
func (c *Codec) Tag() int {
	return c.def.tag
}

// Decode converts a legacy-encoded byte string to UTF-8. Bytes and sequences
// with no defined mapping become U+FFFD; codepoints in the surrogate range or
// beyond U+10FFFF are likewise replaced.
func (c *Codec) Decode(s []byte) string {
	if c.def.encoding == nil {
		return decodeJohab(s)
	}

	// x/text decoders already substitute U+FFFD for every byte that cannot
	// be transcoded, which matches the required behavior.
	decoded, err := c.def.encoding.NewDecoder().Bytes(s)
	if err != nil {
		return string([]rune{invalidRepl})
	}

	return scrubCodepoints(string(decoded))
}

// scrubCodepoints replaces surrogate-range and out-of-range codepoints.
// Decoding a []byte through string() already maps broken UTF-8 to U+FFFD.
func scrubCodepoints(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= 0xD800 && r <= 0xDFFF) || r > 0x10FFFF {
			r = invalidRepl
		}

		out = append(out, r)
	}

	return string(out)
}

// Johab (codepage 1361) has no x/text implementation. The Hangul-syllable
// region is fully algorithmic, so we compose those from the packed jamo
// indices; the symbol and hanja planes are left unmapped and come out as
// U+FFFD.

// johabJungseong maps the 5-bit vowel field to a modern jungseong index, or
// -1 where the code is unassigned.
var johabJungseong = [32]int{
	-1, -1, -1, 0, 1, 2, 3, 4,
	-1, -1, 5, 6, 7, 8, 9, 10,
	-1, -1, 11, 12, 13, 14, 15, 16,
	-1, -1, 17, 18, 19, 20, -1, -1,
}

// johabJongseong maps the 5-bit final-consonant field to a modern jongseong
// index, or -1 where the code is unassigned. Code 1 is the fill value (no
// final consonant).
var johabJongseong = [32]int{
	-1, 0, 1, 2, 3, 4, 5, 6,
	7, 8, 9, 10, 11, 12, 13, 14,
	15, 16, -1, 17, 18, 19, 20, 21,
	22, 23, 24, 25, 26, 27, -1, -1,
}

func johabSyllable(code uint16) rune {
	leading := int(code>>10) & 0x1F
	vowel := int(code>>5) & 0x1F
	final := int(code) & 0x1F

	// Leading consonants are coded 2..20 with no gaps.
	if leading < 2 || leading > 20 {
		return invalidRepl
	}

	cho := leading - 2
	jung := johabJungseong[vowel]
	jong := johabJongseong[final]

	if jung < 0 || jong < 0 {
		return invalidRepl
	}

	return rune(0xAC00 + (cho*21+jung)*28 + jong)
}

func decodeJohab(s []byte) string {
	out := make([]rune, 0, len(s))

	for pos := 0; pos < len(s); {
		c1 := s[pos]

		if c1 < 0x80 {
			out = append(out, rune(c1))
			pos++
			continue
		}

		if c1 < 0x84 || c1 > 0xF9 {
			out = append(out, invalidRepl)
			pos++
			continue
		}

		// Double-byte lead. An unpaired lead at end of string replaces and
		// consumes one byte.
		if pos+1 >= len(s) {
			out = append(out, invalidRepl)
			pos++
			continue
		}

		c2 := s[pos+1]
		code := uint16(c1)<<8 | uint16(c2)

		if c1 <= 0xD3 {
			out = append(out, johabSyllable(code))
		} else {
			// Symbol / hanja planes are not carried.
			out = append(out, invalidRepl)
		}

		pos += 2
	}

	return string(out)
}

// CodecFactory hands out shared Codec values keyed by catalogue index. The
// catalogue itself is immutable static data.
type CodecFactory struct {
	mutex   sync.Mutex
	managed map[int]*Codec
}

// NewCodecFactory returns an empty factory.
func NewCodecFactory() *CodecFactory {
	return &CodecFactory{
		managed: make(map[int]*Codec),
	}
}

// Get returns the shared codec for a catalogue index, or nil if the index is
// out of range.
func (cf *CodecFactory) Get(index int) *Codec {
	if index < 0 || index >= len(codecDefs) {
		return nil
	}

	cf.mutex.Lock()
	defer cf.mutex.Unlock()

	if c, found := cf.managed[index]; found == true {
		return c
	}

	c := newCodec(index)
	cf.managed[index] = c

	return c
}

// GetByName resolves a codec by case-sensitive prefix match against the human
// labels. An empty or ambiguous prefix selects no codec.
func (cf *CodecFactory) GetByName(name string) *Codec {
	found := -1
	for i, def := range codecDefs {
		if strings.HasPrefix(def.label, name) == true {
			if found != -1 {
				// Not unique.
				return nil
			}

			found = i
		}
	}

	if found == -1 {
		return nil
	}

	return cf.Get(found)
}
