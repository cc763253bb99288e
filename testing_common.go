package lnk

// Shared builders for constructing little-endian test vectors in-memory.

var (
	// testLinkClsidBytes is the on-disk encoding of the required link CLSID
	// 00021401-0000-0000-C000-000000000046.
	testLinkClsidBytes = []byte{
		0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}
)

type testBuilder struct {
	data []byte
}

func newTestBuilder() *testBuilder {
	return new(testBuilder)
}

func (tb *testBuilder) u8(v uint8) *testBuilder {
	tb.data = append(tb.data, v)
	return tb
}

func (tb *testBuilder) u16(v uint16) *testBuilder {
	tb.data = append(tb.data, byte(v), byte(v>>8))
	return tb
}

func (tb *testBuilder) u32(v uint32) *testBuilder {
	tb.data = append(tb.data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return tb
}

func (tb *testBuilder) u64(v uint64) *testBuilder {
	tb.u32(uint32(v))
	tb.u32(uint32(v >> 32))

	return tb
}

func (tb *testBuilder) bytes(b ...byte) *testBuilder {
	tb.data = append(tb.data, b...)
	return tb
}

// ansiz appends a NUL-terminated byte string.
func (tb *testBuilder) ansiz(s string) *testBuilder {
	tb.data = append(tb.data, []byte(s)...)
	tb.data = append(tb.data, 0)

	return tb
}

// unicodez appends a NUL-terminated UTF-16LE string. Only BMP characters are
// supported by the builder.
func (tb *testBuilder) unicodez(s string) *testBuilder {
	for _, r := range s {
		tb.u16(uint16(r))
	}

	tb.u16(0)

	return tb
}

func (tb *testBuilder) len() int {
	return len(tb.data)
}

// buildHeader assembles a valid 76-byte header with the given link flags and
// everything else zeroed (ShowCommand is SHOWNORMAL).
func buildHeader(linkFlags uint32) *testBuilder {
	tb := newTestBuilder()

	tb.u32(shellLinkHeaderSize)
	tb.bytes(testLinkClsidBytes...)
	tb.u32(linkFlags)
	tb.u32(0) // FileAttributes
	tb.u64(0) // CreationTime
	tb.u64(0) // AccessTime
	tb.u64(0) // WriteTime
	tb.u32(0) // FileSize
	tb.u32(0) // IconIndex
	tb.u32(1) // ShowCommand
	tb.u8(0)  // HotKeyLow
	tb.u8(0)  // HotKeyHigh
	tb.u16(0) // Reserved1
	tb.u32(0) // Reserved2
	tb.u32(0) // Reserved3

	return tb
}

// recordingVisitor flattens a traversal into "Path/Name" strings, in visit
// order.
type recordingVisitor struct {
	path  []string
	names []string
	level InfoLevel
}

func (rv *recordingVisitor) record(name string) {
	full := name
	for i := len(rv.path) - 1; i >= 0; i-- {
		full = rv.path[i] + "/" + full
	}

	rv.names = append(rv.names, full)
}

func (rv *recordingVisitor) VisitInteger(v *IntegerValue) {
	rv.record(v.Name())
}

func (rv *recordingVisitor) VisitString(v *StringValue) {
	rv.record(v.Name())
}

func (rv *recordingVisitor) VisitEnumerated(v *EnumeratedValue) {
	rv.record(v.Name())
}

func (rv *recordingVisitor) VisitBitfield(v *BitfieldValue) {
	rv.record(v.Name())
}

func (rv *recordingVisitor) VisitArray(v *ArrayValue) {
	rv.record(v.Name())
}

func (rv *recordingVisitor) VisitStruct(v *StructValue) {
	rv.record(v.Name())

	rv.path = append(rv.path, v.Name())
	v.Nest(rv, rv.level)
	rv.path = rv.path[:len(rv.path)-1]
}

// flatten walks a stream at the given level and returns the visited names.
func flatten(s *Stream, level InfoLevel) []string {
	rv := &recordingVisitor{level: level}
	s.Accept(rv, level)

	return rv.names
}

// findStruct returns the nested stream of the direct child struct with the
// given name, or nil.
func findStruct(s *Stream, name string) *Stream {
	for _, v := range s.values {
		if stv, ok := v.(*StructValue); ok == true && stv.Name() == name {
			return stv.nested
		}
	}

	return nil
}

// findString returns the direct child string value with the given name, or
// nil.
func findString(s *Stream, name string) *StringValue {
	for _, v := range s.values {
		if sv, ok := v.(*StringValue); ok == true && sv.Name() == name {
			return sv
		}
	}

	return nil
}

// findInteger returns the direct child integer value with the given name, or
// nil.
func findInteger(s *Stream, name string) *IntegerValue {
	for _, v := range s.values {
		if iv, ok := v.(*IntegerValue); ok == true && iv.Name() == name {
			return iv
		}
	}

	return nil
}

// countAtLevel counts direct children visible at the given level.
func countAtLevel(s *Stream, level InfoLevel) int {
	count := 0
	for _, v := range s.values {
		if v.Level() == LevelNormal || level == LevelDebug {
			count++
		}
	}

	return count
}
