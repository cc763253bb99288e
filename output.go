// The parser does not print anything itself. Each section appends named,
// typed values to a Stream; renderers walk the finished tree with a visitor
// and decide formatting per node.

package lnk

type InfoLevel int

const (
	// LevelNormal marks the fields most users care about.
	LevelNormal InfoLevel = iota

	// LevelDebug marks fields only shown when everything was requested.
	LevelDebug
)

// IntegerForm is a rendering hint attached to integer values.
type IntegerForm int

const (
	FormDecimal IntegerForm = iota
	FormHex
	FormFileSize
	FormUnixTime
)

// Visitor receives one typed call per node during a depth-first walk.
type Visitor interface {
	VisitInteger(v *IntegerValue)
	VisitString(v *StringValue)
	VisitEnumerated(v *EnumeratedValue)
	VisitBitfield(v *BitfieldValue)
	VisitArray(v *ArrayValue)
	VisitStruct(v *StructValue)
}

// Value is one named node in the output tree.
type Value interface {
	Name() string
	Level() InfoLevel
	accept(v Visitor, l InfoLevel)
	setLevel(l InfoLevel)
}

type valueBase struct {
	name  string
	level InfoLevel
}

func (vb *valueBase) Name() string {
	return vb.name
}

func (vb *valueBase) Level() InfoLevel {
	return vb.level
}

func (vb *valueBase) setLevel(l InfoLevel) {
	vb.level = l
}

// IntegerValue holds any integer field in the format; int64 can represent
// every value the format defines.
type IntegerValue struct {
	valueBase

	value int64
	form  IntegerForm
}

func NewIntegerValue(name string, value int64, form IntegerForm) *IntegerValue {
	return &IntegerValue{
		valueBase: valueBase{name: name},
		value:     value,
		form:      form,
	}
}

// NewTimeValue is a convenience for Unix-time integers.
func NewTimeValue(name string, unixTime int64) *IntegerValue {
	return NewIntegerValue(name, unixTime, FormUnixTime)
}

func (iv *IntegerValue) Value() int64 {
	return iv.value
}

func (iv *IntegerValue) Form() IntegerForm {
	return iv.form
}

func (iv *IntegerValue) accept(v Visitor, l InfoLevel) {
	v.VisitInteger(iv)
}

// StringValue holds a string field. When IsUtf8 is false the bytes are in
// some legacy codepage and the renderer applies codepage decoding.
type StringValue struct {
	valueBase

	value  string
	isUtf8 bool
}

func NewStringValue(name string, value string, isUtf8 bool) *StringValue {
	return &StringValue{
		valueBase: valueBase{name: name},
		value:     value,
		isUtf8:    isUtf8,
	}
}

// NewGuidValue renders a Guid as its canonical string form.
func NewGuidValue(name string, g Guid) *StringValue {
	return NewStringValue(name, g.String(), true)
}

func (sv *StringValue) Value() string {
	return sv.value
}

func (sv *StringValue) IsUtf8() bool {
	return sv.isUtf8
}

func (sv *StringValue) accept(v Visitor, l InfoLevel) {
	v.VisitString(sv)
}

// EnumeratedValue pairs a raw integer with its static description table.
type EnumeratedValue struct {
	valueBase

	enum Enumerated
}

func NewEnumeratedValue(name string, enum Enumerated) *EnumeratedValue {
	return &EnumeratedValue{
		valueBase: valueBase{name: name},
		enum:      enum,
	}
}

func (ev *EnumeratedValue) Value() int64 {
	return ev.enum.Value
}

// Describe returns the label for the raw value, or an empty string when the
// value is not in the table.
func (ev *EnumeratedValue) Describe() string {
	return ev.enum.Describe()
}

func (ev *EnumeratedValue) accept(v Visitor, l InfoLevel) {
	v.VisitEnumerated(ev)
}

// BitfieldValue pairs raw bits with the per-bit label table.
type BitfieldValue struct {
	valueBase

	bits Bitfield
}

func NewBitfieldValue(name string, bits Bitfield) *BitfieldValue {
	return &BitfieldValue{
		valueBase: valueBase{name: name},
		bits:      bits,
	}
}

func (bv *BitfieldValue) Value() uint64 {
	return bv.bits.Bits
}

func (bv *BitfieldValue) NumBits() int {
	return bv.bits.NumBits()
}

func (bv *BitfieldValue) ValueOf(bit int) bool {
	return bv.bits.ValueOf(bit)
}

// Describe returns the label of one bit; empty for reserved bits.
func (bv *BitfieldValue) Describe(bit int) string {
	return bv.bits.Describe(bit)
}

func (bv *BitfieldValue) accept(v Visitor, l InfoLevel) {
	v.VisitBitfield(bv)
}

// ArrayValue holds a sequence of fixed-width elements surfaced as raw
// numbers. ElementSize is 1, 2 or 4.
type ArrayValue struct {
	valueBase

	elementSize int
	elements    []int64
}

func NewByteArrayValue(name string, data []byte) *ArrayValue {
	elements := make([]int64, len(data))
	for i, b := range data {
		elements[i] = int64(b)
	}

	return &ArrayValue{
		valueBase:   valueBase{name: name},
		elementSize: 1,
		elements:    elements,
	}
}

func NewDwordArrayValue(name string, data []uint32) *ArrayValue {
	elements := make([]int64, len(data))
	for i, d := range data {
		elements[i] = int64(d)
	}

	return &ArrayValue{
		valueBase:   valueBase{name: name},
		elementSize: 4,
		elements:    elements,
	}
}

func (av *ArrayValue) Size() int {
	return len(av.elements)
}

func (av *ArrayValue) At(i int) int64 {
	return av.elements[i]
}

func (av *ArrayValue) ElementSize() int {
	return av.elementSize
}

func (av *ArrayValue) accept(v Visitor, l InfoLevel) {
	v.VisitArray(av)
}

// StructValue nests a whole sub-stream under one name.
type StructValue struct {
	valueBase

	nested *Stream
}

func NewStructValue(name string, nested *Stream) *StructValue {
	return &StructValue{
		valueBase: valueBase{name: name},
		nested:    nested,
	}
}

// Nest walks the nested stream with the same visitor.
func (stv *StructValue) Nest(v Visitor, l InfoLevel) {
	stv.nested.Accept(v, l)
}

func (stv *StructValue) accept(v Visitor, l InfoLevel) {
	v.VisitStruct(stv)
}

// Stream is an ordered sequence of named values. Insertions append; the
// depth-first traversal order is the insertion order at each nesting level.
type Stream struct {
	values []Value
}

func NewStream() *Stream {
	return new(Stream)
}

// Put appends a value at Normal level.
func (s *Stream) Put(v Value) {
	s.values = append(s.values, v)
}

// PutDebug appends a value at Debug level.
func (s *Stream) PutDebug(v Value) {
	v.setLevel(LevelDebug)
	s.values = append(s.values, v)
}

// Size is the number of direct children.
func (s *Stream) Size() int {
	return len(s.values)
}

// Accept drives a depth-first walk. Normal-level traversal yields a
// subsequence of the Debug-level traversal.
func (s *Stream) Accept(v Visitor, l InfoLevel) {
	for _, value := range s.values {
		if value.Level() == LevelNormal || l == LevelDebug {
			value.accept(v, l)
		}
	}
}
