package lnk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func renderYamlString(t *testing.T, s *Stream, codec *Codec, level InfoLevel) string {
	b := new(bytes.Buffer)

	yr := NewYamlRenderer(b, codec, level)

	err := yr.Render(s, "test.lnk")
	require.NoError(t, err)

	err = yr.Close()
	require.NoError(t, err)

	return b.String()
}

func TestYamlRenderer_Integers(t *testing.T) {
	s := NewStream()
	s.Put(NewIntegerValue("Plain", 42, FormDecimal))
	s.Put(NewTimeValue("Stamp", 0))

	out := renderYamlString(t, s, nil, LevelNormal)

	assert.Contains(t, out, "Plain: 42")

	// The encoder may quote the stamp to keep it a string.
	assert.Contains(t, out, "1970-01-01T00:00:00Z")
	assert.Contains(t, out, "File: test.lnk")
}

func TestYamlRenderer_EnumeratedWithNumeric(t *testing.T) {
	s := NewStream()
	s.Put(NewEnumeratedValue("ShowCommand", Enumerated{Value: 3, Spec: showCommandSpec}))
	s.Put(NewEnumeratedValue("Mystery", Enumerated{Value: 99, Spec: showCommandSpec}))

	out := renderYamlString(t, s, nil, LevelNormal)

	assert.Contains(t, out, "ShowCommand: SHOWMAXIMIZED")
	assert.Contains(t, out, "ShowCommand_Numeric: 3")
	assert.Contains(t, out, "Mystery: Unknown")
	assert.Contains(t, out, "Mystery_Numeric: 99")
}

func TestYamlRenderer_Bitfield(t *testing.T) {
	s := NewStream()
	s.Put(NewBitfieldValue("HotKeyHigh", Bitfield{Bits: 0x05, Spec: hotKeyHighSpec}))

	out := renderYamlString(t, s, nil, LevelNormal)

	assert.Contains(t, out, "HotKeyHigh: [SHIFT, ALT]")
	assert.Contains(t, out, "HotKeyHigh_Numeric: 5")
}

func TestYamlRenderer_ArrayAsHexWords(t *testing.T) {
	s := NewStream()
	s.Put(NewByteArrayValue("Bytes", []byte{0x0A, 0xFF}))
	s.Put(NewDwordArrayValue("Dwords", []uint32{0x1234, 0xAABBCCDD}))

	out := renderYamlString(t, s, nil, LevelNormal)

	assert.Contains(t, out, "Bytes: 0a ff")
	assert.Contains(t, out, "Dwords: 00001234 aabbccdd")
}

func TestYamlRenderer_CodepageDecoding(t *testing.T) {
	cf := NewCodecFactory()
	codec := cf.GetByName("1252")

	s := NewStream()
	s.Put(NewStringValue("Label", "caf\xe9", false))
	s.Put(NewStringValue("Already", "ok", true))

	out := renderYamlString(t, s, codec, LevelNormal)

	assert.Contains(t, out, "Label: café")
	assert.Contains(t, out, "Already: ok")
}

func TestYamlRenderer_NoCodecLeavesBytes(t *testing.T) {
	s := NewStream()
	s.Put(NewStringValue("Label", "plain", false))

	out := renderYamlString(t, s, nil, LevelNormal)

	assert.Contains(t, out, "Label: plain")
}

func TestYamlRenderer_NestingAndLevels(t *testing.T) {
	inner := NewStream()
	inner.Put(NewIntegerValue("Visible", 1, FormDecimal))
	inner.PutDebug(NewIntegerValue("Hidden", 2, FormDecimal))

	s := NewStream()
	s.Put(NewStructValue("Header", inner))

	normal := renderYamlString(t, s, nil, LevelNormal)
	debug := renderYamlString(t, s, nil, LevelDebug)

	assert.Contains(t, normal, "Header:")
	assert.Contains(t, normal, "  Visible: 1")
	assert.NotContains(t, normal, "Hidden")
	assert.Contains(t, debug, "  Hidden: 2")
}

// TestYamlRenderer_OutputIsValidYaml re-parses the rendered document.
func TestYamlRenderer_OutputIsValidYaml(t *testing.T) {
	inner := NewStream()
	inner.Put(NewStringValue("Name", "a: b # not a comment", true))
	inner.Put(NewIntegerValue("Size", 7, FormFileSize))

	s := NewStream()
	s.Put(NewStructValue("Section", inner))

	out := renderYamlString(t, s, nil, LevelNormal)

	parsed := map[string]interface{}{}

	err := yaml.Unmarshal([]byte(out), &parsed)
	require.NoError(t, err)

	section, ok := parsed["Section"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a: b # not a comment", section["Name"])
	assert.Equal(t, 7, section["Size"])
}

func TestYamlRenderer_MultipleDocuments(t *testing.T) {
	b := new(bytes.Buffer)

	yr := NewYamlRenderer(b, nil, LevelNormal)

	s1 := NewStream()
	s1.Put(NewIntegerValue("A", 1, FormDecimal))

	s2 := NewStream()
	s2.Put(NewIntegerValue("B", 2, FormDecimal))

	require.NoError(t, yr.Render(s1, "one.lnk"))
	require.NoError(t, yr.Render(s2, "two.lnk"))
	require.NoError(t, yr.Close())

	// Documents are separated.
	assert.Equal(t, 1, strings.Count(b.String(), "---"))
	assert.Contains(t, b.String(), "File: one.lnk")
	assert.Contains(t, b.String(), "File: two.lnk")
}
