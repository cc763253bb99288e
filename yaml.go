// YAML rendering. The visitor assembles a yaml.v3 node tree so field order
// is preserved exactly as parsed, then lets the library take care of quoting
// and indentation. Enumerations and bitfields are emitted twice: the human
// form under the field name and the raw integer under a "_Numeric"
// companion key.

package lnk

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/dsoprea/go-logging"
	"gopkg.in/yaml.v3"
)

// iso8601Time renders a Unix timestamp as ISO-8601 UTC.
func iso8601Time(unixTime int64) string {
	return time.Unix(unixTime, 0).UTC().Format("2006-01-02T15:04:05Z")
}

// safeDescription substitutes a placeholder for values absent from their
// description tables.
func safeDescription(d string) string {
	if d == "" {
		return "Unknown"
	}

	return d
}

// bitfieldAsList collects the labels of the set bits.
func bitfieldAsList(bv *BitfieldValue) []string {
	labels := make([]string, 0, bv.NumBits())
	for i := 0; i < bv.NumBits(); i++ {
		if bv.ValueOf(i) == true {
			labels = append(labels, safeDescription(bv.Describe(i)))
		}
	}

	return labels
}

// arrayAsHex renders array elements as fixed-width hex words separated by
// spaces: two, four or eight nibbles by element size.
func arrayAsHex(av *ArrayValue) string {
	if av.Size() == 0 {
		return ""
	}

	format := "%02x"
	switch av.ElementSize() {
	case 2:
		format = "%04x"
	case 4:
		format = "%08x"
	}

	s := ""
	for i := 0; i < av.Size(); i++ {
		if i > 0 {
			s += " "
		}

		s += fmt.Sprintf(format, uint64(av.At(i)))
	}

	return s
}

// YamlRenderer emits one YAML document per rendered file on a shared
// encoder.
type YamlRenderer struct {
	encoder *yaml.Encoder
	codec   *Codec
	level   InfoLevel
}

// NewYamlRenderer returns a renderer writing to w. The codec may be nil to
// leave legacy-codepage strings undecoded.
func NewYamlRenderer(w io.Writer, codec *Codec, level InfoLevel) *YamlRenderer {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	return &YamlRenderer{
		encoder: encoder,
		codec:   codec,
		level:   level,
	}
}

// Render emits the tree as one YAML document. A non-empty name becomes a
// leading "File" key.
func (yr *YamlRenderer) Render(root *Stream, name string) (err error) {
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

	doc := newYamlMapping()

	if name != "" {
		doc.put("File", yamlString(name))
	}

	yv := &yamlVisitor{
		codec:   yr.codec,
		level:   yr.level,
		current: doc,
	}

	root.Accept(yv, yr.level)

	err = yr.encoder.Encode(doc.node)
	log.PanicIf(err)

	return nil
}

// Close flushes the encoder.
func (yr *YamlRenderer) Close() error {
	return yr.encoder.Close()
}

type yamlMapping struct {
	node *yaml.Node
}

func newYamlMapping() *yamlMapping {
	return &yamlMapping{
		node: &yaml.Node{
			Kind: yaml.MappingNode,
		},
	}
}

func (ym *yamlMapping) put(key string, value *yaml.Node) {
	keyNode := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: key,
	}

	ym.node.Content = append(ym.node.Content, keyNode, value)
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: s,
	}
}

func yamlInt(v int64) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: strconv.FormatInt(v, 10),
	}
}

func yamlFlowList(items []string) *yaml.Node {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}

	for _, item := range items {
		node.Content = append(node.Content, yamlString(item))
	}

	return node
}

type yamlVisitor struct {
	codec   *Codec
	level   InfoLevel
	current *yamlMapping
}

func (yv *yamlVisitor) VisitInteger(v *IntegerValue) {
	if v.Form() == FormUnixTime {
		yv.current.put(v.Name(), yamlString(iso8601Time(v.Value())))
		return
	}

	yv.current.put(v.Name(), yamlInt(v.Value()))
}

func (yv *yamlVisitor) VisitString(v *StringValue) {
	s := v.Value()
	if v.IsUtf8() == false && yv.codec != nil {
		s = yv.codec.Decode([]byte(s))
	}

	yv.current.put(v.Name(), yamlString(s))
}

func (yv *yamlVisitor) VisitEnumerated(v *EnumeratedValue) {
	yv.current.put(v.Name(), yamlString(safeDescription(v.Describe())))
	yv.current.put(v.Name()+"_Numeric", yamlInt(v.Value()))
}

func (yv *yamlVisitor) VisitBitfield(v *BitfieldValue) {
	yv.current.put(v.Name(), yamlFlowList(bitfieldAsList(v)))
	yv.current.put(v.Name()+"_Numeric", yamlInt(int64(v.Value())))
}

func (yv *yamlVisitor) VisitArray(v *ArrayValue) {
	yv.current.put(v.Name(), yamlString(arrayAsHex(v)))
}

func (yv *yamlVisitor) VisitStruct(v *StructValue) {
	nested := newYamlMapping()

	saved := yv.current
	yv.current = nested

	v.Nest(yv, yv.level)

	yv.current = saved
	yv.current.put(v.Name(), nested.node)
}
