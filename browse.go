// Flat browse rendering: one name<TAB>value row per field, a blank row and a
// /Path/To/Struct/ header on every struct transition. This is the textual
// form of the original list view, and what the CLI prints in browse mode.

package lnk

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
)

// humanFileSize renders sizes with IEC suffixes, keeping the exact byte
// count alongside once it stops being obvious.
func humanFileSize(value int64) string {
	if value < 0 {
		return fmt.Sprintf("%d", value)
	} else if value < 1000 {
		return fmt.Sprintf("%d bytes", value)
	}

	return fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(value)), value)
}

// BrowseRenderer writes flat rows to a writer.
type BrowseRenderer struct {
	w     io.Writer
	codec *Codec
	level InfoLevel
}

// NewBrowseRenderer returns a renderer writing to w. The codec may be nil to
// leave legacy-codepage strings undecoded.
func NewBrowseRenderer(w io.Writer, codec *Codec, level InfoLevel) *BrowseRenderer {
	return &BrowseRenderer{
		w:     w,
		codec: codec,
		level: level,
	}
}

// Render walks the tree and writes the rows.
func (br *BrowseRenderer) Render(root *Stream) (err error) {
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

	bv := &browseVisitor{
		w:     br.w,
		codec: br.codec,
		level: br.level,
	}

	root.Accept(bv, br.level)
	log.PanicIf(bv.err)

	return nil
}

type browseVisitor struct {
	w     io.Writer
	codec *Codec
	level InfoLevel
	path  []string
	err   error
}

func (bv *browseVisitor) row(name, value string) {
	if bv.err != nil {
		return
	}

	_, err := fmt.Fprintf(bv.w, "%s\t%s\n", name, value)
	if err != nil {
		bv.err = err
	}
}

func (bv *browseVisitor) VisitInteger(v *IntegerValue) {
	s := ""

	switch v.Form() {
	case FormHex:
		s = fmt.Sprintf("0x%X", uint64(v.Value()))
	case FormFileSize:
		s = humanFileSize(v.Value())
	case FormUnixTime:
		s = time.Unix(v.Value(), 0).Format(time.ANSIC)
	default:
		s = fmt.Sprintf("%d", v.Value())
	}

	bv.row(v.Name(), s)
}

func (bv *browseVisitor) VisitString(v *StringValue) {
	s := v.Value()
	if v.IsUtf8() == false && bv.codec != nil {
		s = bv.codec.Decode([]byte(s))
	}

	bv.row(v.Name(), s)
}

func (bv *browseVisitor) VisitEnumerated(v *EnumeratedValue) {
	bv.row(v.Name(), fmt.Sprintf("0x%X (%s)", uint64(v.Value()), safeDescription(v.Describe())))
}

func (bv *browseVisitor) VisitBitfield(v *BitfieldValue) {
	labels := bitfieldAsList(v)
	bv.row(v.Name(), fmt.Sprintf("0x%X [ %s ]", v.Value(), strings.Join(labels, ", ")))
}

func (bv *browseVisitor) VisitArray(v *ArrayValue) {
	bv.row(v.Name(), arrayAsHex(v))
}

func (bv *browseVisitor) VisitStruct(v *StructValue) {
	if bv.err != nil {
		return
	}

	bv.path = append(bv.path, v.Name())

	_, err := fmt.Fprintf(bv.w, "\n/%s/\n", strings.Join(bv.path, "/"))
	if err != nil {
		bv.err = err
		return
	}

	v.Nest(bv, bv.level)

	bv.path = bv.path[:len(bv.path)-1]
}
