// The parser composes the five section parsers in file order and arranges
// the output tree for presentation: the header first, then LinkInfo and
// StringData, the item list (second in the file but rarely the interesting
// part) fourth, and ExtraData last.

package lnk

import (
	"reflect"

	"github.com/dsoprea/go-logging"
)

// Parser owns one file buffer, its cursor and its output. Instances are not
// shared between goroutines, but independent instances may run concurrently;
// the only shared state is the immutable static tables.
type Parser struct {
	in       *StreamReader
	header   ShellLinkHeader
	output   *Stream
	warnings []string
	parsed   bool
}

// NewParser reads the named file (up to the size cap) and returns a parser
// over it.
func NewParser(filepath string) (p *Parser, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			err = log.Wrap(errRaw.(error))
		}
	}()

	sr, err := NewStreamReaderFromFile(filepath)
	log.PanicIf(err)

	p = &Parser{
		in:     sr,
		output: NewStream(),
	}

	return p, nil
}

// NewParserFromBytes returns a parser over an in-memory buffer.
func NewParserFromBytes(data []byte) *Parser {
	return &Parser{
		in:     NewStreamReader(data),
		output: NewStream(),
	}
}

// Parse runs the whole file. Only fatal errors are returned; per-section
// failures append warnings and leave the sections already read in the
// output.
func (p *Parser) Parse() (err error) {
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

	hs, err := parseHeader(p.in)
	log.PanicIf(err)

	p.header = hs.data
	p.output.Put(NewStructValue("ShellLinkHeader", hs.out))

	var idListOut *Stream

	if p.header.HasLinkTargetIdList() == true {
		ils, err := parseLinkTargetIdList(p.in)
		log.PanicIf(err)

		p.warnings = append(p.warnings, ils.warnings...)

		// Held back: the list is emitted after LinkInfo and StringData.
		idListOut = ils.out
	}

	if p.header.HasLinkInfo() == true {
		lis, err := parseLinkInfo(p.in)
		log.PanicIf(err)

		p.warnings = append(p.warnings, lis.warnings...)

		if lis.out.Size() > 0 {
			p.output.Put(NewStructValue("LinkInfo", lis.out))
		}
	}

	sds, err := parseStringData(p.in, p.header)
	log.PanicIf(err)

	p.warnings = append(p.warnings, sds.warnings...)

	if sds.out.Size() > 0 {
		p.output.Put(NewStructValue("StringData", sds.out))
	}

	if idListOut != nil && idListOut.Size() > 0 {
		p.output.Put(NewStructValue("LinkTargetIdList", idListOut))
	}

	eds, err := parseExtraData(p.in)
	log.PanicIf(err)

	p.warnings = append(p.warnings, eds.warnings...)

	if eds.out.Size() > 0 {
		p.output.Put(NewStructValue("ExtraData", eds.out))
	}

	p.parsed = true

	return nil
}

// Header returns the decoded fixed header. Only meaningful after a
// successful Parse.
func (p *Parser) Header() ShellLinkHeader {
	return p.header
}

// Output moves the root output tree to the caller. The second call returns
// nil.
func (p *Parser) Output() *Stream {
	out := p.output
	p.output = nil

	return out
}

// Warnings returns the non-fatal problems encountered, in file order.
func (p *Parser) Warnings() []string {
	return p.warnings
}
