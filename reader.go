// This package parses Microsoft Shell Link (.lnk) files into an ordered tree
// of named, typed values that renderers can emit as YAML or a flat browse
// list.

package lnk

import (
	"fmt"
	"io"
	"os"

	"github.com/dsoprea/go-logging"
)

const (
	// MaxFileSize is the hard cap on the input buffer. Anything beyond this
	// in the file is silently ignored.
	MaxFileSize = 1024 * 1024
)

// Guid is a 128-bit Microsoft class identifier. The five components are
// encoded LE-LE-LE-BE-BE.
type Guid [16]byte

func (g Guid) comp1() uint32 {
	return uint32(g[3])<<24 | uint32(g[2])<<16 | uint32(g[1])<<8 | uint32(g[0])
}

func (g Guid) comp2() uint16 {
	return uint16(g[5])<<8 | uint16(g[4])
}

func (g Guid) comp3() uint16 {
	return uint16(g[7])<<8 | uint16(g[6])
}

func (g Guid) comp4() uint16 {
	return uint16(g[8])<<8 | uint16(g[9])
}

func (g Guid) comp5() uint64 {
	q := uint64(g[10])<<40 | uint64(g[11])<<32 | uint64(g[12])<<24
	q |= uint64(g[13])<<16 | uint64(g[14])<<8 | uint64(g[15])
	return q
}

// String renders the canonical uppercase form
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX.
func (g Guid) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		g.comp1(), g.comp2(), g.comp3(), g.comp4(), g.comp5())
}

// StreamReader owns the whole file buffer and decodes the little-endian
// numeric fields and strings the format is made of. Reads that would run past
// the end of the buffer raise a short-read failure through the logging panic
// channel; defensive callers bound their reads with a Region first.
type StreamReader struct {
	buffer []byte
	pos    int
}

// NewStreamReader returns a reader over the given buffer. The buffer is
// borrowed, not copied, and is truncated at MaxFileSize.
func NewStreamReader(buffer []byte) *StreamReader {
	if len(buffer) > MaxFileSize {
		buffer = buffer[:MaxFileSize]
	}

	return &StreamReader{
		buffer: buffer,
	}
}

// NewStreamReaderFromFile reads at most MaxFileSize bytes of the named file
// into a fresh reader.
func NewStreamReaderFromFile(filepath string) (sr *StreamReader, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			err = log.Wrap(errRaw.(error))
		}
	}()

	f, err := os.Open(filepath)
	if err != nil {
		log.PanicIf(newError(KindIo, "could not open [%s]: %s", filepath, err))
	}

	defer f.Close()

	buffer := make([]byte, MaxFileSize)

	n, err := io.ReadFull(f, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		log.PanicIf(newError(KindIo, "could not read [%s]: %s", filepath, err))
	}

	return NewStreamReader(buffer[:n]), nil
}

// Len is the total buffer length.
func (sr *StreamReader) Len() int {
	return len(sr.buffer)
}

// Eof indicates whether the cursor is at or beyond the end of the buffer.
func (sr *StreamReader) Eof() bool {
	return len(sr.buffer) == 0 || sr.pos >= len(sr.buffer)
}

// Pos returns the current cursor.
func (sr *StreamReader) Pos() int {
	return sr.pos
}

// Seek repositions the cursor. Seeking beyond the end is allowed; subsequent
// reads fail.
func (sr *StreamReader) Seek(n int) {
	sr.pos = n
}

// Skip advances the cursor, overflow-checked.
func (sr *StreamReader) Skip(n int) {
	if addOverflows(sr.pos, n) == true {
		log.PanicIf(newError(KindBadLength, "integer overflow while skipping (%d) bytes", n))
	}

	sr.pos += n
}

func (sr *StreamReader) getc() byte {
	if sr.pos >= len(sr.buffer) {
		log.PanicIf(newError(KindShortRead, "buffer ended at offset (%d)", sr.pos))
	}

	c := sr.buffer[sr.pos]
	sr.pos++

	return c
}

// Peek returns the byte under the cursor without advancing.
func (sr *StreamReader) Peek() byte {
	if sr.pos >= len(sr.buffer) {
		log.PanicIf(newError(KindShortRead, "peek past end of buffer at offset (%d)", sr.pos))
	}

	return sr.buffer[sr.pos]
}

// ReadU8 reads one byte.
func (sr *StreamReader) ReadU8() uint8 {
	return sr.getc()
}

// ReadU16 reads a little-endian 16-bit unsigned integer.
func (sr *StreamReader) ReadU16() uint16 {
	c1 := uint16(sr.getc())
	c2 := uint16(sr.getc())

	return c1 | c2<<8
}

// ReadU32 reads a little-endian 32-bit unsigned integer.
func (sr *StreamReader) ReadU32() uint32 {
	c1 := uint32(sr.getc())
	c2 := uint32(sr.getc())
	c3 := uint32(sr.getc())
	c4 := uint32(sr.getc())

	return c1 | c2<<8 | c3<<16 | c4<<24
}

// ReadU64 reads a little-endian 64-bit unsigned integer.
func (sr *StreamReader) ReadU64() uint64 {
	lo := uint64(sr.ReadU32())
	hi := uint64(sr.ReadU32())

	return lo | hi<<32
}

// ReadI16 reads a little-endian 16-bit two's-complement integer.
func (sr *StreamReader) ReadI16() int16 {
	return int16(sr.ReadU16())
}

// ReadGuid reads sixteen bytes as a Guid.
func (sr *StreamReader) ReadGuid() Guid {
	var g Guid
	for i := 0; i < len(g); i++ {
		g[i] = sr.getc()
	}

	return g
}

// ReadAnsi reads at most max bytes, stopping at the first NUL (which is
// consumed). The result is in some legacy codepage, not UTF-8; the renderer
// applies codepage decoding.
func (sr *StreamReader) ReadAnsi(max int) []byte {
	r := make([]byte, 0, 16)
	for i := 0; i < max; i++ {
		c := sr.getc()
		if c == 0 {
			return r
		}

		r = append(r, c)
	}

	return r
}

// ReadUnicode reads at most maxChars UTF-16LE code units, stopping at the
// first zero unit (which is consumed).
func (sr *StreamReader) ReadUnicode(maxChars int) []uint16 {
	r := make([]uint16, 0, 16)
	for i := 0; i < maxChars; i++ {
		c := sr.ReadU16()
		if c == 0 {
			return r
		}

		r = append(r, c)
	}

	return r
}

// ReadExactAnsi reads exactly n bytes. Only the bytes before the first NUL
// make up the returned string, but the cursor advances by n in full.
func (sr *StreamReader) ReadExactAnsi(n int) []byte {
	pos := sr.Pos()
	r := sr.ReadAnsi(n)

	sr.Seek(pos)
	sr.Skip(n)

	return r
}

// ReadExactUnicode reads exactly nBytes bytes of UTF-16LE data. Only the
// units before the first zero unit make up the returned string, but the
// cursor advances by nBytes in full.
func (sr *StreamReader) ReadExactUnicode(nBytes int) []uint16 {
	pos := sr.Pos()
	r := sr.ReadUnicode(u16CharCount(nBytes))

	sr.Seek(pos)
	sr.Skip(nBytes)

	return r
}

// ReadBinary reads exactly n raw bytes. The bounds check happens before the
// allocation so an adversarial length cannot balloon memory.
func (sr *StreamReader) ReadBinary(n int) []byte {
	if n < 0 || n > len(sr.buffer)-sr.pos {
		log.PanicIf(newError(KindShortRead, "cannot read (%d) bytes at offset (%d)", n, sr.pos))
	}

	r := make([]byte, n)
	copy(r, sr.buffer[sr.pos:sr.pos+n])

	sr.pos += n

	return r
}
