package lnk

import (
	"fmt"

	"github.com/go-errors/errors"
)

// ErrorKind classifies a parse failure. The kind decides whether a failure is
// fatal for the whole file or only terminates the structure being read.
type ErrorKind int

const (
	// KindIo indicates the file could not be opened or read.
	KindIo ErrorKind = iota

	// KindBadHeader indicates a fixed header size or CLSID mismatch. Nothing
	// can be guessed about the rest of the file, so this is always fatal.
	KindBadHeader

	// KindBadFlags indicates unknown bits in a flags field whose unknown bits
	// invalidate downstream offsets.
	KindBadFlags

	// KindBadLength indicates a declared structure length that overflows when
	// added to its base offset.
	KindBadLength

	// KindBadOffset indicates a sub-field offset falling outside the region
	// of its enclosing structure.
	KindBadOffset

	// KindShortRead indicates the buffer ended before a required field.
	KindShortRead
)

var errorKindNames = map[ErrorKind]string{
	KindIo:        "io",
	KindBadHeader: "bad-header",
	KindBadFlags:  "bad-flags",
	KindBadLength: "bad-length",
	KindBadOffset: "bad-offset",
	KindShortRead: "short-read",
}

func (ek ErrorKind) String() string {
	return errorKindNames[ek]
}

// LnkError is the typed error raised by the parser. It travels through the
// go-logging panic/recover channel like any other error, but keeps its kind
// so callers can classify a failure after unwrapping.
type LnkError struct {
	Kind    ErrorKind
	Message string
}

func (le *LnkError) Error() string {
	return fmt.Sprintf("%s: %s", le.Kind, le.Message)
}

func newError(kind ErrorKind, format string, args ...interface{}) *LnkError {
	return &LnkError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf digs the original LnkError out of a (possibly wrapped) error and
// returns its kind. Errors that did not originate in this package report
// KindIo.
func KindOf(err error) ErrorKind {
	for err != nil {
		if le, ok := err.(*LnkError); ok == true {
			return le.Kind
		}

		if ee, ok := err.(*errors.Error); ok == true {
			err = ee.Err
			continue
		}

		break
	}

	return KindIo
}
