package lnk

import (
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func TestLnkError_Error(t *testing.T) {
	le := newError(KindBadOffset, "offset (%d) is out", 9)
	assert.Equal(t, "bad-offset: offset (9) is out", le.Error())
}

func TestKindOf_Direct(t *testing.T) {
	assert.Equal(t, KindShortRead, KindOf(newError(KindShortRead, "x")))
}

func TestKindOf_Wrapped(t *testing.T) {
	le := newError(KindBadLength, "x")

	wrapped := errors.Wrap(le, 0)
	assert.Equal(t, KindBadLength, KindOf(wrapped))

	doubleWrapped := errors.Wrap(wrapped, 0)
	assert.Equal(t, KindBadLength, KindOf(doubleWrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindIo, KindOf(fmt.Errorf("something else")))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "io", KindIo.String())
	assert.Equal(t, "short-read", KindShortRead.String())
}
