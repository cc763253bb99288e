package lnk

import (
	"math"

	"github.com/dsoprea/go-logging"
)

// addOverflows indicates whether (a + b) would wrap. Every addition involving
// buffer offsets goes through this; an overflow behaves like an out-of-bounds
// read.
func addOverflows(a, b int) bool {
	if a > 0 && b > 0 {
		return b > math.MaxInt64-a
	} else if a < 0 && b < 0 {
		return b < math.MinInt64-a
	}

	return false
}

// Region delimits a nested structure inside the buffer: a [start, end) pair
// through which no read may produce a byte at or beyond end. Regions nest;
// an inner region's end never exceeds its parent's. The nothrow variants let
// defensive parsers bail without raising, which is how the shell-item parsers
// emit partial output instead of aborting the whole list.
type Region struct {
	start int
	end   int
}

// SetStart initializes the lower bound.
func (r *Region) SetStart(p int) int {
	r.start = p
	return r.start
}

// Start returns the current lower bound.
func (r *Region) Start() int {
	return r.start
}

// End returns the offset one byte beyond the structure.
func (r *Region) End() int {
	return r.end
}

// SetLen sets the upper bound from a declared structure length. Start must be
// initialized first. An overflowing length raises a bad-length failure.
func (r *Region) SetLen(n int, fieldName string) {
	if addOverflows(r.start, n) == true {
		log.PanicIf(newError(KindBadLength, "field [%s] has bad length (%d): integer overflow", fieldName, n))
	}

	r.end = r.start + n
}

// SetLenOk is the nothrow form of SetLen.
func (r *Region) SetLenOk(n int) bool {
	if addOverflows(r.start, n) == true {
		return false
	}

	r.end = r.start + n

	return true
}

// Pop advances the lower bound by n bytes iff the new start remains within
// the region.
func (r *Region) Pop(n int) bool {
	if addOverflows(r.start, n) == true || r.start+n > r.end {
		return false
	}

	r.start += n

	return true
}

// CheckOffsets requires that at least one byte can be read at start+a+b.
func (r *Region) CheckOffsets(a, b int, fieldName string) {
	if addOverflows(r.start, a) == true || addOverflows(r.start+a, b) == true {
		log.PanicIf(newError(KindBadOffset, "field [%s] has bad offset (%d)+(%d)+(%d): integer overflow", fieldName, r.start, a, b))
	}

	if r.start+a+b >= r.end {
		log.PanicIf(newError(KindBadOffset, "field [%s] offset beyond end of structure (%d)+(%d)+(%d) >= (%d)", fieldName, r.start, a, b, r.end))
	}
}

// CheckOffsetsOk is the nothrow form of CheckOffsets.
func (r *Region) CheckOffsetsOk(a, b int) bool {
	if addOverflows(r.start, a) == true || addOverflows(r.start+a, b) == true {
		return false
	}

	return r.start+a+b < r.end
}

// MaxLen is the number of readable bytes between start+a+b and the end of the
// region, or zero.
func (r *Region) MaxLen(a, b int) int {
	if addOverflows(r.start, a) == true || addOverflows(r.start+a, b) == true ||
		r.start+a+b > r.end {
		return 0
	}

	return r.end - b - a - r.start
}

// CheckRead indicates whether nbytes bytes can be read at start+off.
func (r *Region) CheckRead(off, nbytes int) bool {
	return r.MaxLen(off, 0) >= nbytes
}
