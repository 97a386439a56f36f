package sat

import "errors"

// END is the watch-list sentinel: "no more clauses watch this literal."
// microsat picks an arbitrary negative value (~-9) to keep it far from
// any real offset; we keep that value rather than -1 so a stray watch
// corruption does not masquerade as a valid small offset during
// debugging.
const END int32 = -9

// ErrOutOfMemory is returned when the arena cannot satisfy an allocation.
// microsat calls exit(0) on allocation failure; the core here never
// panics or exits on OOM, it returns this error up through AddClause/Solve
// for the driver to report instead.
var ErrOutOfMemory = errors.New("sat: arena out of memory")

// arena is the flat int32 clause database microsat calls DB: a single
// append-mostly region addressed by integer offsets, never by pointer.
// Offsets are stable handles that survive everything except reduceDB's
// surgical truncation of the learned region.
type arena struct {
	db       []int32
	memUsed  int32
	memFixed int32
	memMax   int32
}

func newArena(maxInts int32) arena {
	return arena{db: make([]int32, maxInts), memMax: maxInts}
}

// alloc reserves k consecutive ints and returns the starting offset.
func (a *arena) alloc(k int32) (int32, error) {
	if a.memUsed+k > a.memMax {
		return 0, ErrOutOfMemory
	}
	off := a.memUsed
	a.memUsed += k
	return off, nil
}
