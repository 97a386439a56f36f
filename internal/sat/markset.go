package sat

// epochTable is a fixed-size table whose entries reset to the zero value
// in O(1) by bumping an epoch counter rather than rewriting the backing
// array -- the generalization of the classic "reset set" idiom to a
// table of small values instead of a plain membership bit.
//
// microsat overloads a single fals[] array with the sentinels
// MARK/IMPLIED/NOT_IMPLIED to avoid a second allocation. epochTable pulls
// those tags into their own discriminated table so fals[] keeps its
// original, simple meaning (0 unassigned, 1 false) while the
// mark/self-subsumption bookkeeping lives here instead.
type epochTable struct {
	value []int8
	stamp []uint32
	epoch uint32
}

func newEpochTable(n int) epochTable {
	return epochTable{value: make([]int8, n), stamp: make([]uint32, n)}
}

func (t *epochTable) get(i int32) int8 {
	if t.stamp[i] != t.epoch {
		return 0
	}
	return t.value[i]
}

func (t *epochTable) set(i int32, v int8) {
	t.stamp[i] = t.epoch
	t.value[i] = v
}

// clear resets every entry to zero in O(1).
func (t *epochTable) clear() {
	t.epoch++
}

// markSet tracks which variables are MARKed as part of the conflict
// clause currently under construction, microsat's bump/MARK step. It
// is cleared once per analyze call.
type markSet struct {
	tbl   epochTable
	nVars int32
}

func newMarkSet(nVars int32) markSet {
	return markSet{tbl: newEpochTable(int(nVars) + 1), nVars: nVars}
}

func (m *markSet) mark(v Var)      { m.tbl.set(int32(v), 1) }
func (m *markSet) isMarked(v Var) bool { return m.tbl.get(int32(v)) == 1 }
func (m *markSet) reset()          { m.tbl.clear() }

// impliedCache memoizes microsat's implied(lit) self-subsumption check
// across a single analyze call: notImplied/implied are cached per signed
// literal, exactly mirroring the original's fals[lit] == NOT_IMPLIED /
// IMPLIED sentinels but without disturbing falsity bookkeeping.
type impliedCache struct {
	tbl   epochTable
	nVars int32
}

const (
	impliedUnknown    int8 = 0
	impliedNo         int8 = 1
	impliedYes        int8 = 2
)

func newImpliedCache(nVars int32) impliedCache {
	return impliedCache{tbl: newEpochTable(int(2*nVars) + 1), nVars: nVars}
}

func (c *impliedCache) offset(l Literal) int32 { return int32(l) + c.nVars }

func (c *impliedCache) lookup(l Literal) int8 { return c.tbl.get(c.offset(l)) }

func (c *impliedCache) setImplied(l Literal, v bool) {
	if v {
		c.tbl.set(c.offset(l), impliedYes)
	} else {
		c.tbl.set(c.offset(l), impliedNo)
	}
}

func (c *impliedCache) reset() { c.tbl.clear() }
