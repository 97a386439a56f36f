package sat

// vmtfOrder is the variable-move-to-front decision list microsat
// builds over its prev/next arrays: a doubly linked list over 1..nVars
// with head pointing at the most-recently-bumped variable. Conflict
// analysis moves variables to the front as it marks them (bump), which
// clusters recently active variables near head without needing any
// activity score -- unlike a VSIDS-based VarOrder, this type has no heap
// and no float weights.
type vmtfOrder struct {
	next []Var
	prev []Var
	head Var
}

// newVMTFOrder builds the initial chain 1 <-> 2 <-> ... <-> nVars with
// head == nVars, matching microsat's initCDCL.
func newVMTFOrder(nVars int32) vmtfOrder {
	o := vmtfOrder{
		next: make([]Var, nVars+1),
		prev: make([]Var, nVars+1),
	}
	for v := Var(1); v <= Var(nVars); v++ {
		o.prev[v] = v - 1
		o.next[v-1] = v
	}
	o.head = Var(nVars)
	return o
}

// bump moves v to the front of the list, making it head. It is a no-op
// if v is already head.
func (o *vmtfOrder) bump(v Var) {
	if v == o.head {
		return
	}
	o.prev[o.next[v]] = o.prev[v]
	o.next[o.prev[v]] = o.next[v]
	o.next[o.head] = v
	o.prev[v] = o.head
	o.head = v
}
