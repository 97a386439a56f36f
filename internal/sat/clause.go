package sat

// clauseBody recovers a clause's body offset (the offset of its first
// literal) from mem, the offset of either of its two watch header slots.
// A clause is allocated as [headerA, headerB, lit0, lit1, ..., 0], so
// body is always mem rounded down to its allocation base, plus 2. Since
// allocation is contiguous and every clause's literal run ends in a 0,
// the int just before the clause's first header slot is always 0 --
// that is what lets this recover which of the two slots mem is without
// storing the distinction anywhere, microsat's watch encoding trick.
func (s *Solver) clauseBody(mem int32) int32 {
	if s.db.db[mem-1] == 0 {
		return mem + 2
	}
	return mem + 1
}

// addWatch prepends the clause whose header slot lives at headerSlot to
// lit's watch list, microsat's addWatch.
func (s *Solver) addWatch(lit Literal, headerSlot int32) {
	idx := s.lidx(lit)
	s.db.db[headerSlot] = s.first[idx]
	s.first[idx] = headerSlot
}

// addClause reserves size+3 ints in the arena (two watch-header slots,
// the literals, and a terminating 0), threads the clause into its first
// two literals' watch lists if it is not unit, and classifies it as
// original (irredundant) or learned. It returns the arena offset of the
// clause's first literal -- the offset used everywhere else as the
// clause's handle, mirroring microsat's add.
func (s *Solver) addClause(lits []Literal, irredundant bool) (int32, error) {
	size := int32(len(lits))
	off, err := s.db.alloc(size + 3)
	if err != nil {
		return 0, err
	}
	body := off + 2
	if size > 1 {
		s.addWatch(lits[0], off)
		s.addWatch(lits[1], off+1)
	}
	for i, l := range lits {
		s.db.db[body+int32(i)] = int32(l)
	}
	s.db.db[body+size] = 0

	if irredundant {
		s.db.memFixed = s.db.memUsed
	} else {
		s.nLemmas++
	}
	return body, nil
}

// AddClause ingests one original (irredundant) clause from the DIMACS
// producer, the counterpart of microsat's parse() loop calling add().
// The caller is responsible for the usual DIMACS preconditions: size >= 0,
// literals within 1..nVars in absolute value, and no duplicate or
// complementary literal within the clause.
//
// AddClause returns false once it is established that the formula is
// unsatisfiable at the root level (an empty clause, or a unit clause
// contradicting a prior unit) -- the driver must treat that as immediate
// UNSAT. It returns an error only on arena exhaustion.
func (s *Solver) AddClause(lits []Literal) (bool, error) {
	if s.lastErr != nil {
		return false, s.lastErr
	}
	body, err := s.addClause(lits, true)
	if err != nil {
		s.lastErr = err
		return false, err
	}

	switch len(lits) {
	case 0:
		s.rootConflict = true
		return false, nil
	case 1:
		first := Literal(s.db.db[body])
		if s.isFalse(first) {
			s.rootConflict = true
			return false, nil
		}
		if !s.isTrue(first) {
			// forced/processed are left untouched here: the first call to
			// propagate computes the initial forced flag from whatever
			// literal sits at the head of the queue, exactly as it would
			// for any other forced unit. microsat's parse() never
			// touches forced/processed itself either.
			s.assign(first, body)
		}
	}
	return true, nil
}
