package sat

// reduceDB discards learned clauses that agree with the cached model on
// k or more literals, keeping only those with fewer than k such
// literals, microsat's reduceDB. It is called whenever a
// restart leaves more learned clauses in the database than maxLemmas
// allows.
//
// The learned region is truncated wholesale and replayed: every watch
// pointing into it is unlinked first (propagate can move an original
// clause's watch to the head of a list that already holds learned
// clauses, so each list is walked in full, not just its leading
// entries), then each surviving clause is re-added through addClause,
// which re-threads its watches from scratch.
func (s *Solver) reduceDB(k int) error {
	for s.nLemmas > s.maxLemmas {
		s.maxLemmas += 300
	}
	s.nLemmas = 0

	for lit := -s.nVars; lit <= s.nVars; lit++ {
		if lit == 0 {
			continue
		}
		idx := s.lidx(Literal(lit))
		prevSlot := int32(-1) // -1: the backing cell is s.first[idx] itself
		for cur := s.first[idx]; cur != END; {
			next := s.db.db[cur]
			if cur < s.db.memFixed {
				prevSlot = cur
			} else if prevSlot == -1 {
				s.first[idx] = next
			} else {
				s.db.db[prevSlot] = next
			}
			cur = next
		}
	}

	oldUsed := s.db.memUsed
	s.db.memUsed = s.db.memFixed

	for i := s.db.memFixed + 2; i < oldUsed; {
		head := i
		for s.db.db[i] != 0 {
			i++
		}
		term := i
		size := term - head

		count := 0
		for j := head; j < term; j++ {
			lit := s.db.db[j]
			positive := lit > 0
			if positive == (s.model[Literal(lit).Var()] > 0) {
				count++
			}
		}

		if count < k {
			lits := make([]Literal, size)
			for j := int32(0); j < size; j++ {
				lits[j] = Literal(s.db.db[head+j])
			}
			if _, err := s.addClause(lits, false); err != nil {
				return err
			}
		}

		i = term + 3
	}
	return nil
}
