package sat

// propagate drains the queue of falsified-but-unprocessed literals,
// microsat's propagate loop: walking each one's watch list, finding a
// new literal to watch or a unit consequence, and learning from (and
// assigning past) any conflict it finds along the way.
//
// It returns (Unsat, true, nil) only for a conflict discovered while
// forced is true -- a conflict reachable by propagation alone, with no
// intervening decision, which can never be undone by backtracking. Any
// other return has hasConflict == false; the caller inspects status only
// when hasConflict is true.
func (s *Solver) propagate() (status Status, hasConflict bool, err error) {
	forced := false
	if s.processed < s.assigned() {
		forced = s.reason[s.trail[s.processed].Var()] != 0
	}

	for s.processed < s.assigned() {
		lit := s.trail[s.processed]
		s.processed++

		litIdx := s.lidx(lit)
		cur := s.first[litIdx]
		prevSlot := int32(-1) // -1: the backing cell is s.first[litIdx] itself

		for cur != END {
			body := s.clauseBody(cur)

			if Literal(s.db.db[body]) == lit {
				s.db.db[body] = s.db.db[body+1]
			}

			unit := true
			for i := int32(2); unit && s.db.db[body+i] != 0; i++ {
				cand := Literal(s.db.db[body+i])
				if !s.isFalse(cand) {
					unit = false
					s.db.db[body+1] = int32(cand)
					s.db.db[body+i] = int32(lit)

					next := s.db.db[cur]
					if prevSlot == -1 {
						s.first[litIdx] = next
					} else {
						s.db.db[prevSlot] = next
					}
					s.addWatch(cand, cur)
					cur = next
				}
			}

			if !unit {
				continue
			}

			s.db.db[body+1] = int32(lit)
			prevSlot = cur
			cur = s.db.db[cur]

			other := Literal(s.db.db[body])
			switch {
			case s.isTrue(other):
				// the clause is already satisfied by its other watched
				// literal; keep watching lit and move on.
			case !s.isFalse(other):
				s.assign(other, body)
			default:
				if forced {
					s.rootConflict = true
					return Unsat, true, nil
				}
				lemma, aerr := s.analyze(body)
				if aerr != nil {
					s.lastErr = aerr
					return 0, false, aerr
				}
				if s.db.db[lemma+1] == 0 {
					forced = true
				}
				s.assign(Literal(s.db.db[lemma]), lemma)
				cur = END // abandon the rest of lit's (now-stale) watch list
			}
		}
	}

	if forced {
		s.forced = s.processed
	}
	return Sat, false, nil
}
