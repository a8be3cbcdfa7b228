package pool

import "sort"

// cabLookupResult distinguishes the three outcomes findNearestCab can
// produce, mirroring the source's sentinel return values (-1, -2, index)
// with named results instead of magic numbers.
type cabLookupResult int

const (
	cabFound cabLookupResult = iota
	cabNoneAtAll
	cabNoneWithSeats
)

// findNearestCab returns the closest unallocated cab from `from` that
// seats at least passengers, distinguishing "no cabs exist at all" from
// "cabs exist but none of them are big enough" — the dedup & assign pass
// treats these two outcomes differently (§4.5).
func (s *solveContext) findNearestCab(from, passengers int) (idx int, dist int, result cabLookupResult) {
	best := -1
	bestDist := 1 << 30
	foundAny := false
	for i, c := range s.cabs {
		if c.allocated() {
			continue
		}
		foundAny = true
		d := s.dist2(c.Location, from)
		if d < bestDist && c.Seats >= passengers {
			bestDist = d
			best = i
		}
	}
	if !foundAny {
		return -1, 0, cabNoneAtAll
	}
	if best == -1 {
		return -1, 0, cabNoneWithSeats
	}
	return best, bestDist, cabFound
}

// sortKey returns the value branches are ordered by ahead of dedup &
// assign, per the configured GoalFunc. GoalCost is a no-op (branches are
// already carrying the right cost); the other two strategies are
// evaluated lazily only when selected, since they are not part of the
// spec's default behavior and must not perturb it (invariant 7).
func (s *solveContext) sortKey(b Branch) int {
	switch s.cfg.GoalFunc {
	case GoalCostDetour:
		return b.Cost + s.sumDetour(b)
	case GoalDistanceWithoutPassengers:
		return b.Cost + s.countDistanceWithoutPassengers(b)
	default:
		return b.Cost
	}
}

// rmDuplicatesAndFindCab is the dedup & assign pass (§4.5): sort level-0
// branches by cost, walk them in order, bind the nearest capable cab to
// each surviving one, and tombstone every later branch that shares a
// pickup with an already-accepted one.
func (s *solveContext) rmDuplicatesAndFindCab(level0 []Branch, poolSize, retSize int) []Branch {
	if len(level0) == 0 {
		return nil
	}

	branches := make([]Branch, len(level0))
	copy(branches, level0)

	sort.SliceStable(branches, func(i, j int) bool {
		return s.sortKey(branches[i]) < s.sortKey(branches[j])
	})

	var accepted []Branch
	for i := range branches {
		ptr := &branches[i]
		if ptr.tombstoned() {
			continue
		}
		from := s.orders[ptr.OrdIDs[0]].FromStand
		cabIdx, cabDist, res := s.findNearestCab(from, peakPassengers(*ptr))

		switch res {
		case cabNoneAtAll:
			for j := i + 1; j < len(branches); j++ {
				branches[j].Cost = -1
			}
			s.warnf("rmDuplicatesAndFindCab: no cabs left, stopping with %d accepted", len(accepted))
			return finalizeAccepted(accepted, retSize)
		case cabNoneWithSeats:
			ptr.Cost = -1
			continue
		}

		if cabDist != 0 && !s.constraintsMet(*ptr, cabDist+s.cfg.StopWait) {
			ptr.Cost = -1
			continue
		}

		ptr.Cab = cabIdx
		s.cabs[cabIdx].ID = -1
		for _, ord := range ptr.OrdIDs {
			s.orders[ord].ID = -1
		}

		accepted = append(accepted, *ptr)
		s.emit(PoolFoundEvent{PoolSize: poolSize, Cost: ptr.Cost, CabIndex: cabIdx, OrderIDs: append([]int(nil), ptr.OrdIDs...)})

		for j := i + 1; j < len(branches); j++ {
			if !branches[j].tombstoned() && isFound(*ptr, branches[j]) {
				branches[j].Cost = -1
			}
		}
	}
	return finalizeAccepted(accepted, retSize)
}

// finalizeAccepted caps the accepted list at retSize, matching the
// caller-owned output-slot capacity (*ret / retSize) in the original
// entry point.
func finalizeAccepted(accepted []Branch, retSize int) []Branch {
	if retSize > 0 && len(accepted) > retSize {
		return accepted[:retSize]
	}
	return accepted
}
