package pool

// storeLeaves populates the deepest tree level with every feasible
// length-2 branch: either the IN/OUT pair of a single order, or the OUT/OUT
// pair of two distinct orders whose second drop-off does not blow the
// second order's own detour budget.
//
// It runs single-threaded: the original source observes that leaves need
// only one thread's worth of memory, since there is no deeper level to
// fan out over.
func (s *solveContext) storeLeaves(lev, inPool int) []Branch {
	var out []Branch
	n := len(s.orders)
	for c := 0; c < n; c++ {
		if s.orders[c].allocated() {
			continue
		}
		for d := 0; d < n; d++ {
			if s.orders[d].allocated() {
				continue
			}
			if c == d {
				if s.bearingOk(s.orders[c].FromStand, s.orders[d].ToStand) {
					out = append(out, s.addLeaf(c, d, In))
				}
				continue
			}
			cTo := s.orders[c].ToStand
			dFrom, dTo := s.orders[d].FromStand, s.orders[d].ToStand
			threshold := float64(s.dist2(dFrom, dTo)) * (100.0 + float64(s.orders[d].MaxLoss)) / 100.0
			if float64(s.dist2(cTo, dTo)) < threshold && s.bearingOk(cTo, dTo) {
				out = append(out, s.addLeaf(c, d, Out))
			}
		}
	}
	if len(out) > s.cfg.MaxThreadMem {
		dropped := len(out) - s.cfg.MaxThreadMem
		s.warnf("storeLeaves: level %d dropping %d branches, over MaxThreadMem", lev, dropped)
		s.emit(OverflowEvent{PoolSize: inPool, Level: lev, Dropped: dropped})
		out = out[:s.cfg.MaxThreadMem]
	}
	s.emit(LeavesStoredEvent{PoolSize: inPool, Level: lev, LeafCount: len(out)})
	return out
}

// addLeaf builds a two-stop branch: (id1, dir1) followed by (id2, Out).
// dir1 is In when id1==id2 (an order's own IN/OUT pair) and Out when id1
// and id2 are distinct orders both being dropped off.
func (s *solveContext) addLeaf(id1, id2 int, dir1 Action) Branch {
	fromStand := s.actionStop(id1, dir1)
	toStand := s.orders[id2].ToStand
	cost := s.dist2(fromStand, toStand)
	if fromStand != toStand {
		cost += s.cfg.StopWait
	}
	outs := 1
	if dir1 == Out {
		outs = 2
	}
	return Branch{
		Cost:    cost,
		Outs:    outs,
		OrdIDs:  []int{id1, id2},
		OrdActs: []Action{dir1, Out},
	}
}
