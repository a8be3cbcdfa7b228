package pool

import (
	"context"
	"sync"
)

// dive grows the tree one level at a time, starting from lev and working
// toward the leaves, then unwinds back up to lev, extending every deeper
// branch by one action per level. It returns once s.levels[lev] has been
// populated.
//
// The terminal case (lev deep enough that only two actions remain) invokes
// the leaf generator directly; every other level fans the extension work
// out across a worker pool, one worker per contiguous chunk of the order
// range, and merges their private scratch buffers back in worker-index
// order once all of them have joined. That merge order is what makes the
// overall result deterministic for a fixed order count and thread count
// (spec invariant 8).
func (s *solveContext) dive(ctx context.Context, lev, inPool, numbThreads int) {
	if lev > inPool+inPool-3 {
		s.levels[lev] = s.storeLeaves(lev, inPool)
		return
	}

	s.dive(ctx, lev+1, inPool, numbThreads)

	select {
	case <-ctx.Done():
		s.levels[lev] = nil
		return
	default:
	}

	deeper := s.levels[lev+1]
	merged := s.extendLevel(deeper, lev, inPool, numbThreads)
	s.levels[lev] = merged
	s.emit(LevelMergedEvent{PoolSize: inPool, Level: lev, BranchCount: len(merged)})
}

// extendLevel is the thread-pool harness (spec §4.4): it partitions the
// full order range (not just the active subset — chunk boundaries must
// stay stable across pool sizes for determinism) into numbThreads
// contiguous chunks, runs one worker per chunk against an immutable
// snapshot of `deeper`, and merges each worker's private scratch buffer
// into the shared level buffer in worker-index order.
func (s *solveContext) extendLevel(deeper []Branch, lev, inPool, numbThreads int) []Branch {
	demandNumb := len(s.orders)
	if demandNumb == 0 || len(deeper) == 0 {
		return nil
	}

	chunk := (demandNumb + numbThreads - 1) / numbThreads
	if chunk == 0 {
		chunk = 1
	}

	scratch := make([][]Branch, numbThreads)
	var wg sync.WaitGroup
	for i := 0; i < numbThreads; i++ {
		start := i * chunk
		stop := start + chunk
		if stop > demandNumb {
			stop = demandNumb
		}
		if start >= stop {
			continue
		}
		wg.Add(1)
		go func(worker, start, stop int) {
			defer wg.Done()
			var buf []Branch
			for ordID := start; ordID < stop; ordID++ {
				if s.orders[ordID].allocated() {
					continue
				}
				for _, ptr := range deeper {
					if ext, ok := s.extendBranch(lev, ordID, ptr, inPool); ok {
						if len(buf) >= s.cfg.MaxThreadMem {
							s.warnf("extendLevel: worker %d dropping branch, over MaxThreadMem at level %d", worker, lev)
							s.emit(OverflowEvent{PoolSize: inPool, Level: lev, Dropped: 1})
							continue
						}
						buf = append(buf, ext)
					}
				}
			}
			scratch[worker] = buf
		}(i, start, stop)
	}
	wg.Wait()

	total := 0
	for _, b := range scratch {
		total += len(b)
	}
	merged := make([]Branch, 0, total)
	for _, b := range scratch {
		merged = append(merged, b...)
	}
	return merged
}

// extendBranch is the extension rule
// (storeBranchIfNotFoundDeeperAndNotTooLong in the source): given an order
// and a deeper-level branch, decide whether the order can be prepended as a
// new IN or a new OUT, and if so build the extended branch.
func (s *solveContext) extendBranch(lev, ordID int, ptr Branch, inPool int) (Branch, bool) {
	outFound := false
	for i := 0; i < ptr.length(); i++ {
		if ptr.OrdIDs[i] != ordID {
			continue
		}
		if ptr.OrdActs[i] == In {
			// an IN for this order already exists deeper; we cannot
			// insert another IN ahead of it.
			return Branch{}, false
		}
		outFound = true
		break
	}

	nextStop := s.actionStop(ptr.OrdIDs[0], ptr.OrdActs[0])

	if outFound {
		from := s.orders[ordID].FromStand
		wait := s.stopWaitLeg(from, nextStop)
		if !s.isTooLong(ordID, In, wait, ptr) && s.bearingOk(from, nextStop) {
			return s.storeBranch(In, lev, ordID, ptr, inPool), true
		}
		return Branch{}, false
	}

	if lev > 0 && ptr.Outs < inPool {
		to := s.orders[ordID].ToStand
		wait := s.stopWaitLeg(to, nextStop)
		if !s.isTooLong(ordID, Out, wait, ptr) && s.bearingOk(to, nextStop) {
			return s.storeBranch(Out, lev, ordID, ptr, inPool), true
		}
	}
	return Branch{}, false
}

// storeBranch prepends (ordID, action) to an existing deeper branch,
// producing a new, independent Branch (the deeper one is never mutated:
// workers only ever read level lev+1).
func (s *solveContext) storeBranch(action Action, lev, ordID int, b Branch, inPool int) Branch {
	n := b.length() + 1
	ids := make([]int, n)
	acts := make([]Action, n)
	ids[0] = ordID
	acts[0] = action
	copy(ids[1:], b.OrdIDs)
	copy(acts[1:], b.OrdActs)

	from := s.actionStop(ordID, action)
	to := s.actionStop(b.OrdIDs[0], b.OrdActs[0])
	cost := b.Cost + s.dist2(from, to)
	if from != to {
		cost += s.cfg.StopWait
	}
	outs := b.Outs
	if action == Out {
		outs++
	}
	return Branch{Cost: cost, Outs: outs, OrdIDs: ids, OrdActs: acts}
}
