package pool

// bearingDiff returns the smallest signed-then-absolute difference between
// two compass bearings, in [0,180].
func bearingDiff(a, b int) int {
	r := (a - b) % 360
	if r < -180 {
		r += 360
	} else if r >= 180 {
		r -= 360
	}
	if r < 0 {
		return -r
	}
	return r
}

// bearingOk reports whether the direction change between two adjacent
// stops is acceptable: either the leg is long enough that a turn is
// unremarkable, or the turn itself is shallow enough.
//
// The feasibility test is strictly-less-than MaxAngle, preserved verbatim
// from the original: a bearing difference of exactly MaxAngle degrees is
// rejected, not admitted.
func (s *solveContext) bearingOk(s1, s2 int) bool {
	if s.dist2(s1, s2) > s.cfg.MaxAngleDist {
		return true
	}
	return bearingDiff(s.stops[s1].Bearing, s.stops[s2].Bearing) < s.cfg.MaxAngle
}

// stopWaitLeg returns the time cost of moving from stop `from` to stop
// `to`: the table lookup plus StopWait, unless the cab is already sitting
// at that stop (from == to), in which case the leg costs nothing.
//
// This is the corrected form from the source's later versions: the early
// version computed `cost + from == to ? 0 : STOP_WAIT`, which under C
// operator precedence evaluates `(cost + from) == to` instead of the
// intended conditional. That bug is not reproduced here.
func (s *solveContext) stopWaitLeg(from, to int) int {
	if from == to {
		return 0
	}
	return s.dist2(from, to) + s.cfg.StopWait
}

// actionStop returns the stop a given (orderID, action) pair refers to.
func (s *solveContext) actionStop(ordID int, act Action) int {
	o := s.orders[ordID]
	if act == In {
		return o.FromStand
	}
	return o.ToStand
}

// isTooLong simulates inserting (ordID, action) ahead of an existing branch
// and reports whether doing so would violate any wait-time or detour
// constraint already present in, or newly implied by, the branch.
//
// wait is the precomputed travel time from the candidate action's stop to
// the branch's current first stop (including StopWait, if applicable).
func (s *solveContext) isTooLong(ordID int, action Action, wait int, b Branch) bool {
	for i := 0; i < b.length()-1; i++ {
		if ordID == b.OrdIDs[i] && b.OrdActs[i] == Out && action == In {
			o := s.orders[ordID]
			if float64(wait) > float64(o.Distance)*(100.0+float64(o.MaxLoss))/100.0 {
				return true
			}
		}
		if b.OrdActs[i] == In && wait > s.orders[b.OrdIDs[i]].MaxWait {
			return true
		}
		from := s.actionStop(b.OrdIDs[i], b.OrdActs[i])
		to := s.actionStop(b.OrdIDs[i+1], b.OrdActs[i+1])
		if from != to {
			wait += s.dist2(from, to) + s.cfg.StopWait
		}
	}
	last := b.length() - 1
	if ordID == b.OrdIDs[last] && action == In {
		o := s.orders[ordID]
		if float64(wait) > float64(o.Distance)*(100.0+float64(o.MaxLoss))/100.0 {
			return true
		}
	}
	return false
}

// constraintsMet re-verifies the max-wait constraint of every IN in a
// finished branch, seeded with distCab (the cab's travel time to the
// branch's first stop). Max-loss is not re-checked here: it was already
// verified while the branch was being grown (isTooLong).
func (s *solveContext) constraintsMet(b Branch, distCab int) bool {
	dst := distCab
	for i := 0; i < b.length()-1; i++ {
		if b.OrdActs[i] == In && dst > s.orders[b.OrdIDs[i]].MaxWait {
			return false
		}
		from := s.actionStop(b.OrdIDs[i], b.OrdActs[i])
		to := s.actionStop(b.OrdIDs[i+1], b.OrdActs[i+1])
		if from != to {
			dst += s.dist2(from, to) + s.cfg.StopWait
		}
	}
	return true
}

// peakPassengers scans a branch's action sequence and returns the maximum
// number of passengers ever simultaneously on board. This is deliberately
// not the total number of pickups: a cab with seats=2 must still be able
// to serve a 3-pickup/3-dropoff pool whose occupancy never exceeds 2.
func peakPassengers(b Branch) int {
	cur, max := 0, 0
	for _, a := range b.OrdActs {
		if a == In {
			cur++
			if cur > max {
				max = cur
			}
		} else {
			cur--
		}
	}
	return max
}

// isFound reports whether any order is picked up (action In) in both
// branches — i.e. whether their passenger sets intersect.
func isFound(a, b Branch) bool {
	for x := range a.OrdActs {
		if a.OrdActs[x] != In {
			continue
		}
		for y := range b.OrdActs {
			if b.OrdActs[y] == In && b.OrdIDs[y] == a.OrdIDs[x] {
				return true
			}
		}
	}
	return false
}

// sumDetour computes, for every order in the branch, the extra in-pool
// travel time over its direct ride time, and sums the detours. Used by
// GoalCostDetour, which adds this sum to the plain cost.
func (s *solveContext) sumDetour(b Branch) int {
	sum := 0
	for i := 0; i < b.length()-1; i++ {
		if b.OrdActs[i] != In {
			continue
		}
		dst := 0
		for j := i + 1; j < b.length(); j++ {
			from := s.actionStop(b.OrdIDs[j-1], b.OrdActs[j-1])
			to := s.actionStop(b.OrdIDs[j], b.OrdActs[j])
			if from != to {
				dst += s.dist2(from, to) + s.cfg.StopWait
			}
			if b.OrdIDs[j] == b.OrdIDs[i] {
				sum += dst - s.orders[b.OrdIDs[i]].Distance
				break
			}
		}
	}
	return sum
}

// countDistanceWithoutPassengers sums the travel time of legs during which
// the cab carries nobody. Used by GoalDistanceWithoutPassengers.
func (s *solveContext) countDistanceWithoutPassengers(b Branch) int {
	count, dst := 0, 0
	n := b.length()
	for i := 0; i < n-2; i++ {
		if b.OrdActs[i] == In {
			count++
		} else {
			count--
		}
		if count == 0 {
			from := s.actionStop(b.OrdIDs[i], b.OrdActs[i])
			to := s.actionStop(b.OrdIDs[i+1], b.OrdActs[i+1])
			if from != to {
				dst += s.dist2(from, to) + s.cfg.StopWait
			}
		}
	}
	return dst
}
