// Package lcm implements the Low-Cost-Method auxiliary assignment used
// outside the pooling core: a trivial nearest-cab-to-order matching with no
// pooling, no detour, no bearing constraint — just "bind this order to a
// nearby cab" as fast as possible. It is the Go rendering of the original
// source's lcm_dummy and slow_lcm entry points (poold.c), kept as two
// distinct strategies since they trade accuracy for speed differently and
// the spec explicitly treats this as a peripheral, external collaborator
// to the branch-enumeration core in package pool.
package lcm

import "github.com/boguszjelinski/kern/pool"

// Assignment binds one order to one cab, both expressed as indices into the
// slices passed to FastLCM/FastLCMExhaustive.
type Assignment struct {
	CabIndex   int
	OrderIndex int
}

// FastLCM is the row-wise nearest-neighbor variant (lcm_dummy in the
// source): walking orders in order, skipping any already allocated
// (id == -1, the same sentinel pool.Dynapool uses), find the closest
// still-unallocated cab in that order's own row of the distance matrix —
// it never scans the whole matrix, so it is fast but can miss a globally
// better pairing. Matched cabs and orders are not removed from the input
// slices; callers mark consumption themselves, same as for a Dynapool
// result.
func FastLCM(dist pool.DistanceMatrix, orders []pool.Order, cabs []pool.Cab, howMany int) []Assignment {
	const bigCost = 1_000_000

	taken := make([]bool, len(cabs))
	out := make([]Assignment, 0, howMany)

	for i, ord := range orders {
		if len(out) >= howMany {
			break
		}
		if ord.ID == -1 {
			continue
		}
		best := -1
		bestCost := bigCost
		for s, cab := range cabs {
			if taken[s] || cab.ID == -1 {
				continue
			}
			cost := dist.At(cab.Location, ord.FromStand)
			if cost == 0 {
				best = s
				break
			}
			if cost < bestCost {
				bestCost = cost
				best = s
			}
		}
		if best == -1 {
			continue
		}
		taken[best] = true
		out = append(out, Assignment{CabIndex: best, OrderIndex: i})
	}
	return out
}

// FastLCMExhaustive is the full-matrix-scan variant (slow_lcm in the
// source): at each step it finds the globally cheapest (cab,order) pair
// across every still-unassigned cab and order, accepts it only if it is
// within that order's MaxWait, and otherwise discards the order (a closer
// cab will not appear for it later, since distances only grow as cabs are
// consumed). It is slower but strictly more accurate than FastLCM, and is
// the strategy cmd/kern's run/serve commands fall back to whenever
// pool.Dynapool finds no pools at all for a scenario.
func FastLCMExhaustive(dist pool.DistanceMatrix, orders []pool.Order, cabs []pool.Cab, howMany int) []Assignment {
	const bigCost = 1_000_000

	cabTaken := make([]bool, len(cabs))
	ordTaken := make([]bool, len(orders))
	var out []Assignment

	for range orders {
		bestCab, bestOrd := -1, -1
		bestCost := bigCost
		found := false
		for s, cab := range cabs {
			if cabTaken[s] || cab.ID == -1 {
				continue
			}
			for d, ord := range orders {
				if ordTaken[d] || ord.ID == -1 {
					continue
				}
				cost := dist.At(cab.Location, ord.FromStand) + cab.Dist
				if cost < bestCost {
					bestCost = cost
					bestCab = s
					bestOrd = d
					if bestCost == 0 {
						found = true
						break
					}
				}
			}
			if found {
				break
			}
		}
		if bestCost == bigCost {
			break
		}
		if orders[bestOrd].MaxWait >= bestCost {
			out = append(out, Assignment{CabIndex: bestCab, OrderIndex: bestOrd})
			cabTaken[bestCab] = true
			ordTaken[bestOrd] = true
		} else {
			// no closer cab will ever appear for this order as more cabs
			// are consumed, so it can never be matched: drop it.
			ordTaken[bestOrd] = true
		}
		if len(out) >= howMany {
			break
		}
	}
	return out
}
