package pool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boguszjelinski/kern/pool"
)

// line builds a simple N-stop, same-bearing, evenly spaced line topology:
// stop i is leg*|i-j| minutes from stop j. Every stop shares one bearing so
// that bearing checks never reject a leg unless the test deliberately
// gives a stop a different bearing.
func line(n int, leg int, bearing int) ([]int16, []pool.Stop) {
	d := make([]int16, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				diff := i - j
				if diff < 0 {
					diff = -diff
				}
				d[i*n+j] = int16(diff * leg)
			}
		}
	}
	stops := make([]pool.Stop, n)
	for i := range stops {
		stops[i] = pool.Stop{ID: i, Bearing: bearing}
	}
	return d, stops
}

func baseConfig(maxInPool int, thresholds []int) pool.Config {
	return pool.Config{
		MaxInPool:          maxInPool,
		NumbThreads:        4,
		MaxThreadMem:       10000,
		PoolSizeThresholds: thresholds,
		MaxAngle:           120,
		MaxAngleDist:       1,
		StopWait:           1,
		GoalFunc:           pool.GoalCost,
	}
}

// S1: trivial pair. Two orders at distinct adjacent stops, one cab
// adjacent to the first, generous wait/loss budgets.
func TestScenarioS1TrivialPair(t *testing.T) {
	d, stops := line(4, 5, 90)
	orders := []pool.Order{
		{ID: 0, FromStand: 0, ToStand: 2, MaxWait: 30, MaxLoss: 70, Distance: 10},
		{ID: 1, FromStand: 1, ToStand: 3, MaxWait: 30, MaxLoss: 70, Distance: 10},
	}
	cabs := []pool.Cab{{ID: 0, Location: 0, Seats: 4}}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, 4), Stops: stops, Orders: orders, Cabs: cabs}
	cfg := baseConfig(2, []int{1000})

	res, err := pool.Dynapool(context.Background(), cfg, in, 10, nil)
	require.NoError(t, err)
	require.Len(t, res.Pools, 1, "expects a single combined pool of both orders")
	assert.Equal(t, 4, len(res.Pools[0].OrdIDs))
}

// S2: bearing rejection. Order A's stops (0,2) and order B's stops (1,3)
// are interleaved on the line but point in opposite compass directions
// (even stops face 0°, odd stops face 180°), and every leg is short enough
// that the bearing check always applies. Combining A and B into one pool
// necessarily crosses from an even stop to an odd one somewhere in the
// sequence, which the direction check must reject; only the two singleton
// (no-pool) outcomes remain feasible.
func TestScenarioS2BearingRejection(t *testing.T) {
	n := 4
	d, stops := line(n, 1, 0)
	for i := range stops {
		if i%2 == 1 {
			stops[i].Bearing = 180
		}
	}
	orders := []pool.Order{
		{ID: 0, FromStand: 0, ToStand: 2, MaxWait: 30, MaxLoss: 90, Distance: 2},
		{ID: 1, FromStand: 1, ToStand: 3, MaxWait: 30, MaxLoss: 90, Distance: 2},
	}
	cabs := []pool.Cab{{ID: 0, Location: 0, Seats: 4}}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: orders, Cabs: cabs}
	cfg := baseConfig(2, []int{1000})
	cfg.MaxAngleDist = 5 // covers every leg in this 4-stop line, so the bearing check always applies

	res, err := pool.Dynapool(context.Background(), cfg, in, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pools, "a sharp bearing change on a short leg must suppress the combined pool")
}

// S3: wait-time prune. Combining three orders would blow the first
// passenger's maxWait: the only feasible 3-pool starts with order 0, and
// the cab's 10-minute leg to order 0's stop already exceeds its maxWait=5.
// Expect the full 3-pool to be rejected and the dedup pass to fall back to
// whatever smaller pools remain feasible.
func TestScenarioS3WaitTimePrune(t *testing.T) {
	n := 6
	d, stops := line(n, 10, 90) // long legs, well over a tight maxWait
	orders := []pool.Order{
		{ID: 0, FromStand: 0, ToStand: 1, MaxWait: 5, MaxLoss: 90, Distance: 10},
		{ID: 1, FromStand: 2, ToStand: 3, MaxWait: 50, MaxLoss: 90, Distance: 10},
		{ID: 2, FromStand: 4, ToStand: 5, MaxWait: 50, MaxLoss: 90, Distance: 10},
	}
	cabs := []pool.Cab{{ID: 0, Location: 1, Seats: 4}}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: orders, Cabs: cabs}
	cfg := baseConfig(3, []int{1000, 1000})

	res, err := pool.Dynapool(context.Background(), cfg, in, 10, nil)
	require.NoError(t, err)
	for _, b := range res.Pools {
		assert.Less(t, len(b.OrdIDs), 6, "the tight-wait order must never end up in the full 3-pool")
	}
}

// S4: allocation sentinel. Running inPool=4 first consumes some orders and
// a cab; a follow-up inPool=3 pass over the same (mutated) Inputs must
// only ever reference orders/cabs that are still unallocated.
func TestScenarioS4AllocationSentinel(t *testing.T) {
	n := 8
	d, stops := line(n, 2, 90)
	orders := []pool.Order{
		{ID: 0, FromStand: 0, ToStand: 1, MaxWait: 30, MaxLoss: 90, Distance: 2},
		{ID: 1, FromStand: 2, ToStand: 3, MaxWait: 30, MaxLoss: 90, Distance: 2},
		{ID: 2, FromStand: 4, ToStand: 5, MaxWait: 30, MaxLoss: 90, Distance: 2},
		{ID: 3, FromStand: 6, ToStand: 7, MaxWait: 30, MaxLoss: 90, Distance: 2},
	}
	cabs := []pool.Cab{{ID: 0, Location: 0, Seats: 4}, {ID: 1, Location: 6, Seats: 4}}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: orders, Cabs: cabs}

	cfg4 := baseConfig(4, []int{1000, 1000, 1000})
	res4, err := pool.Dynapool(context.Background(), cfg4, in, 10, nil)
	require.NoError(t, err)

	allocatedOrders := map[int]bool{}
	for _, b := range res4.Pools {
		for _, id := range b.OrdIDs {
			allocatedOrders[id] = true
		}
	}

	cfg3 := baseConfig(3, []int{1000, 1000})
	res3, err := pool.Dynapool(context.Background(), cfg3, in, 10, nil)
	require.NoError(t, err)
	for _, b := range res3.Pools {
		for _, id := range b.OrdIDs {
			assert.False(t, allocatedOrders[id], "inPool=3 pass must not reuse an order consumed by inPool=4")
		}
	}
}

// S6: deterministic replay. Re-running the same inputs (a fresh, unmutated
// copy each time) and thread count must yield identical output.
func TestScenarioS6DeterministicReplay(t *testing.T) {
	n := 12
	d, stops := line(n, 3, 90)
	buildOrders := func() []pool.Order {
		out := make([]pool.Order, 10)
		for i := range out {
			from := i % n
			to := (from + 5) % n
			out[i] = pool.Order{ID: i, FromStand: from, ToStand: to, MaxWait: 15, MaxLoss: 70, Distance: 15}
		}
		return out
	}
	buildCabs := func() []pool.Cab {
		out := make([]pool.Cab, 20)
		for i := range out {
			out[i] = pool.Cab{ID: i, Location: i % n, Seats: 4}
		}
		return out
	}

	cfg := baseConfig(3, []int{1000, 1000})

	in1 := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: buildOrders(), Cabs: buildCabs()}
	res1, err := pool.Dynapool(context.Background(), cfg, in1, 100, nil)
	require.NoError(t, err)

	in2 := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: buildOrders(), Cabs: buildCabs()}
	res2, err := pool.Dynapool(context.Background(), cfg, in2, 100, nil)
	require.NoError(t, err)

	require.Equal(t, len(res1.Pools), len(res2.Pools))
	for i := range res1.Pools {
		assert.Equal(t, res1.Pools[i].OrdIDs, res2.Pools[i].OrdIDs)
		assert.Equal(t, res1.Pools[i].Cost, res2.Pools[i].Cost)
		assert.Equal(t, res1.Pools[i].Cab, res2.Pools[i].Cab)
	}
}

// Invariant 7: emitted branches appear in non-decreasing cost order.
func TestInvariantNonDecreasingCost(t *testing.T) {
	n := 10
	d, stops := line(n, 3, 90)
	orders := make([]pool.Order, 8)
	for i := range orders {
		from := i % n
		to := (from + 3) % n
		orders[i] = pool.Order{ID: i, FromStand: from, ToStand: to, MaxWait: 20, MaxLoss: 80, Distance: 9}
	}
	cabs := make([]pool.Cab, 8)
	for i := range cabs {
		cabs[i] = pool.Cab{ID: i, Location: i % n, Seats: 4}
	}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: orders, Cabs: cabs}
	cfg := baseConfig(2, []int{1000})

	res, err := pool.Dynapool(context.Background(), cfg, in, 100, nil)
	require.NoError(t, err)
	for i := 1; i < len(res.Pools); i++ {
		assert.LessOrEqual(t, res.Pools[i-1].Cost, res.Pools[i].Cost)
	}
}

// Invariant 4 & 5: pickup-sets are pairwise disjoint and each cab appears
// in at most one emitted branch.
func TestInvariantDisjointAssignments(t *testing.T) {
	n := 10
	d, stops := line(n, 3, 90)
	orders := make([]pool.Order, 8)
	for i := range orders {
		from := i % n
		to := (from + 3) % n
		orders[i] = pool.Order{ID: i, FromStand: from, ToStand: to, MaxWait: 20, MaxLoss: 80, Distance: 9}
	}
	cabs := make([]pool.Cab, 8)
	for i := range cabs {
		cabs[i] = pool.Cab{ID: i, Location: i % n, Seats: 4}
	}
	in := pool.Inputs{Dist: pool.NewDistanceMatrix(d, n), Stops: stops, Orders: orders, Cabs: cabs}
	cfg := baseConfig(2, []int{1000})

	res, err := pool.Dynapool(context.Background(), cfg, in, 100, nil)
	require.NoError(t, err)

	seenOrders := map[int]bool{}
	seenCabs := map[int]bool{}
	for _, b := range res.Pools {
		for _, id := range b.OrdIDs {
			assert.False(t, seenOrders[id], "order %d reused across pools", id)
			seenOrders[id] = true
		}
		assert.False(t, seenCabs[b.Cab], "cab %d reused across pools", b.Cab)
		seenCabs[b.Cab] = true
	}
}
