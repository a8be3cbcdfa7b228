package pool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boguszjelinski/kern/internal/fixture"
	"github.com/boguszjelinski/kern/pool"
)

// S5: overflow graceful. A small MaxThreadMem on a workload large enough
// to blow past it at a mid level must still produce only valid pools — no
// crash, no invariant violation, just fewer branches than an unbounded run.
func TestScenarioS5OverflowGraceful(t *testing.T) {
	in := fixture.Random(7, 40, 60, 40)
	cfg := pool.Config{
		MaxInPool:          3,
		NumbThreads:        4,
		MaxThreadMem:       25, // deliberately tiny to force an overflow
		PoolSizeThresholds: []int{1000, 1000},
		MaxAngle:           120,
		MaxAngleDist:       3,
		StopWait:           1,
		GoalFunc:           pool.GoalCost,
	}

	res, err := pool.Dynapool(context.Background(), cfg, in, 1000, nil)
	require.NoError(t, err)

	for _, b := range res.Pools {
		assert.LessOrEqual(t, len(b.OrdIDs), 2*cfg.MaxInPool)
		assert.Equal(t, len(b.OrdIDs), len(b.OrdActs))
	}
}

// S6: the full historical workload from the synthetic test harness,
// replayed twice, must accept the same pools (same order IDs) in the same
// order.
func TestScenarioS6HistoricalWorkloadReplay(t *testing.T) {
	cfg, in1 := fixture.Workload()
	cfg.NumbThreads = 4 // keep the unit test fast; determinism does not depend on the exact count

	res1, err := pool.Dynapool(context.Background(), cfg, in1, 1000, nil)
	require.NoError(t, err)

	_, in2 := fixture.Workload()
	res2, err := pool.Dynapool(context.Background(), cfg, in2, 1000, nil)
	require.NoError(t, err)

	require.Equal(t, len(res1.Pools), len(res2.Pools))
	for i := range res1.Pools {
		assert.Equal(t, res1.Pools[i].OrdIDs, res2.Pools[i].OrdIDs)
	}
}
