package lcm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boguszjelinski/kern/lcm"
	"github.com/boguszjelinski/kern/pool"
)

func gridDist(n int) pool.DistanceMatrix {
	d := make([]int16, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				diff := i - j
				if diff < 0 {
					diff = -diff
				}
				d[i*n+j] = int16(diff)
			}
		}
	}
	return pool.NewDistanceMatrix(d, n)
}

func TestFastLCMAssignsNearestInRow(t *testing.T) {
	dist := gridDist(5)
	orders := []pool.Order{{ID: 0, FromStand: 4, MaxWait: 100}}
	cabs := []pool.Cab{
		{ID: 0, Location: 0},
		{ID: 1, Location: 3},
	}
	out := lcm.FastLCM(dist, orders, cabs, 1)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].CabIndex, "cab at stop 3 is closer to order at stop 4 than cab at stop 0")
}

func TestFastLCMExhaustiveDropsOrdersBeyondMaxWait(t *testing.T) {
	dist := gridDist(10)
	orders := []pool.Order{
		{ID: 0, FromStand: 9, MaxWait: 1}, // only reachable at cost 1, but no cab is that close
		{ID: 1, FromStand: 0, MaxWait: 10},
	}
	cabs := []pool.Cab{{ID: 0, Location: 0}}
	out := lcm.FastLCMExhaustive(dist, orders, cabs, 10)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].OrderIndex)
}

func TestFastLCMExhaustiveRespectsHowMany(t *testing.T) {
	dist := gridDist(10)
	orders := []pool.Order{
		{ID: 0, FromStand: 1, MaxWait: 100},
		{ID: 1, FromStand: 2, MaxWait: 100},
		{ID: 2, FromStand: 3, MaxWait: 100},
	}
	cabs := []pool.Cab{{ID: 0, Location: 0}, {ID: 1, Location: 5}, {ID: 2, Location: 9}}
	out := lcm.FastLCMExhaustive(dist, orders, cabs, 2)
	assert.Len(t, out, 2)
}

func TestFastLCMSkipsAllocatedOrdersAndCabs(t *testing.T) {
	dist := gridDist(5)
	orders := []pool.Order{
		{ID: -1, FromStand: 4, MaxWait: 100}, // already allocated, must be skipped
		{ID: 1, FromStand: 4, MaxWait: 100},
	}
	cabs := []pool.Cab{
		{ID: -1, Location: 4}, // already allocated, closest but must be skipped
		{ID: 0, Location: 0},
	}
	out := lcm.FastLCM(dist, orders, cabs, 2)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].OrderIndex)
	assert.Equal(t, 1, out[0].CabIndex)
}

func TestFastLCMExhaustiveSkipsAllocatedOrdersAndCabs(t *testing.T) {
	dist := gridDist(5)
	orders := []pool.Order{
		{ID: -1, FromStand: 0, MaxWait: 100}, // already allocated
		{ID: 1, FromStand: 4, MaxWait: 100},
	}
	cabs := []pool.Cab{
		{ID: -1, Location: 0}, // already allocated
		{ID: 0, Location: 4},
	}
	out := lcm.FastLCMExhaustive(dist, orders, cabs, 10)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].OrderIndex)
	assert.Equal(t, 1, out[0].CabIndex)
}
