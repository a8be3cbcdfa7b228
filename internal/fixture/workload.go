// Package fixture builds synthetic pool.Inputs for tests and benchmarks:
// either the fixed workload shape used by the original synthetic test
// harness, or a randomized workload of a given size for stress/overflow
// testing.
package fixture

import (
	"math"
	"math/rand"

	"github.com/boguszjelinski/kern/pool"
	"github.com/boguszjelinski/kern/stopindex"
)

// Workload reproduces the synthetic harness's fixed-size scenario: 49
// stops on a 7x7 lat/lon grid (step 0.03 degrees), 60 orders, 1000 cabs,
// 12 worker threads, and pool-size thresholds {150,500,1300}. Every number
// here is taken directly from the harness, not invented.
func Workload() (pool.Config, pool.Inputs) {
	const (
		gridStep   = 0.03
		gridSize   = 7 // 7*7 = 49 stops
		ordersSize = 60
		cabsSize   = 1000
		numbThread = 12
	)

	stops := buildGrid(gridStep, gridSize)
	dist := buildDistanceMatrix(stops)

	orders := make([]pool.Order, ordersSize)
	for i := range orders {
		from := i % len(stops)
		to := from + 5
		if to >= len(stops) {
			to = from - 5
		}
		orders[i] = pool.Order{
			ID:        i,
			FromStand: from,
			ToStand:   to,
			MaxWait:   15,
			MaxLoss:   70,
			Distance:  dist.At(from, to),
		}
	}

	cabs := make([]pool.Cab, cabsSize)
	for i := range cabs {
		cabs[i] = pool.Cab{ID: i, Location: i % len(stops), Seats: 10}
	}

	cfg := pool.Config{
		MaxInPool:          4,
		NumbThreads:        numbThread,
		MaxThreadMem:       2_500_000,
		PoolSizeThresholds: []int{150, 500, 1300},
		MaxAngle:           120,
		MaxAngleDist:       1,
		StopWait:           1,
		GoalFunc:           pool.GoalCost,
	}
	return cfg, pool.Inputs{Dist: dist, Stops: stops, Orders: orders, Cabs: cabs}
}

// Random builds a randomized, reproducible workload of the given size
// using a seeded RNG, for determinism (scenario S6-style replay) and
// overflow testing (scenario S5: pick a large enough orderCount to exceed
// a small MaxThreadMem).
func Random(seed int64, stopCount, orderCount, cabCount int) pool.Inputs {
	rng := rand.New(rand.NewSource(seed))

	stops := buildGrid(0.01, int(math.Ceil(math.Sqrt(float64(stopCount)))))
	stops = stops[:stopCount]
	dist := buildDistanceMatrix(stops)

	orders := make([]pool.Order, orderCount)
	for i := range orders {
		from := rng.Intn(stopCount)
		to := rng.Intn(stopCount)
		for to == from {
			to = rng.Intn(stopCount)
		}
		orders[i] = pool.Order{
			ID:        i,
			FromStand: from,
			ToStand:   to,
			MaxWait:   10 + rng.Intn(20),
			MaxLoss:   40 + rng.Intn(60),
			Distance:  dist.At(from, to),
		}
	}

	cabs := make([]pool.Cab, cabCount)
	for i := range cabs {
		cabs[i] = pool.Cab{ID: i, Location: rng.Intn(stopCount), Seats: 4 + rng.Intn(6)}
	}

	return pool.Inputs{Dist: dist, Stops: stops, Orders: orders, Cabs: cabs}
}

func buildGrid(step float64, gridSize int) []pool.Stop {
	stops := make([]pool.Stop, 0, gridSize*gridSize)
	id := 0
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			stops = append(stops, pool.Stop{
				ID:      id,
				Bearing: 0,
				Lat:     49.0 + step*float64(i),
				Lon:     19.0 + step*float64(j),
			})
			id++
		}
	}
	return stops
}

func buildDistanceMatrix(stops []pool.Stop) pool.DistanceMatrix {
	n := len(stops)
	values := make([]int16, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m := stopindex.HaversineMinutes(stops[i].Lat, stops[i].Lon, stops[j].Lat, stops[j].Lon)
			values[i*n+j] = int16(m)
			values[j*n+i] = int16(m)
		}
	}
	return pool.NewDistanceMatrix(values, n)
}
