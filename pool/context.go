package pool

import (
	"fmt"
)

// Config tunes one Dynapool call. It plays the role the original C source
// gave to compile-time constants (MAXINPOOL, NUMBTHREAD, MAXTHREADMEM,
// MAXANGLE, MAXANGLEDIST, STOP_WAIT): here they are per-call parameters
// instead of process-wide #defines, since a solveContext is scoped to one
// call and carries no process-wide mutable state.
type Config struct {
	// MaxInPool is the largest pool size the caller will ever request in
	// this process; it bounds the depth of the recursion (2*MaxInPool-2)
	// and the width of the per-level scratch buffers.
	MaxInPool int
	// NumbThreads is the worker-pool size used to fan out each tree
	// level across the order range.
	NumbThreads int
	// MaxThreadMem bounds how many branches a single worker may stash
	// into its private scratch buffer for one level before the excess is
	// dropped and a warning logged.
	MaxThreadMem int
	// PoolSizeThresholds[i] is the demand-count ceiling for pool size
	// MaxInPool-i: Dynapool skips that pool size when the number of
	// active orders is not smaller than the threshold. Must have
	// MaxInPool-1 entries.
	PoolSizeThresholds []int
	// MaxAngle (degrees) is the direction-change tolerance; bearing
	// differences at or above this are rejected for short legs.
	MaxAngle int
	// MaxAngleDist (minutes) is the leg length above which the bearing
	// check is skipped entirely.
	MaxAngleDist int
	// StopWait (minutes) is the fixed dwell time charged for every
	// non-zero-length leg transition.
	StopWait int
	// GoalFunc selects the sort key used ahead of dedup & assign.
	GoalFunc GoalFunc
}

// DefaultConfig mirrors the constants carried by the original source
// (dynapool.h): MAXINPOOL=4, NUMBTHREAD=9, MAXTHREADMEM=2500000, MAXANGLE=120,
// plus MaxAngleDist=1, StopWait=1 and pool-size thresholds {150,500,1300},
// the same values the synthetic harness and the CLI defaults use.
func DefaultConfig() Config {
	return Config{
		MaxInPool:          4,
		NumbThreads:        9,
		MaxThreadMem:       2_500_000,
		PoolSizeThresholds: []int{150, 500, 1300},
		MaxAngle:           120,
		MaxAngleDist:       1,
		StopWait:           1,
		GoalFunc:           GoalCost,
	}
}

// Validate rejects configurations that cannot possibly produce a sane
// result, so Dynapool can fail fast before any goroutine is spawned.
func (c Config) Validate() error {
	if c.MaxInPool < 2 {
		return fmt.Errorf("%w: MaxInPool must be >= 2, got %d", ErrInvalidConfig, c.MaxInPool)
	}
	if c.NumbThreads < 1 {
		return fmt.Errorf("%w: NumbThreads must be >= 1, got %d", ErrInvalidConfig, c.NumbThreads)
	}
	if c.MaxThreadMem < 1 {
		return fmt.Errorf("%w: MaxThreadMem must be >= 1, got %d", ErrInvalidConfig, c.MaxThreadMem)
	}
	if len(c.PoolSizeThresholds) != c.MaxInPool-1 {
		return fmt.Errorf("%w: PoolSizeThresholds must have MaxInPool-1=%d entries, got %d",
			ErrInvalidConfig, c.MaxInPool-1, len(c.PoolSizeThresholds))
	}
	if c.MaxAngle < 0 || c.MaxAngle > 180 {
		return fmt.Errorf("%w: MaxAngle must be in [0,180], got %d", ErrInvalidConfig, c.MaxAngle)
	}
	return nil
}

// Inputs are the caller-owned snapshot the solver reads from and partially
// mutates (Orders and Cabs are allocated in place via the id==-1 sentinel).
type Inputs struct {
	Dist   DistanceMatrix
	Stops  []Stop
	Orders []Order
	Cabs   []Cab
}

// Result is what Dynapool hands back: every pool accepted across all
// configured pool sizes, plus the wall time spent per pool size.
type Result struct {
	Pools       []Branch
	TimePerPool []float64 // seconds, indexed the same as Config.PoolSizeThresholds
}

// solveContext is the explicit, call-scoped state the original source kept
// in process-wide globals (distance, demand, supply, node, nodeSMP, ...).
// It is allocated fresh by Dynapool and discarded when the call returns; no
// part of it is ever shared across calls or across goroutines without the
// ownership rules documented on each field.
type solveContext struct {
	cfg Config

	dist   DistanceMatrix
	stops  []Stop
	orders []Order
	cabs   []Cab

	events chan<- Event // optional; nil if the caller did not ask for progress events

	// levels holds per-level branch buffers for the pool size currently
	// being solved: levels[lev] is only ever written by dive() for that
	// level and only ever read by dive() for lev-1 (level 0 by findPool),
	// one level at a time.
	levels map[int][]Branch

	warnf func(format string, args ...any)
}

func newSolveContext(cfg Config, in Inputs, events chan<- Event, warnf func(string, ...any)) *solveContext {
	return &solveContext{
		cfg:    cfg,
		dist:   in.Dist,
		stops:  in.Stops,
		orders: in.Orders,
		cabs:   in.Cabs,
		events: events,
		levels: make(map[int][]Branch),
		warnf:  warnf,
	}
}

func (s *solveContext) dist2(row, col int) int { return s.dist.At(row, col) }

func (s *solveContext) emit(ev Event) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- ev:
	default:
		// never let a slow consumer stall the solver; dropping a
		// progress event is harmless, unlike dropping a branch.
	}
}

// activeOrderCount is how many orders are still unallocated; it drives the
// per-pool-size threshold check in Dynapool (spec §4.6) and its up-front
// ErrAllocationFailed check. The harness's thread chunking (spec §4.4)
// uses the full order count instead.
func (s *solveContext) activeOrderCount() int {
	n := 0
	for _, o := range s.orders {
		if !o.allocated() {
			n++
		}
	}
	return n
}
