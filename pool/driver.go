package pool

import (
	"context"
	"time"

	"github.com/boguszjelinski/kern/logx"
)

// findPool runs one full search for pools of exactly inPool passengers: it
// dives the tree down to the leaves and back up to level 0, then runs
// dedup & assign on the level-0 result.
func (s *solveContext) findPool(ctx context.Context, inPool, numbThreads, retSize int) []Branch {
	if inPool > s.cfg.MaxInPool {
		return nil
	}
	s.levels = make(map[int][]Branch)
	s.dive(ctx, 0, inPool, numbThreads)
	accepted := s.rmDuplicatesAndFindCab(s.levels[0], inPool, retSize)
	return accepted
}

// Dynapool is the external entry point of the pool-finder core. It walks
// the configured pool sizes from largest (Config.MaxInPool) down to 2,
// skipping any size whose threshold is not met by the current number of
// active orders, and accumulates every pool accepted along the way.
//
// Orders and cabs consumed by one pool size are hidden (via the id==-1
// sentinel) from every subsequent, smaller pool size, so larger pools are
// always given first claim on the supply — exactly the "biggest first"
// dispatch policy described in §1.
//
// events, if non-nil, receives progress notifications as the solve
// proceeds and is closed once Dynapool returns, win or lose; a caller that
// does not want progress events should pass nil.
func Dynapool(ctx context.Context, cfg Config, in Inputs, retSize int, events chan<- Event) (Result, error) {
	if events != nil {
		defer close(events)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	s := newSolveContext(cfg, in, events, logx.Warnf)
	if s.activeOrderCount() > cfg.MaxThreadMem*cfg.NumbThreads {
		return Result{}, ErrAllocationFailed
	}

	result := Result{TimePerPool: make([]float64, cfg.MaxInPool-1)}

	for i := 0; i < cfg.MaxInPool-1; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		poolSize := cfg.MaxInPool - i
		remaining := retSize - len(result.Pools)
		if retSize > 0 && remaining <= 0 {
			break
		}
		if s.activeOrderCount() >= cfg.PoolSizeThresholds[i] {
			continue
		}

		start := time.Now()
		found := s.findPool(ctx, poolSize, cfg.NumbThreads, remaining)
		elapsed := time.Since(start)
		result.TimePerPool[i] = elapsed.Seconds()
		result.Pools = append(result.Pools, found...)
		s.emit(PoolSizeDoneEvent{PoolSize: poolSize, Found: len(found), Elapsed: elapsed})
	}

	s.emit(DoneEvent{TotalFound: len(result.Pools)})
	return result, nil
}
