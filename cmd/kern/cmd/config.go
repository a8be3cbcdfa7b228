package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/boguszjelinski/kern/pool"
)

// solverSettings mirrors pool.Config for viper/mapstructure binding; the
// config file's "solver" section, over the defaults set in setDefaults,
// populates this shape before it is translated into the real pool.Config
// the core expects. No cobra flag is bound to these keys.
type solverSettings struct {
	MaxInPool          int    `mapstructure:"max_in_pool"`
	NumbThreads        int    `mapstructure:"numb_threads"`
	MaxThreadMem       int    `mapstructure:"max_thread_mem"`
	PoolSizeThresholds []int  `mapstructure:"pool_size_thresholds"`
	MaxAngle           int    `mapstructure:"max_angle"`
	MaxAngleDist       int    `mapstructure:"max_angle_dist"`
	StopWait           int    `mapstructure:"stop_wait"`
	GoalFunc           string `mapstructure:"goal_func"`
}

func loadSolverConfig() (pool.Config, error) {
	var s solverSettings
	if err := viper.UnmarshalKey("solver", &s); err != nil {
		return pool.Config{}, fmt.Errorf("kern: parsing solver config: %w", err)
	}

	goal, err := parseGoalFunc(s.GoalFunc)
	if err != nil {
		return pool.Config{}, err
	}

	return pool.Config{
		MaxInPool:          s.MaxInPool,
		NumbThreads:        s.NumbThreads,
		MaxThreadMem:       s.MaxThreadMem,
		PoolSizeThresholds: s.PoolSizeThresholds,
		MaxAngle:           s.MaxAngle,
		MaxAngleDist:       s.MaxAngleDist,
		StopWait:           s.StopWait,
		GoalFunc:           goal,
	}, nil
}

func parseGoalFunc(name string) (pool.GoalFunc, error) {
	switch name {
	case "", "cost":
		return pool.GoalCost, nil
	case "cost_detour":
		return pool.GoalCostDetour, nil
	case "distance_without_passengers":
		return pool.GoalDistanceWithoutPassengers, nil
	default:
		return 0, fmt.Errorf("kern: unknown solver.goal_func %q", name)
	}
}
