package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boguszjelinski/kern/pool"
)

func TestParseGoalFuncKnownNames(t *testing.T) {
	cases := map[string]pool.GoalFunc{
		"":                            pool.GoalCost,
		"cost":                        pool.GoalCost,
		"cost_detour":                 pool.GoalCostDetour,
		"distance_without_passengers": pool.GoalDistanceWithoutPassengers,
	}
	for name, want := range cases {
		got, err := parseGoalFunc(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseGoalFuncRejectsUnknownName(t *testing.T) {
	_, err := parseGoalFunc("bogus")
	assert.Error(t, err)
}
