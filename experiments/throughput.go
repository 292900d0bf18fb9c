package experiments

import (
	"jungle/experiments/metrics"
)

var parallelGoroutines = []int{1, 2, 4, 8}

// RunParallelizationExperiment measures search time per move as root moves
// are spread over more goroutines. Each matchup uses the same config for both
// sides for similar game lengths.
func RunParallelizationExperiment(s Settings) (string, error) {
	configs := make([]metrics.AgentConfig, 0, len(parallelGoroutines))
	for i, n := range parallelGoroutines {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Depth: s.Depth, Goroutines: n})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("parallelization", s, configs, matchUps)
}
