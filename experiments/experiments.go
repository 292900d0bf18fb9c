package experiments

import (
	"fmt"

	"jungle/engine"
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/meta"
	"jungle/searcher"
	"jungle/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Settings shared by every matchup of an experiment.
type Settings struct {
	Games     int // Per matchup
	MaxTurns  int
	Depth     int // Search depth where the experiment does not vary it
	Seed      uint64
	OutputDir string
}

func SettingsFrom(c meta.Config) Settings {
	return Settings{
		Games:     c.Games,
		MaxTurns:  c.MaxTurns,
		Depth:     c.Depth,
		Seed:      c.Seed,
		OutputDir: c.OutputDir,
	}
}

// RunDepthExperiment pairs deeper searchers against a one-ply baseline.
func RunDepthExperiment(s Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Goroutines: 1}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: 1, Goroutines: 1}, // Baseline equivalent
		{ID: 2, Depth: 2, Goroutines: 1},
		{ID: 3, Depth: 3, Goroutines: 1},
		{ID: 4, Depth: 4, Goroutines: 1},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", s, append(depthConfigs, baseline), matchUps)
}

// RunRandomBaselineExperiment pairs searchers of increasing depth against a
// uniformly random mover.
func RunRandomBaselineExperiment(s Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 0, Goroutines: 1},
		{ID: 2, Depth: 2, Goroutines: 1},
		{ID: 3, Depth: s.Depth, Goroutines: 1},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("random_baseline", s, append(configs, baseline), matchUps)
}

func runExperiment(name string, s Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Fail on a bad output path before playing any game
	writer, err := metrics.NewWriter(s.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %v and %v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.Games; i++ {
			// Alternate colours so neither agent always moves first
			red, black := matchup[0], matchup[1]
			if i%2 == 1 {
				red, black = black, red
			}

			count++
			outcome, gameMetric, moveMetrics := runGame(s, count, red, black)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     red.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d: %v", mi+1, len(matchUps), i+1, s.Games, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(s Settings, gameID int, red, black metrics.AgentConfig) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(
		createAgent(red, seedFor(s.Seed, gameID, 0)),
		createAgent(black, seedFor(s.Seed, gameID, 1)),
		engine.WithMaxTurns(s.MaxTurns),
	)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewEvaluationAgent(createMinimax(config, seed))
}

func createMinimax(config metrics.AgentConfig, seed uint64) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return searcher.NewMinimax(options...)
}

// seedFor derives a per-game, per-side seed; a zero base keeps everything clock seeded.
func seedFor(base uint64, gameID, side int) uint64 {
	if base == 0 {
		return 0
	}
	return base + uint64(gameID)*2 + uint64(side)
}
