package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"jungle/engine"
	"jungle/experiments"
	"jungle/game"
	"jungle/gamemaster"
	"jungle/meta"
	"jungle/searcher"
	"jungle/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	experiment := flag.String("experiment", "selfplay", "One of play, selfplay, depth, random, parallel")
	depth := flag.Int("depth", -1, "Search depth, overrides the config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := loadConfig(*configPath, *depth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := config.Level()
	zerolog.SetGlobalLevel(level)

	if err := run(*experiment, config); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *experiment)
	}
}

func loadConfig(path string, depth int) (meta.Config, error) {
	config := meta.Default()
	if path != "" {
		var err error
		if config, err = meta.Load(path); err != nil {
			return meta.Config{}, err
		}
	}
	if depth >= 0 {
		config.Depth = depth
	}
	return config, config.Validate()
}

func run(experiment string, config meta.Config) error {
	settings := experiments.SettingsFrom(config)
	switch experiment {
	case "play":
		return runSession(config, os.Stdin, os.Stdout)
	case "selfplay":
		runSelfPlay(config)
		return nil
	case "depth":
		_, err := experiments.RunDepthExperiment(settings)
		return err
	case "random":
		_, err := experiments.RunRandomBaselineExperiment(settings)
		return err
	case "parallel":
		_, err := experiments.RunParallelizationExperiment(settings)
		return err
	default:
		return fmt.Errorf("unknown experiment %q", experiment)
	}
}

// runSelfPlay plays one game between two identically configured searchers.
func runSelfPlay(config meta.Config) {
	newAgent := func(seed uint64) agent.Agent {
		return agent.NewEvaluationAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithSeed(seed),
		))
	}
	var redSeed, blackSeed uint64
	if config.Seed != 0 {
		redSeed, blackSeed = config.Seed, config.Seed+1
	}

	e := engine.LocalEngine(newAgent(redSeed), newAgent(blackSeed), engine.WithMaxTurns(config.MaxTurns))
	outcome, gameMetric, _ := e.Run()

	fmt.Println(e.State().Board.String())
	log.Info().Msgf("game over after %d moves in %v: %v", gameMetric.TotalMoves, gameMetric.Duration, outcome)
}

// runSession plays the configured human side against the engine, reading
// moves as "fromRow fromCol toRow toCol" lines from in.
func runSession(config meta.Config, in io.Reader, out io.Writer) error {
	human, err := config.Human()
	if err != nil {
		return err
	}

	scheduler := &gamemaster.QueueScheduler{}
	s := gamemaster.NewSession(
		gamemaster.WithScheduler(scheduler),
		gamemaster.WithDepth(config.Depth),
		gamemaster.WithSearcher(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithSeed(config.Seed),
		)),
	)
	if _, _, err := s.NewGame(human); err != nil {
		return err
	}
	scheduler.RunPending()
	if mv, ok := s.LastAiMove(); ok {
		fmt.Fprintf(out, "engine played %v\n", mv)
	}

	scanner := bufio.NewScanner(in)
	for !s.IsTerminal() {
		fmt.Fprintf(out, "%s\n%s to move: ", s.State().Board.String(), s.CurrentTurn())
		if !scanner.Scan() {
			return scanner.Err()
		}

		var fr, fc, tr, tc int
		if _, err := fmt.Sscan(scanner.Text(), &fr, &fc, &tr, &tc); err != nil {
			fmt.Fprintln(out, "expected four numbers: fromRow fromCol toRow toCol")
			continue
		}
		accepted, _ := s.AttemptMove(game.Square{Row: fr, Col: fc}, game.Square{Row: tr, Col: tc})
		if !accepted {
			fmt.Fprintln(out, "illegal move")
			continue
		}

		scheduler.RunPending()
		if mv, ok := s.LastAiMove(); ok {
			fmt.Fprintf(out, "engine played %v\n", mv)
		}
	}

	fmt.Fprintln(out, s.Outcome())
	return nil
}
