package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

var (
	flagSimTicks   int
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with random input",
	Long: `Drive the engine without a terminal: every loop iteration is one tick,
and buttons come from a generator seeded with --seed. The same seed always
produces the same run.

Prints one line per finished game, then the final state and frame.

Examples:
  blockfall simulate
  blockfall simulate --ticks 20000 --seed 42
  blockfall simulate --ticks 500 -v`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 2000, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every step at debug level")
}

// randomButtons is an InputSource that presses a random button on a share
// of steps and releases in between, so menu edges are seen.
type randomButtons struct {
	rng  engine.RNG
	last core.Button
}

var simButtons = [...]core.Button{
	core.ButtonLeft, core.ButtonRight, core.ButtonRotate, core.ButtonDrop, core.ButtonDrop,
}

func (r *randomButtons) CurrentButtons() core.Button {
	if r.last != core.ButtonNone || r.rng.Intn(3) == 0 {
		r.last = core.ButtonNone
		return r.last
	}
	r.last = simButtons[r.rng.Intn(uint32(len(simButtons)))]
	return r.last
}

// simulation is the result of a headless run.
type simulation struct {
	Games    []engine.GameOver
	Snapshot engine.Snapshot
	Frame    string
}

// simulate runs ticks steps from seed, reporting each finished game to onOver.
func simulate(seed uint64, ticks int, onOver func(tick uint64, over engine.GameOver)) simulation {
	e := engine.New(seed)
	m := core.NewMatrix(engine.Bordered)
	loop := &engine.Loop{
		Engine: e,
		Ticks:  core.EveryPoll{},
		Input:  &randomButtons{rng: engine.NewRNG(seed)},
		Out:    m,
	}

	var sim simulation
	for i := 0; i < ticks; i++ {
		res, _ := loop.Poll()
		if res.Over != nil {
			sim.Games = append(sim.Games, *res.Over)
			if onOver != nil {
				onOver(e.Ticks(), *res.Over)
			}
		}
	}
	sim.Snapshot = e.Snapshot()
	sim.Frame = m.String()
	return sim
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	seed := appConfig.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logCfg := appConfig.Log
	if flagSimVerbose {
		logCfg.Level = "debug"
	}
	logger := newLogger(os.Stderr, "blockfall", logCfg)
	logger.Info("simulating", "ticks", flagSimTicks, "seed", seed)

	start := time.Now()
	sim := simulate(seed, flagSimTicks, func(tick uint64, over engine.GameOver) {
		logger.Debug("game over", "tick", tick, "score", over.Score, "level", over.Level, "rows", over.Rows, "rank", over.Rank)
	})
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond), "games", len(sim.Games))

	printSimulation(cmd.OutOrStdout(), seed, sim)
	return nil
}

func printSimulation(w io.Writer, seed uint64, sim simulation) {
	for i, g := range sim.Games {
		fmt.Fprintf(w, "game %d: score %d level %d rows %d rank %d\n", i+1, g.Score, g.Level, g.Rows, g.Rank)
	}

	s := sim.Snapshot
	fmt.Fprintf(w, "seed %d tick %d screen %s\n", seed, s.Tick, s.Screen)
	fmt.Fprintf(w, "score %d level %d rows %d next %s\n", s.Score, s.Level, s.Rows, s.Next.Type)
	fmt.Fprintf(w, "high scores %v\n", s.HighScores)
	fmt.Fprintln(w)
	fmt.Fprintln(w, sim.Frame)
}
