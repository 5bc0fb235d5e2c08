package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagTicks  int
	flagSeed   int64
	flagFrame  bool
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless game driven by an autopilot",
	Long: `Run a complete game without a terminal UI. An autopilot steers the
paddle; time advances one tick per step at the configured rate, so the
respawn delay lasts as many ticks as it would in real time.

The same seed and variant always produce the same run.

Examples:
  breakout sim
  breakout sim dense --seed 42
  breakout sim --ticks 5000 --frame --width 100 --height 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimCmd,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Maximum ticks to simulate (0 = from config)")
	simCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Autopilot RNG seed (0 = from config, then time)")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height in cells")
}

// simOptions configures one headless run.
type simOptions struct {
	Params   breakout.Params
	TickRate int
	MaxTicks int
	Seed     int64
}

// simResult is the outcome of a headless run.
type simResult struct {
	Game     *breakout.Game
	Snapshot breakout.Snapshot
	Steps    int
	Elapsed  time.Duration // simulated, not wall-clock
}

// runSim plays one game to completion or until MaxTicks.
func runSim(opts simOptions) simResult {
	clock := core.NewTickClock(opts.TickRate)

	game := breakout.NewWithParams(opts.Params)
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: clock.Rate,
		Clock:    clock,
	})

	pilot := breakout.NewAutopilot(game.Session(), opts.Seed, breakout.DefaultAutopilotSpeed, breakout.DefaultAutopilotSpread)
	in := core.NewInputFrame()

	steps := 0
	for steps < opts.MaxTicks && !game.Session().GameOver {
		clock.Tick()
		game.SetPointer(pilot.Aim(game.Session()))
		game.Step(in)
		steps++
	}

	return simResult{
		Game:     game,
		Snapshot: game.Snapshot(),
		Steps:    steps,
		Elapsed:  time.Duration(clock.NowMillis()) * time.Millisecond,
	}
}

func runSimCmd(_ *cobra.Command, args []string) {
	h := mustSetupHost(os.Stderr)
	defer h.Close()

	variant := h.cfg.Variant
	if len(args) == 1 {
		variant = args[0]
	}
	params, ok := breakout.Variant(variant)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q (run 'breakout variants')\n", variant)
		os.Exit(1)
	}

	maxTicks := h.cfg.Sim.MaxTicks
	if flagTicks > 0 {
		maxTicks = flagTicks
	}
	seed := h.cfg.Sim.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h.logger.Info("sim start", "variant", params.Name, "seed", seed, "max_ticks", maxTicks)

	res := runSim(simOptions{
		Params:   params,
		TickRate: h.cfg.TickRate,
		MaxTicks: maxTicks,
		Seed:     seed,
	})

	printSimResult(os.Stdout, params, seed, res)

	if flagFrame {
		screen := core.NewScreen(flagWidth, flagHeight)
		res.Game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
}

func printSimResult(w io.Writer, p breakout.Params, seed int64, res simResult) {
	snap := res.Snapshot
	outcome := snap.Outcome
	if !snap.GameOver {
		outcome = "unfinished"
	}

	fmt.Fprintf(w, "variant:  %s\n", p.Name)
	fmt.Fprintf(w, "seed:     %d\n", seed)
	fmt.Fprintf(w, "outcome:  %s\n", outcome)
	fmt.Fprintf(w, "ticks:    %d (%s simulated)\n", snap.Tick, res.Elapsed)
	fmt.Fprintf(w, "lives:    %d/%d\n", snap.Lives, p.Lives)
	fmt.Fprintf(w, "bricks:   %d/%d destroyed\n", p.NumBricks()-snap.BricksRemaining, p.NumBricks())
	fmt.Fprintf(w, "score:    %d\n", res.Game.State().Score)
	fmt.Fprintf(w, "hash:     %016x\n", snap.Hash())
}
