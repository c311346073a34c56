package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagRealtime  bool
	flagPrint     bool
	flagPrintW    int
	flagPrintH    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal UI",
	Long: `Run the simulation headless with a scripted flap pattern.

The run stops when every bird is gone or after --ticks ticks. Session
events are logged to stderr, a summary is printed to stdout.

Examples:
  flappy sim
  flappy sim --seed 7 --flap-every 13 --ticks 900
  flappy sim --realtime --log-level debug
  flappy sim --print --width 50 --height 40`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 13, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate")
	simCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagPrintW, "width", 50, "Width of the printed frame")
	simCmd.Flags().IntVar(&flagPrintH, "height", 40, "Height of the printed frame")
}

// scriptedInput flaps on a fixed period and requests quit once the tick
// limit is reached.
type scriptedInput struct {
	every int
	limit int
	tick  int
}

func (s *scriptedInput) Drain() core.InputFrame {
	frame := core.NewInputFrame()
	if s.tick >= s.limit {
		frame.Set(core.ActionQuit)
		return frame
	}
	if s.every > 0 && s.tick%s.every == 0 {
		frame.Set(core.ActionFlap)
	}
	s.tick++
	return frame
}

// logRenderer reports score and bird count changes instead of drawing.
type logRenderer struct {
	logger *log.Logger
	score  int
	birds  int
	last   flappy.Scene
}

func (r *logRenderer) Render(sc flappy.Scene) {
	if sc.Score != r.score {
		r.logger.Info("scored", "tick", sc.Tick, "score", sc.Score)
	}
	if len(sc.Birds) != r.birds {
		r.logger.Info("birds left", "tick", sc.Tick, "birds", len(sc.Birds))
	}
	r.score = sc.Score
	r.birds = len(sc.Birds)
	r.last = sc
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 || flagFlapEvery < 0 {
		return fmt.Errorf("--ticks and --flap-every must not be negative")
	}

	cfg, atlas, err := loadGame()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "flap_every", flagFlapEvery)

	session := flappy.NewSession(cfg, atlas, rand.New(rand.NewSource(seed)), flappy.WithLogger(logger))
	renderer := &logRenderer{logger: logger, birds: len(cfg.Birds), last: session.Scene()}
	input := &scriptedInput{every: flagFlapEvery, limit: flagTicks}

	var pacer flappy.Pacer = flappy.NoWait
	if flagRealtime {
		tp := flappy.NewTickerPacer(tickRate(cfg))
		defer tp.Stop()
		pacer = tp
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := flappy.Run(ctx, session, input, renderer, pacer); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	state := session.State()
	logger.Info("simulation finished", "ticks", state.Tick, "score", state.Score, "ended", state.GameOver)

	out := cmd.OutOrStdout()
	if flagPrint {
		screen := core.NewScreen(flagPrintW, flagPrintH)
		flappy.NewSceneRenderer(atlas, cfg.Screen.Width, cfg.Screen.Height).Draw(screen, renderer.last)
		fmt.Fprintln(out, screen.String())
	}
	fmt.Fprintf(out, "seed=%d ticks=%d score=%d ended=%v\n", seed, state.Tick, state.Score, state.GameOver)
	return nil
}
