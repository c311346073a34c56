// flappy is a Flappy Bird game for the terminal.
//
// Usage:
//
//	flappy                   - Play in the terminal
//	flappy sim               - Run the simulation headless
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a custom flappy.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Flap through the gaps between the pipes. Touching a pipe, the ground or
the top of the screen ends the run.

Controls:
  Space/W/Up - Flap
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Examples:
  flappy
  flappy --seed 42 --fps 60
  flappy --config ./my-flappy.yaml --log-file flappy.log --log-level debug
  flappy sim --ticks 600 --flap-every 13 --print
  flappy config > flappy.yaml`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
