// breakout is a single-screen brick breaker for the terminal.
//
// Usage:
//
//	breakout play [variant]    - Play (no variant opens the picker)
//	breakout sim [variant]     - Run a headless autopilot game and print the result
//	breakout variants          - List built-in variants
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--config <path>       - Host config YAML
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write gameplay logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - knock out every brick before your lives run out",
	Long: `Breakout is a single-screen brick breaker played in the terminal.
Steer the paddle with the mouse or the arrow keys and keep the ball in play.

Available commands:
  play      - Play interactively
  sim       - Run a headless game driven by an autopilot
  variants  - Show built-in variants

Examples:
  breakout play
  breakout play dense
  breakout sim --ticks 20000 --seed 7 --frame
  breakout variants`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to host config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(variantsCmd)
}

// host bundles what every command needs after startup.
type host struct {
	cfg    config.HostConfig
	logger *log.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (h *host) Close() {
	if h.closer != nil {
		_ = h.closer.Close()
	}
}

// setupHost loads config, applies flag overrides and wires logging into the
// game package. defaultLog is used when no log file is configured.
func setupHost(defaultLog io.Writer) (*host, error) {
	cfg, err := config.LoadHost(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	h := &host{cfg: cfg}

	w := defaultLog
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(config.ExpandHome(cfg.Log.File))
		if err != nil {
			return nil, err
		}
		w = f
		h.closer = f
	}

	h.logger, err = logging.New(w, cfg.Log.Level)
	if err != nil {
		h.Close()
		return nil, err
	}

	breakout.SetLogger(h.logger)
	breakout.SetKeyStep(cfg.Controls.KeyStep)

	h.logger.Debug("host configured",
		"variant", cfg.Variant,
		"tick_rate", cfg.TickRate,
		"config", flagConfig,
	)
	return h, nil
}

// mustSetupHost is setupHost for command Run functions.
func mustSetupHost(defaultLog io.Writer) *host {
	h, err := setupHost(defaultLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return h
}

// gameIDForVariant maps a variant name or game ID to a registered game ID.
func gameIDForVariant(name string) (string, error) {
	if registry.Exists(name) {
		return name, nil
	}
	if p, ok := breakout.Variant(name); ok {
		if id := breakout.NewWithParams(p).ID(); registry.Exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q (run 'breakout variants')", name)
}
