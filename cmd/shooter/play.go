package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/audio"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const gameID = "shooter"

var (
	flagMute   bool
	flagVolume float64
	flagHoldMs int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  R/Enter      - Play again (after game over)
  Ctrl+S       - Save a screenshot
  Q/Esc        - Quit

Terminals do not report key releases, so a direction stays held for
--hold-ms after its last key repeat.

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "How long a direction key stays held without repeats")
}

func runPlay(_ *cobra.Command, _ []string) {
	mustLoadConfig()

	logger, logCloser, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores will not be saved", "error", err)
		store = nil
	}

	var sink audio.Sink = audio.Silent{}
	if !flagMute {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			defer sm.Cleanup()
			sink = sm
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Sound:      sink,
		Logger:     logger,
		HoldWindow: time.Duration(flagHoldMs) * time.Millisecond,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
