// shooter is a terminal meteor shooter.
//
// Usage:
//
//	shooter play               - Play in this terminal
//	shooter serve              - Start SSH server for remote play
//	shooter scores             - Show high scores
//	shooter levels             - Show the difficulty table
//	shooter config show        - Print the effective configuration
//	shooter config validate    - Check a configuration file
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Scores database (default: ~/.shooter/scores.db)
//	--config <path>       - Configuration YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Meteor Shooter - dodge and blast meteors in your terminal",
	Long: `Meteor Shooter is a terminal arcade game. Fly your ship, shoot the
meteors raining down and survive as long as you can. The longer you last,
the faster and denser the meteor field gets.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show how difficulty scales with score
  config   - Show or validate configuration

Examples:
  shooter play
  shooter play --difficulty hard --seed 42
  shooter serve --ssh :2222
  shooter config validate ./my-shooter.yaml`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from --config and --difficulty,
// validates it and installs it for new games.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.IsValidPreset(preset) {
			return cfg, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyShooterPreset(&cfg, preset)
	}

	if err := shooter.SetConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot run without one.
func mustLoadConfig() config.ShooterConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newFileLogger returns a logger writing to --log-file, or a discarding
// logger when none is set. The terminal itself belongs to the game.
func newFileLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, f, nil
}
