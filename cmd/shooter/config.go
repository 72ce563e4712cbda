package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use after the lookup chain
(--config, ~/.shooter/configs/shooter.yaml, ./configs/shooter.yaml,
built-in defaults) and the --difficulty preset are applied.

Use --defaults to print the built-in defaults as a starting point for
your own file.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Long: `Load and validate a configuration. With no path the lookup chain is
used. Exits non-zero and prints the rule that failed when invalid.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigValidate,
}

var flagShowDefaults bool

func init() {
	configShowCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := mustLoadConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		flagConfig = args[0]
	}

	if _, err := loadConfig(); err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "invalid: %s (%s)\n", verr.Message, verr.Code)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	source := flagConfig
	if source == "" {
		source = "lookup chain"
	}
	fmt.Printf("ok: %s\n", source)
}
