package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Long: `Print how spawn rate, meteor speed and weapon cooldown change with
each level for the active configuration (--config and --difficulty apply).`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	d := cfg.Difficulty

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Level\tFrom score\tSpawn every\tMeteor speed\tCooldown")
	for level := 1; level <= d.MaxLevel(); level++ {
		start, _ := d.LevelStart(level)
		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f rows/s (x%.2f)\t%v\n",
			level,
			start,
			d.SpawnInterval(level),
			cfg.Hazards.BaseSpeed*d.HazardSpeedMultiplier(level),
			d.HazardSpeedMultiplier(level),
			d.WeaponCooldown(level),
		)
	}
	w.Flush()

	fmt.Printf("\nLives: %d  Survival: +%d/s  Meteor destroyed: +%d\n",
		cfg.Player.Lives, cfg.Scoring.SurvivalPoints, cfg.Scoring.DestructionPoints)
}
