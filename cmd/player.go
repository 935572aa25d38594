package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/report"
	"github.com/pable/go-fieldday-stats/internal/storage"
)

// playerCmd shows one player's stored records across the full history and
// every tallied season.
var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show one player's records across seasons",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.GetPlayerStats(name)
	if err != nil {
		return fmt.Errorf("get player stats: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No stored stats for %q. Run 'fieldstats tally' first.\n", name)
		return nil
	}
	report.PrintPlayerSeasons(os.Stdout, name, rows)
	return nil
}
