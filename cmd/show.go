package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/report"
	"github.com/pable/go-fieldday-stats/internal/storage"
)

var showSeason string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored stats without re-aggregating",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSeason, "season", "", "season label, e.g. 2024 (default: full history)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.GetStats(showSeason)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No stored stats. Run 'fieldstats tally' first.")
		return nil
	}

	if showSeason == "" {
		fmt.Fprintln(os.Stdout, "\nAll seasons")
	} else {
		fmt.Fprintf(os.Stdout, "\n%s season\n", showSeason)
	}
	fmt.Fprintln(os.Stdout)
	report.PrintStatsTable(os.Stdout, rows)

	if showSeason == "" {
		teammates, err := db.GetTeammates()
		if err != nil {
			return fmt.Errorf("get teammates: %w", err)
		}
		if len(teammates) > 0 {
			fmt.Fprintln(os.Stdout, "\nTeammate frequency (fraction of days shared):")
			report.PrintTeammateTable(os.Stdout, teammates)
		}
	}
	return nil
}
