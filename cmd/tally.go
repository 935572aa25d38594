package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/aggregator"
	"github.com/pable/go-fieldday-stats/internal/model"
	"github.com/pable/go-fieldday-stats/internal/parser"
	"github.com/pable/go-fieldday-stats/internal/report"
	"github.com/pable/go-fieldday-stats/internal/roster"
	"github.com/pable/go-fieldday-stats/internal/season"
	"github.com/pable/go-fieldday-stats/internal/storage"
)

var tallyAll bool

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Aggregate the day log and persist the derived stats",
	Long: `Run the full-history aggregation pass over the day log, then one
independent pass per configured season, persisting and printing the derived
stat tables. Malformed day rows are skipped with a warning.`,
	Args: cobra.NoArgs,
	RunE: runTally,
}

func init() {
	tallyCmd.Flags().BoolVar(&tallyAll, "all", false, "include roster players with no appearances in the output")
}

func runTally(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.ListDays()
	if err != nil {
		return fmt.Errorf("list days: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No days recorded yet. Run 'fieldstats add' to enter one.")
		return nil
	}

	// Full-history pass.
	statsRows, teammateRows, parsed, err := runPass(rows, cfg.Roster.Names, "")
	if err != nil {
		return err
	}
	if err := db.ReplaceStats("", statsRows); err != nil {
		return fmt.Errorf("store stats: %w", err)
	}
	if err := db.ReplaceTeammates(teammateRows); err != nil {
		return fmt.Errorf("store teammates: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\nAll seasons (%d field days)\n\n", parsed)
	report.PrintStatsTable(os.Stdout, statsRows)
	fmt.Fprintln(os.Stdout, "\nTeammate frequency (fraction of days shared):")
	report.PrintTeammateTable(os.Stdout, teammateRows)

	// One fully independent pass per configured season: fresh registry,
	// zeroed counters, only that season's rows.
	for _, key := range cfg.SeasonKeys() {
		label := season.Label(key)
		part, warns := season.Partition(rows, key)
		for _, w := range warns {
			fmt.Fprintf(os.Stderr, "warning: skipping %s\n", w)
		}
		if len(part) == 0 {
			continue
		}
		seasonRows, _, n, err := runPass(part, cfg.Roster.Names, label)
		if err != nil {
			return fmt.Errorf("season %s: %w", label, err)
		}
		if err := db.ReplaceStats(label, seasonRows); err != nil {
			return fmt.Errorf("store %s stats: %w", label, err)
		}
		fmt.Fprintf(os.Stdout, "\n%s season (%d field days)\n\n", label, n)
		report.PrintStatsTable(os.Stdout, seasonRows)
	}
	return nil
}

// runPass parses rows through a fresh registry, aggregates, and builds the
// derived output rows. Returns the stats rows, teammate rows, and the number
// of days aggregated.
func runPass(rows []model.DayRow, known []string, label string) ([]model.PlayerStatsRow, []model.TeammateRow, int, error) {
	reg := roster.NewRegistry(known)
	days, warns := parser.ParseDays(rows, reg)
	for _, w := range warns {
		fmt.Fprintf(os.Stderr, "warning: skipping %s\n", w)
	}
	if err := aggregator.Aggregate(days); err != nil {
		return nil, nil, 0, fmt.Errorf("aggregate: %w", err)
	}
	statsRows := report.BuildStatsRows(label, reg.Players(), tallyAll)
	teammateRows := report.BuildTeammateRows(reg.Players())
	return statsRows, teammateRows, len(days), nil
}
