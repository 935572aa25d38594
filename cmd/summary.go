package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/storage"
)

// summaryCmd displays a high-level overview of the store.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the day log",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalDays == 0 {
		fmt.Fprintln(os.Stdout, "No days recorded yet. Run 'fieldstats add' to enter one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Field Day Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Days recorded : %d\n", ov.TotalDays)
	fmt.Fprintf(os.Stdout, "  Date range    : %s → %s\n", ov.FirstDate, ov.LastDate)
	fmt.Fprintf(os.Stdout, "  Players seen  : %d\n", ov.PlayersSeen)

	if len(ov.SeasonCounts) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Tallied seasons ---\n\n")
		labels := make([]string, 0, len(ov.SeasonCounts))
		for label := range ov.SeasonCounts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(os.Stdout, "  %s : %d active players\n", label, ov.SeasonCounts[label])
		}
	}
	return nil
}
