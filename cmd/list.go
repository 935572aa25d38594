package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/report"
	"github.com/pable/go-fieldday-stats/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recorded field days",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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
	report.PrintDayList(os.Stdout, rows)
	return nil
}
