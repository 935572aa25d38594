package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-fieldday-stats/internal/model"
	"github.com/pable/go-fieldday-stats/internal/parser"
	"github.com/pable/go-fieldday-stats/internal/roster"
	"github.com/pable/go-fieldday-stats/internal/storage"
)

var (
	cPrompt = color.New(color.FgCyan, color.Bold)
	cMuted  = color.New(color.Faint)
	cError  = color.New(color.FgRed, color.Bold)
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Interactively record a new field day",
	Long: `Prompt for a new field day (date, teams, score, sub-games, awards),
validate it, and append it to the day log. Run 'fieldstats tally' afterwards
to refresh the derived stats.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	row, err := promptDay(bufio.NewScanner(os.Stdin))
	if err != nil {
		return err
	}

	// Validate through the boundary parser before touching the log, so a
	// typo never lands in the store.
	if _, err := parser.ParseDay(*row, roster.NewRegistry(cfg.Roster.Names)); err != nil {
		return fmt.Errorf("invalid day: %w", err)
	}

	id, err := db.InsertDay(*row)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Recorded field day #%d (%s).\n", id, row.Date)
	return nil
}

// promptDay collects one day row from the terminal.
func promptDay(scanner *bufio.Scanner) (*model.DayRow, error) {
	fmt.Fprintln(os.Stdout, "\nNew field day")
	cMuted.Println("press Enter on an empty game line when done")
	fmt.Fprintln(os.Stdout)

	row := &model.DayRow{}
	var err error
	if row.Date, err = ask(scanner, "Date (MM/DD/YY)"); err != nil {
		return nil, err
	}
	if row.Team1, err = ask(scanner, "Team 1 players (comma-separated)"); err != nil {
		return nil, err
	}
	if row.Team2, err = ask(scanner, "Team 2 players (comma-separated)"); err != nil {
		return nil, err
	}
	if row.Score, err = ask(scanner, "Score (X-Y)"); err != nil {
		return nil, err
	}

	for {
		entry, err := askOptional(scanner, "Next game, e.g. \"PK's (2-1)\"")
		if err != nil {
			return nil, err
		}
		if entry == "" {
			break
		}
		if _, _, err := parser.SplitGameEntry(entry); err != nil {
			cError.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		row.Games = append(row.Games, entry)
	}

	if row.MVP, err = askOptional(scanner, "MVP (Enter to skip)"); err != nil {
		return nil, err
	}
	if row.Clown, err = askOptional(scanner, "Clown of the Match (Enter to skip)"); err != nil {
		return nil, err
	}

	fmt.Fprintln(os.Stdout, "\nSummary:")
	fmt.Fprintf(os.Stdout, "  Date:   %s\n", row.Date)
	fmt.Fprintf(os.Stdout, "  Team 1: %s\n", row.Team1)
	fmt.Fprintf(os.Stdout, "  Team 2: %s\n", row.Team2)
	fmt.Fprintf(os.Stdout, "  Score:  %s\n", row.Score)
	fmt.Fprintf(os.Stdout, "  Games:  %s\n", strings.Join(row.Games, ", "))
	fmt.Fprintf(os.Stdout, "  MVP:    %s\n", orNone(row.MVP))
	fmt.Fprintf(os.Stdout, "  Clown:  %s\n", orNone(row.Clown))

	confirm, err := askOptional(scanner, "Confirm? (y/n)")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(confirm) {
	case "", "y", "yes":
		return row, nil
	default:
		return nil, fmt.Errorf("new day entry cancelled")
	}
}

func ask(scanner *bufio.Scanner, label string) (string, error) {
	for {
		v, err := askOptional(scanner, label)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		cError.Fprintln(os.Stderr, "required")
	}
}

func askOptional(scanner *bufio.Scanner, label string) (string, error) {
	cPrompt.Print(label)
	cMuted.Print("> ")
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
