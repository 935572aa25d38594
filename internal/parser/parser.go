// Package parser converts raw day log rows into validated model.Day values,
// resolving player names through a roster registry. It is the boundary where
// malformed fields are rejected; the aggregation engine only ever sees
// well-formed days.
package parser

import (
	"fmt"
	"strings"

	"github.com/pable/go-fieldday-stats/internal/model"
	"github.com/pable/go-fieldday-stats/internal/roster"
)

// Warning records a day row that failed to parse and was skipped.
type Warning struct {
	Row  int64
	Date string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d (%s): %v", w.Row, w.Date, w.Err)
}

// ParseDay builds a Day from one raw row, registering any new players.
func ParseDay(row model.DayRow, reg *roster.Registry) (*model.Day, error) {
	team1, err := reg.ResolveTeam(row.Team1)
	if err != nil {
		return nil, fmt.Errorf("team 1: %w", err)
	}
	team2, err := reg.ResolveTeam(row.Team2)
	if err != nil {
		return nil, fmt.Errorf("team 2: %w", err)
	}

	games := make([]model.Game, 0, len(row.Games))
	for _, entry := range row.Games {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, score, err := SplitGameEntry(entry)
		if err != nil {
			return nil, err
		}
		g, err := model.NewGame(name, score)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	var mvp, clown *model.Player
	if name := strings.TrimSpace(row.MVP); name != "" {
		if mvp, err = reg.Resolve(name); err != nil {
			return nil, fmt.Errorf("MVP: %w", err)
		}
	}
	if name := strings.TrimSpace(row.Clown); name != "" {
		if clown, err = reg.Resolve(name); err != nil {
			return nil, fmt.Errorf("Clown: %w", err)
		}
	}

	return model.NewDay(row.Date, team1, team2, row.Score, games, mvp, clown)
}

// ParseDays parses every row in log order. Per-row failures are isolated:
// the offending row is skipped and reported as a warning so one malformed
// historical entry does not block the rest of the run.
func ParseDays(rows []model.DayRow, reg *roster.Registry) ([]*model.Day, []Warning) {
	days := make([]*model.Day, 0, len(rows))
	var warns []Warning
	for _, row := range rows {
		day, err := ParseDay(row, reg)
		if err != nil {
			warns = append(warns, Warning{Row: row.ID, Date: row.Date, Err: err})
			continue
		}
		days = append(days, day)
	}
	return days, warns
}

// SplitGameEntry splits a recorded sub-game entry of the form
// "<CategoryName> (<int>-<int>)" into its name and score parts.
func SplitGameEntry(entry string) (name, score string, err error) {
	open := strings.LastIndex(entry, " (")
	if open < 1 || !strings.HasSuffix(entry, ")") {
		return "", "", fmt.Errorf("malformed game entry %q: want \"Name (X-Y)\"", entry)
	}
	name = strings.TrimSpace(entry[:open])
	score = entry[open+2 : len(entry)-1]
	return name, score, nil
}
