// Package report converts accumulated counters into display records and
// renders the stat tables.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-fieldday-stats/internal/model"
)

// OutputCategories is the fixed column order of the stats output: the two
// synthetic aggregates first, then the sub-games.
var OutputCategories = []model.Category{
	model.CategoryDays, model.CategoryGames,
	model.CategoryPK, model.CategoryCross, model.CategoryAD,
	model.CategoryPF, model.CategorySS, model.CategoryFK,
}

// FormatRecord renders a counter pair as its "{wins}-{losses}" record string
// and win percentage. The percentage is wins/(wins+losses) rounded to
// 4 decimal places. A 0-0 record has a percentage of exactly 0.
func FormatRecord(wins, losses int) (string, float64) {
	record := fmt.Sprintf("%d-%d", wins, losses)
	if wins == 0 && losses == 0 {
		return record, 0
	}
	pct := float64(wins) / float64(wins+losses)
	return record, math.Round(pct*10000) / 10000
}

// TeammateShare normalizes a raw co-occurrence count by the player's total
// days played, rounded to 3 decimal places: the fraction of days this player
// shared a roster with that teammate. Zero days played yields 0.
func TeammateShare(count, daysPlayed int) float64 {
	if daysPlayed == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(daysPlayed)*1000) / 1000
}

// BuildStatsRows assembles the derived output rows for one aggregation pass.
// players must already be in output order. When includeInactive is false,
// players without a single appearance in the pass are skipped rather than
// written as all-zero rows.
func BuildStatsRows(season string, players []*model.Player, includeInactive bool) []model.PlayerStatsRow {
	var rows []model.PlayerStatsRow
	for _, p := range players {
		if !includeInactive && !p.Active() {
			continue
		}
		row := model.PlayerStatsRow{
			Season: season,
			Name:   p.Name,
			MVP:    p.MVP,
			Clown:  p.Clown,
		}
		for _, cat := range OutputCategories {
			rec := p.Stats[cat]
			recStr, pct := FormatRecord(rec.Wins, rec.Losses)
			row.Records = append(row.Records, model.CategoryRecord{
				Category: cat,
				Wins:     rec.Wins,
				Losses:   rec.Losses,
				Record:   recStr,
				Pct:      pct,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildTeammateRows assembles the normalized co-occurrence rows for the
// full-history pass, sorted by player then case-insensitive teammate name.
func BuildTeammateRows(players []*model.Player) []model.TeammateRow {
	var rows []model.TeammateRow
	for _, p := range players {
		if !p.Active() {
			continue
		}
		daysPlayed := p.Stats[model.CategoryDays].Played()

		names := make([]string, 0, len(p.Teammates))
		for name := range p.Teammates {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})

		for _, name := range names {
			count := p.Teammates[name]
			rows = append(rows, model.TeammateRow{
				Name:         p.Name,
				Teammate:     name,
				DaysTogether: count,
				Share:        TeammateShare(count, daysPlayed),
			})
		}
	}
	return rows
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintStatsTable renders one pass's stat rows: a record and percentage
// column per category, then MVP/Clown counts.
func PrintStatsTable(w io.Writer, rows []model.PlayerStatsRow) {
	table := newTable(w)

	header := []string{"NAME"}
	for _, cat := range OutputCategories {
		header = append(header, strings.ToUpper(cat.String()), "PCT")
	}
	header = append(header, "MVP", "CLOWN")
	table.Header(toAny(header)...)

	for _, row := range rows {
		cells := []string{row.Name}
		for _, rec := range row.Records {
			cells = append(cells, rec.Record, formatPct(rec.Pct))
		}
		cells = append(cells, strconv.Itoa(row.MVP), strconv.Itoa(row.Clown))
		table.Append(toAny(cells)...)
	}
	table.Render()
}

// PrintTeammateTable renders the teammate-frequency matrix: one row per
// player, one column per known teammate, cells holding the normalized share.
func PrintTeammateTable(w io.Writer, rows []model.TeammateRow) {
	if len(rows) == 0 {
		return
	}

	// Column set: every teammate name seen, in case-insensitive order.
	colSet := make(map[string]struct{})
	byPlayer := make(map[string]map[string]float64)
	var playerOrder []string
	for _, r := range rows {
		colSet[r.Teammate] = struct{}{}
		if byPlayer[r.Name] == nil {
			byPlayer[r.Name] = make(map[string]float64)
			playerOrder = append(playerOrder, r.Name)
		}
		byPlayer[r.Name][r.Teammate] = r.Share
	}
	cols := make([]string, 0, len(colSet))
	for name := range colSet {
		cols = append(cols, name)
	}
	sort.Slice(cols, func(i, j int) bool {
		return strings.ToLower(cols[i]) < strings.ToLower(cols[j])
	})

	table := newTable(w)
	header := append([]string{"NAME"}, cols...)
	table.Header(toAny(header)...)

	for _, name := range playerOrder {
		cells := []string{name}
		for _, col := range cols {
			if col == name {
				cells = append(cells, "—")
				continue
			}
			cells = append(cells, fmt.Sprintf("%.3f", byPlayer[name][col]))
		}
		table.Append(toAny(cells)...)
	}
	table.Render()
}

// PrintDayList renders the raw day log.
func PrintDayList(w io.Writer, rows []model.DayRow) {
	table := newTable(w)
	table.Header("#", "DATE", "TEAM 1", "TEAM 2", "SCORE", "GAMES", "MVP", "CLOWN")
	for _, r := range rows {
		table.Append(
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Team1,
			r.Team2,
			r.Score,
			strconv.Itoa(len(r.Games)),
			dash(r.MVP),
			dash(r.Clown),
		)
	}
	table.Render()
}

// PrintPlayerSeasons renders one player's records across seasons: one row
// per season, one record/pct pair per category.
func PrintPlayerSeasons(w io.Writer, name string, rows []model.PlayerStatsRow) {
	fmt.Fprintf(w, "\n%s\n\n", name)
	table := newTable(w)

	header := []string{"SEASON"}
	for _, cat := range OutputCategories {
		header = append(header, strings.ToUpper(cat.String()), "PCT")
	}
	header = append(header, "MVP", "CLOWN")
	table.Header(toAny(header)...)

	for _, row := range rows {
		label := row.Season
		if label == "" {
			label = "ALL"
		}
		cells := []string{label}
		for _, rec := range row.Records {
			cells = append(cells, rec.Record, formatPct(rec.Pct))
		}
		cells = append(cells, strconv.Itoa(row.MVP), strconv.Itoa(row.Clown))
		table.Append(toAny(cells)...)
	}
	table.Render()
}

func formatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 4, 64)
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
