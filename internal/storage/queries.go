package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pable/go-fieldday-stats/internal/model"
)

// gameSep joins the recorded sub-game entries into the single games column.
const gameSep = "; "

// InsertDay appends one day row to the log and returns its row id.
func (db *DB) InsertDay(row model.DayRow) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO days(date, team1, team2, score, games, mvp, clown)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.Date, row.Team1, row.Team2, row.Score,
		strings.Join(row.Games, gameSep), row.MVP, row.Clown,
	)
	if err != nil {
		return 0, fmt.Errorf("insert day: %w", err)
	}
	return res.LastInsertId()
}

// ListDays returns every day row in log order.
func (db *DB) ListDays() ([]model.DayRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, date, team1, team2, score, games, mvp, clown
		FROM days ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DayRow
	for rows.Next() {
		var r model.DayRow
		var games string
		if err := rows.Scan(&r.ID, &r.Date, &r.Team1, &r.Team2, &r.Score, &games, &r.MVP, &r.Clown); err != nil {
			return nil, err
		}
		if games != "" {
			r.Games = strings.Split(games, gameSep)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceStats rewrites the derived stat and award rows for one season
// (season "" = full history) in a single transaction.
func (db *DB) ReplaceStats(season string, rows []model.PlayerStatsRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM player_stats WHERE season = ?`, season); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM player_awards WHERE season = ?`, season); err != nil {
		return err
	}

	statStmt, err := tx.Prepare(`
		INSERT INTO player_stats(season, name, category, wins, losses, record, pct)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer statStmt.Close()

	awardStmt, err := tx.Prepare(`
		INSERT INTO player_awards(season, name, mvp, clown)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer awardStmt.Close()

	for _, row := range rows {
		for _, rec := range row.Records {
			if _, err := statStmt.Exec(season, row.Name, rec.Category.String(),
				rec.Wins, rec.Losses, rec.Record, rec.Pct); err != nil {
				return fmt.Errorf("insert stats for %s/%s: %w", row.Name, rec.Category, err)
			}
		}
		if _, err := awardStmt.Exec(season, row.Name, row.MVP, row.Clown); err != nil {
			return fmt.Errorf("insert awards for %s: %w", row.Name, err)
		}
	}
	return tx.Commit()
}

// GetStats returns the stored stat rows for one season, players in
// case-insensitive name order and categories in the stored insertion set.
func (db *DB) GetStats(season string) ([]model.PlayerStatsRow, error) {
	rows, err := db.conn.Query(`
		SELECT s.name, s.category, s.wins, s.losses, s.record, s.pct, a.mvp, a.clown
		FROM player_stats s
		JOIN player_awards a ON a.season = s.season AND a.name = s.name
		WHERE s.season = ?
		ORDER BY LOWER(s.name)`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byName := make(map[string]*model.PlayerStatsRow)
	var order []string
	for rows.Next() {
		var name, catName string
		var rec model.CategoryRecord
		var mvp, clown int
		if err := rows.Scan(&name, &catName, &rec.Wins, &rec.Losses, &rec.Record, &rec.Pct, &mvp, &clown); err != nil {
			return nil, err
		}
		cat, err := model.ParseCategory(catName)
		if err != nil {
			return nil, fmt.Errorf("stored stats for %s: %w", name, err)
		}
		rec.Category = cat

		row, ok := byName[name]
		if !ok {
			row = &model.PlayerStatsRow{Season: season, Name: name, MVP: mvp, Clown: clown}
			byName[name] = row
			order = append(order, name)
		}
		row.Records = append(row.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]model.PlayerStatsRow, 0, len(order))
	for _, name := range order {
		sortRecords(byName[name])
		out = append(out, *byName[name])
	}
	return out, nil
}

// GetPlayerStats returns one player's stored rows across every season,
// full history first, then seasons ascending.
func (db *DB) GetPlayerStats(name string) ([]model.PlayerStatsRow, error) {
	rows, err := db.conn.Query(`
		SELECT s.season, s.category, s.wins, s.losses, s.record, s.pct, a.mvp, a.clown
		FROM player_stats s
		JOIN player_awards a ON a.season = s.season AND a.name = s.name
		WHERE s.name = ?
		ORDER BY s.season`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bySeason := make(map[string]*model.PlayerStatsRow)
	var order []string
	for rows.Next() {
		var seasonKey, catName string
		var rec model.CategoryRecord
		var mvp, clown int
		if err := rows.Scan(&seasonKey, &catName, &rec.Wins, &rec.Losses, &rec.Record, &rec.Pct, &mvp, &clown); err != nil {
			return nil, err
		}
		cat, err := model.ParseCategory(catName)
		if err != nil {
			return nil, fmt.Errorf("stored stats for %s: %w", name, err)
		}
		rec.Category = cat

		row, ok := bySeason[seasonKey]
		if !ok {
			row = &model.PlayerStatsRow{Season: seasonKey, Name: name, MVP: mvp, Clown: clown}
			bySeason[seasonKey] = row
			order = append(order, seasonKey)
		}
		row.Records = append(row.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]model.PlayerStatsRow, 0, len(order))
	for _, key := range order {
		sortRecords(bySeason[key])
		out = append(out, *bySeason[key])
	}
	return out, nil
}

// ReplaceTeammates rewrites the full-history teammate share table.
func (db *DB) ReplaceTeammates(rows []model.TeammateRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM teammate_shares`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO teammate_shares(name, teammate, days_together, share)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Name, r.Teammate, r.DaysTogether, r.Share); err != nil {
			return fmt.Errorf("insert teammates for %s/%s: %w", r.Name, r.Teammate, err)
		}
	}
	return tx.Commit()
}

// GetTeammates returns the stored teammate share rows.
func (db *DB) GetTeammates() ([]model.TeammateRow, error) {
	rows, err := db.conn.Query(`
		SELECT name, teammate, days_together, share
		FROM teammate_shares
		ORDER BY LOWER(name), LOWER(teammate)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TeammateRow
	for rows.Next() {
		var r model.TeammateRow
		if err := rows.Scan(&r.Name, &r.Teammate, &r.DaysTogether, &r.Share); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Overview summarizes the store for the summary command.
type Overview struct {
	TotalDays    int
	FirstDate    string
	LastDate     string
	PlayersSeen  int
	SeasonCounts map[string]int // season label → day count, keyed by stored stats
}

// GetOverview computes store-level totals from the day log and the derived
// stat tables.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1), COALESCE(MIN(date), ''), COALESCE(MAX(date), '')
		FROM days`).Scan(&ov.TotalDays, &ov.FirstDate, &ov.LastDate)
	if err != nil {
		return ov, err
	}

	err = db.conn.QueryRow(`
		SELECT COUNT(DISTINCT name) FROM player_stats WHERE season = ''`).Scan(&ov.PlayersSeen)
	if err != nil {
		return ov, err
	}

	rows, err := db.conn.Query(`
		SELECT season, COUNT(DISTINCT name)
		FROM player_stats WHERE season != ''
		GROUP BY season ORDER BY season`)
	if err != nil {
		return ov, err
	}
	defer rows.Close()

	ov.SeasonCounts = make(map[string]int)
	for rows.Next() {
		var seasonKey string
		var n int
		if err := rows.Scan(&seasonKey, &n); err != nil {
			return ov, err
		}
		ov.SeasonCounts[seasonKey] = n
	}
	return ov, rows.Err()
}

// sortRecords restores the fixed output order (Days, Games, sub-games) on a
// row reassembled from per-category table rows.
func sortRecords(row *model.PlayerStatsRow) {
	order := map[model.Category]int{
		model.CategoryDays: 0, model.CategoryGames: 1,
		model.CategoryPK: 2, model.CategoryCross: 3, model.CategoryAD: 4,
		model.CategoryPF: 5, model.CategorySS: 6, model.CategoryFK: 7,
	}
	sort.Slice(row.Records, func(i, j int) bool {
		return order[row.Records[i].Category] < order[row.Records[j].Category]
	})
}
