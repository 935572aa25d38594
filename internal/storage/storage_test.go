package storage

import (
	"path/filepath"
	"testing"

	"github.com/pable/go-fieldday-stats/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleStatsRow(season, name string) model.PlayerStatsRow {
	return model.PlayerStatsRow{
		Season: season,
		Name:   name,
		MVP:    1,
		Records: []model.CategoryRecord{
			{Category: model.CategoryDays, Wins: 2, Losses: 1, Record: "2-1", Pct: 0.6667},
			{Category: model.CategoryGames, Wins: 5, Losses: 3, Record: "5-3", Pct: 0.625},
		},
	}
}

func TestInsertAndListDays(t *testing.T) {
	db := openTestDB(t)

	row := model.DayRow{
		Date:  "06/14/24",
		Team1: "Aaron, Quinn",
		Team2: "Tighe",
		Score: "2-1",
		Games: []string{"PK's (2-1)", "Cross (0-3)"},
		MVP:   "Aaron",
	}
	id, err := db.InsertDay(row)
	if err != nil {
		t.Fatalf("InsertDay: %v", err)
	}
	if id != 1 {
		t.Errorf("first row id: want 1, got %d", id)
	}

	// A second day with no sub-games and no awards.
	if _, err := db.InsertDay(model.DayRow{Date: "06/21/24", Team1: "Tighe", Team2: "Aaron, Quinn", Score: "3-0"}); err != nil {
		t.Fatalf("InsertDay: %v", err)
	}

	got, err := db.ListDays()
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	first := got[0]
	if first.Date != row.Date || first.Team1 != row.Team1 || first.Score != row.Score || first.MVP != row.MVP {
		t.Errorf("round trip mismatch: %+v", first)
	}
	if len(first.Games) != 2 || first.Games[0] != "PK's (2-1)" || first.Games[1] != "Cross (0-3)" {
		t.Errorf("games round trip: %v", first.Games)
	}
	if len(got[1].Games) != 0 {
		t.Errorf("empty games column should scan as nil, got %v", got[1].Games)
	}
}

func TestReplaceAndGetStats(t *testing.T) {
	db := openTestDB(t)

	rows := []model.PlayerStatsRow{
		sampleStatsRow("2024", "Aaron"),
		sampleStatsRow("2024", "quinn"),
	}
	if err := db.ReplaceStats("2024", rows); err != nil {
		t.Fatalf("ReplaceStats: %v", err)
	}

	got, err := db.GetStats("2024")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	// Case-insensitive name order.
	if got[0].Name != "Aaron" || got[1].Name != "quinn" {
		t.Errorf("player order: %q, %q", got[0].Name, got[1].Name)
	}
	row := got[0]
	if row.Season != "2024" || row.MVP != 1 || row.Clown != 0 {
		t.Errorf("awards mismatch: %+v", row)
	}
	if len(row.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(row.Records))
	}
	if row.Records[0].Category != model.CategoryDays || row.Records[0].Record != "2-1" || row.Records[0].Pct != 0.6667 {
		t.Errorf("Days record mismatch: %+v", row.Records[0])
	}
	if row.Records[1].Category != model.CategoryGames {
		t.Errorf("category order not restored: %+v", row.Records)
	}

	// Re-tallying the same season replaces, never accumulates.
	if err := db.ReplaceStats("2024", rows[:1]); err != nil {
		t.Fatalf("ReplaceStats again: %v", err)
	}
	got, err = db.GetStats("2024")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Aaron" {
		t.Errorf("replace semantics: got %d rows", len(got))
	}

	// Seasons are independent partitions of the stats table.
	other, err := db.GetStats("2023")
	if err != nil {
		t.Fatalf("GetStats other season: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no 2023 rows, got %d", len(other))
	}
}

func TestGetPlayerStats(t *testing.T) {
	db := openTestDB(t)

	if err := db.ReplaceStats("", []model.PlayerStatsRow{sampleStatsRow("", "Aaron")}); err != nil {
		t.Fatalf("ReplaceStats full history: %v", err)
	}
	if err := db.ReplaceStats("2024", []model.PlayerStatsRow{sampleStatsRow("2024", "Aaron")}); err != nil {
		t.Fatalf("ReplaceStats season: %v", err)
	}
	if err := db.ReplaceStats("2023", []model.PlayerStatsRow{sampleStatsRow("2023", "Quinn")}); err != nil {
		t.Fatalf("ReplaceStats other player: %v", err)
	}

	got, err := db.GetPlayerStats("Aaron")
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 seasons for Aaron, got %d", len(got))
	}
	// Full history ("") sorts before any season label.
	if got[0].Season != "" || got[1].Season != "2024" {
		t.Errorf("season order: %q, %q", got[0].Season, got[1].Season)
	}

	none, err := db.GetPlayerStats("Nobody")
	if err != nil {
		t.Fatalf("GetPlayerStats unknown: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no rows for unknown player, got %d", len(none))
	}
}

func TestReplaceAndGetTeammates(t *testing.T) {
	db := openTestDB(t)

	rows := []model.TeammateRow{
		{Name: "Quinn", Teammate: "Aaron", DaysTogether: 2, Share: 0.5},
		{Name: "Aaron", Teammate: "Quinn", DaysTogether: 2, Share: 0.667},
	}
	if err := db.ReplaceTeammates(rows); err != nil {
		t.Fatalf("ReplaceTeammates: %v", err)
	}

	got, err := db.GetTeammates()
	if err != nil {
		t.Fatalf("GetTeammates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Ordered by name then teammate.
	if got[0].Name != "Aaron" || got[1].Name != "Quinn" {
		t.Errorf("row order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].Share != 0.667 || got[0].DaysTogether != 2 {
		t.Errorf("share round trip: %+v", got[0])
	}

	// Wholesale replacement.
	if err := db.ReplaceTeammates(nil); err != nil {
		t.Fatalf("ReplaceTeammates empty: %v", err)
	}
	got, err = db.GetTeammates()
	if err != nil {
		t.Fatalf("GetTeammates: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty table, got %d rows", len(got))
	}
}

func TestGetOverview(t *testing.T) {
	db := openTestDB(t)

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview empty: %v", err)
	}
	if ov.TotalDays != 0 || ov.PlayersSeen != 0 {
		t.Errorf("empty store overview: %+v", ov)
	}

	db.InsertDay(model.DayRow{Date: "06/14/24", Team1: "Aaron", Team2: "Tighe", Score: "2-1"})
	db.InsertDay(model.DayRow{Date: "06/21/24", Team1: "Tighe", Team2: "Aaron", Score: "3-0"})
	if err := db.ReplaceStats("", []model.PlayerStatsRow{sampleStatsRow("", "Aaron"), sampleStatsRow("", "Tighe")}); err != nil {
		t.Fatalf("ReplaceStats: %v", err)
	}
	if err := db.ReplaceStats("2024", []model.PlayerStatsRow{sampleStatsRow("2024", "Aaron")}); err != nil {
		t.Fatalf("ReplaceStats: %v", err)
	}

	ov, err = db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.TotalDays != 2 {
		t.Errorf("TotalDays: want 2, got %d", ov.TotalDays)
	}
	if ov.FirstDate != "06/14/24" || ov.LastDate != "06/21/24" {
		t.Errorf("date range: %s → %s", ov.FirstDate, ov.LastDate)
	}
	if ov.PlayersSeen != 2 {
		t.Errorf("PlayersSeen: want 2, got %d", ov.PlayersSeen)
	}
	if ov.SeasonCounts["2024"] != 1 {
		t.Errorf("SeasonCounts: %+v", ov.SeasonCounts)
	}
}
