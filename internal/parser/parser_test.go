package parser

import (
	"errors"
	"testing"

	"github.com/pable/go-fieldday-stats/internal/model"
	"github.com/pable/go-fieldday-stats/internal/roster"
)

func TestSplitGameEntry(t *testing.T) {
	cases := []struct {
		entry       string
		name, score string
		ok          bool
	}{
		{"PK's (2-1)", "PK's", "2-1", true},
		{"A/D (10-3)", "A/D", "10-3", true},
		{"P&F (0-1)", "P&F", "0-1", true},
		{"PK's 2-1", "", "", false},
		{"(2-1)", "", "", false},
		{"PK's (2-1", "", "", false},
	}
	for _, c := range cases {
		name, score, err := SplitGameEntry(c.entry)
		if c.ok {
			if err != nil {
				t.Errorf("SplitGameEntry(%q): unexpected error %v", c.entry, err)
				continue
			}
			if name != c.name || score != c.score {
				t.Errorf("SplitGameEntry(%q): want (%q,%q), got (%q,%q)", c.entry, c.name, c.score, name, score)
			}
			continue
		}
		if err == nil {
			t.Errorf("SplitGameEntry(%q): expected error", c.entry)
		}
	}
}

func TestParseDay(t *testing.T) {
	reg := roster.NewRegistry([]string{"Aaron", "Quinn", "Tighe"})
	row := model.DayRow{
		ID:    1,
		Date:  "06/14/24",
		Team1: "Aaron, Quinn",
		Team2: "Tighe",
		Score: "2-1",
		Games: []string{"PK's (2-1)", "Cross (0-3)"},
		MVP:   "Aaron",
		Clown: "Tighe",
	}

	day, err := ParseDay(row, reg)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if len(day.Team1) != 2 || len(day.Team2) != 1 {
		t.Fatalf("roster sizes: got %d vs %d", len(day.Team1), len(day.Team2))
	}
	if len(day.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(day.Games))
	}
	if day.Games[0].Category != model.CategoryPK || day.Games[1].Category != model.CategoryCross {
		t.Errorf("unexpected game categories: %v, %v", day.Games[0].Category, day.Games[1].Category)
	}
	if day.MVP == nil || day.MVP.Name != "Aaron" {
		t.Error("MVP not resolved to Aaron")
	}
	if day.Clown == nil || day.Clown.Name != "Tighe" {
		t.Error("Clown not resolved to Tighe")
	}

	// MVP must resolve through the registry to a roster member.
	aaron, _ := reg.Resolve("Aaron")
	if day.MVP != aaron {
		t.Error("MVP must share the registry's Player instance")
	}
}

func TestParseDayErrors(t *testing.T) {
	reg := roster.NewRegistry([]string{"Aaron", "Tighe"})

	if _, err := ParseDay(model.DayRow{Date: "06/14/24", Team1: "", Team2: "Tighe", Score: "2-1"}, reg); !errors.Is(err, roster.ErrEmptyTeam) {
		t.Errorf("empty team: want ErrEmptyTeam, got %v", err)
	}
	if _, err := ParseDay(model.DayRow{Date: "06/14/24", Team1: "Aaron", Team2: "Tighe", Score: "x-1"}, reg); !errors.Is(err, model.ErrInvalidScoreFormat) {
		t.Errorf("bad score: want ErrInvalidScoreFormat, got %v", err)
	}
	if _, err := ParseDay(model.DayRow{Date: "06/14/24", Team1: "Aaron", Team2: "Tighe", Score: "2-1", Games: []string{"Dodgeball (2-1)"}}, reg); !errors.Is(err, model.ErrUnknownCategory) {
		t.Errorf("unknown game: want ErrUnknownCategory, got %v", err)
	}
	if _, err := ParseDay(model.DayRow{Date: "06/14/24", Team1: "Aaron", Team2: "Tighe", Score: "2-1", Games: []string{"PK's 2-1"}}, reg); err == nil {
		t.Error("malformed game entry: expected error")
	}
}

// One malformed row must not block the rest of the log.
func TestParseDaysIsolatesFailures(t *testing.T) {
	reg := roster.NewRegistry([]string{"Aaron", "Tighe"})
	rows := []model.DayRow{
		{ID: 1, Date: "06/14/24", Team1: "Aaron", Team2: "Tighe", Score: "2-1"},
		{ID: 2, Date: "06/21/24", Team1: "Aaron", Team2: "Tighe", Score: "broken"},
		{ID: 3, Date: "06/28/24", Team1: "Tighe", Team2: "Aaron", Score: "3-0"},
	}

	days, warns := ParseDays(rows, reg)
	if len(days) != 2 {
		t.Fatalf("expected 2 parsed days, got %d", len(days))
	}
	if days[0].Date != "06/14/24" || days[1].Date != "06/28/24" {
		t.Errorf("log order not preserved: %s, %s", days[0].Date, days[1].Date)
	}
	if len(warns) != 1 || warns[0].Row != 2 {
		t.Fatalf("expected one warning for row 2, got %+v", warns)
	}
}
