package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for construction-time validation. Callers wrap them with
// row/day context; compare with errors.Is.
var (
	ErrInvalidScoreFormat = errors.New("invalid score format")
	ErrUnknownCategory    = errors.New("unknown category")
)

// Category identifies one stat bucket: a sub-game type or one of the two
// synthetic aggregates (Days, Games).
type Category int

const (
	CategoryPK Category = iota
	CategoryCross
	CategoryAD
	CategoryPF
	CategorySS
	CategoryFK
	CategoryDays
	CategoryGames
)

// Categories lists every category in the fixed set. The set is closed: every
// Player carries a counter pair for each entry and nothing else.
var Categories = []Category{
	CategoryPK, CategoryCross, CategoryAD, CategoryPF,
	CategorySS, CategoryFK, CategoryDays, CategoryGames,
}

// SubGameCategories lists the categories a sub-game may carry. Days and
// Games are derived by the engine, never recorded directly.
var SubGameCategories = []Category{
	CategoryPK, CategoryCross, CategoryAD, CategoryPF, CategorySS, CategoryFK,
}

func (c Category) String() string {
	switch c {
	case CategoryPK:
		return "PK's"
	case CategoryCross:
		return "Cross"
	case CategoryAD:
		return "A/D"
	case CategoryPF:
		return "P&F"
	case CategorySS:
		return "SS"
	case CategoryFK:
		return "FK's"
	case CategoryDays:
		return "Days"
	case CategoryGames:
		return "Games"
	default:
		return "?"
	}
}

// IsSubGame reports whether the category may appear as a recorded sub-game.
func (c Category) IsSubGame() bool {
	return c != CategoryDays && c != CategoryGames
}

// ParseCategory resolves a display name to its Category. Unknown names are
// rejected here, at the boundary, so the engine never sees a raw string.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseScore parses a "<int>-<int>" score string into its two non-negative
// values. Malformed or negative scores fail; nothing is coerced to zero.
func ParseScore(score string) (s1, s2 int, err error) {
	parts := strings.SplitN(score, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidScoreFormat, score)
	}
	s1, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidScoreFormat, score)
	}
	s2, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidScoreFormat, score)
	}
	if s1 < 0 || s2 < 0 {
		return 0, 0, fmt.Errorf("%w: negative score in %q", ErrInvalidScoreFormat, score)
	}
	return s1, s2, nil
}

// Record is a wins/losses counter pair for one category.
type Record struct {
	Wins   int
	Losses int
}

// Played returns the total number of outcomes recorded.
func (r Record) Played() int { return r.Wins + r.Losses }

// Player holds one player's cumulative statistics for a single aggregation
// run. Instances are shared: a day's rosters reference the registry's
// players, not private copies.
type Player struct {
	Name  string
	Stats map[Category]*Record

	MVP   int
	Clown int

	// Teammates counts days shared with each known player, keyed by the
	// canonical registered name. Seeded to 0 for every known name.
	Teammates map[string]int
}

// NewPlayer returns a zeroed player with a counter pair for every category
// and a zeroed teammate entry for each known name other than its own.
func NewPlayer(name string, knownNames []string) *Player {
	p := &Player{
		Name:      name,
		Stats:     make(map[Category]*Record, len(Categories)),
		Teammates: make(map[string]int, len(knownNames)),
	}
	for _, c := range Categories {
		p.Stats[c] = &Record{}
	}
	for _, n := range knownNames {
		if n != name {
			p.Teammates[n] = 0
		}
	}
	return p
}

// Active reports whether the player appeared in at least one aggregated day.
// Every appearance awards exactly one Days outcome, so Days.Played is the
// day-appearance count.
func (p *Player) Active() bool {
	return p.Stats[CategoryDays].Played() > 0
}

// Game is a single sub-contest within a day.
type Game struct {
	Category   Category
	Team1Score int
	Team2Score int
}

// NewGame builds a Game from a category display name and a "<int>-<int>"
// score string. Synthetic categories are rejected: Days and Games are
// derived, not recorded.
func NewGame(name, score string) (Game, error) {
	cat, err := ParseCategory(name)
	if err != nil {
		return Game{}, err
	}
	if !cat.IsSubGame() {
		return Game{}, fmt.Errorf("%w: %q is not a sub-game category", ErrUnknownCategory, name)
	}
	s1, s2, err := ParseScore(score)
	if err != nil {
		return Game{}, fmt.Errorf("game %s: %w", name, err)
	}
	return Game{Category: cat, Team1Score: s1, Team2Score: s2}, nil
}

// Day is one full gathering: two rosters, an overall score, the sub-games
// played, and optional MVP/Clown awardees.
type Day struct {
	Date       string // MM/DD/YY
	Team1      []*Player
	Team2      []*Player
	Team1Score int
	Team2Score int
	Games      []Game
	MVP        *Player // nil if not awarded
	Clown      *Player
}

// NewDay validates the overall score and enforces that any awardee appears
// on one of the day's rosters.
func NewDay(date string, team1, team2 []*Player, score string, games []Game, mvp, clown *Player) (*Day, error) {
	s1, s2, err := ParseScore(score)
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", date, err)
	}
	if mvp != nil && !onRoster(mvp, team1, team2) {
		return nil, fmt.Errorf("day %s: MVP %q did not play", date, mvp.Name)
	}
	if clown != nil && !onRoster(clown, team1, team2) {
		return nil, fmt.Errorf("day %s: Clown %q did not play", date, clown.Name)
	}
	return &Day{
		Date:       date,
		Team1:      team1,
		Team2:      team2,
		Team1Score: s1,
		Team2Score: s2,
		Games:      games,
		MVP:        mvp,
		Clown:      clown,
	}, nil
}

func onRoster(p *Player, team1, team2 []*Player) bool {
	for _, t := range [][]*Player{team1, team2} {
		for _, q := range t {
			if q == p {
				return true
			}
		}
	}
	return false
}

// ---- Derived rows persisted to / read from the store ----

// DayRow is one raw day log entry as stored: unparsed text fields.
type DayRow struct {
	ID    int64
	Date  string
	Team1 string // comma-separated names
	Team2 string
	Score string
	Games []string // entries like "PK's (2-1)"
	MVP   string   // empty if not awarded
	Clown string
}

// CategoryRecord is one formatted category line of a player's stats row.
type CategoryRecord struct {
	Category Category
	Wins     int
	Losses   int
	Record   string  // "{wins}-{losses}"
	Pct      float64 // wins/(wins+losses), 4 decimals, 0 for 0-0
}

// PlayerStatsRow is one player's full derived output for a season pass
// (season "" = full history).
type PlayerStatsRow struct {
	Season  string
	Name    string
	Records []CategoryRecord // fixed output order: Days, Games, then sub-games
	MVP     int
	Clown   int
}

// TeammateRow is one normalized co-occurrence entry (full history only).
type TeammateRow struct {
	Name         string
	Teammate     string
	DaysTogether int
	Share        float64 // DaysTogether / days played, 3 decimals
}
