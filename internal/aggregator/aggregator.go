// Package aggregator folds an ordered sequence of field days into the
// per-player cumulative statistics reachable from the day rosters.
package aggregator

import (
	"errors"
	"fmt"

	"github.com/pable/go-fieldday-stats/internal/model"
)

var (
	ErrInvalidAmount = errors.New("negative stat amount")
	ErrTiedScore     = errors.New("tied score")
)

// Side identifies one of the two rosters of a day or sub-game.
type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

// ResolveOutcome compares two scores and returns the winning and losing
// sides with their scores. Ties are rejected: a field day always has a
// winner, so a tie in the log is bad data rather than a drawable contest.
func ResolveOutcome(score1, score2 int) (winner, loser Side, winnerScore, loserScore int, err error) {
	switch {
	case score1 > score2:
		return Side1, Side2, score1, score2, nil
	case score2 > score1:
		return Side2, Side1, score2, score1, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: %d-%d", ErrTiedScore, score1, score2)
	}
}

// Aggregate processes days in sequence order, mutating every player
// reachable from the day rosters:
//
//  1. teammate co-occurrence, pairwise per roster, once per day
//  2. one Days win/loss per player from the day-level outcome
//  3. Games wins/losses accumulated as point totals (points scored and
//     conceded that day), not one unit per day
//  4. each sub-game resolved independently, its category awarded the same
//     point-weighted way
//  5. MVP / Clown award counters
//
// Invariant violations (negative amounts, tied scores, a category missing
// from a player's fixed stat set) are fatal and reported with day context.
func Aggregate(days []*model.Day) error {
	for _, day := range days {
		if err := aggregateDay(day); err != nil {
			return fmt.Errorf("day %s: %w", day.Date, err)
		}
	}
	return nil
}

func aggregateDay(day *model.Day) error {
	updateTeammates(day.Team1)
	updateTeammates(day.Team2)

	winners, losers, winScore, loseScore, err := resolveRosters(day.Team1, day.Team2, day.Team1Score, day.Team2Score)
	if err != nil {
		return err
	}

	if err := addWin(model.CategoryDays, winners, 1); err != nil {
		return err
	}
	if err := addLoss(model.CategoryDays, losers, 1); err != nil {
		return err
	}

	// Games tracks points scored and conceded, so both rosters get both
	// sides of the score.
	if err := addWin(model.CategoryGames, winners, winScore); err != nil {
		return err
	}
	if err := addLoss(model.CategoryGames, winners, loseScore); err != nil {
		return err
	}
	if err := addWin(model.CategoryGames, losers, loseScore); err != nil {
		return err
	}
	if err := addLoss(model.CategoryGames, losers, winScore); err != nil {
		return err
	}

	// Sub-games resolve independently of the day outcome: a roster can win
	// the day and still lose an individual game.
	for _, game := range day.Games {
		gw, gl, gws, gls, err := resolveRosters(day.Team1, day.Team2, game.Team1Score, game.Team2Score)
		if err != nil {
			return fmt.Errorf("game %s: %w", game.Category, err)
		}
		if err := addWin(game.Category, gw, gws); err != nil {
			return err
		}
		if err := addLoss(game.Category, gw, gls); err != nil {
			return err
		}
		if err := addWin(game.Category, gl, gls); err != nil {
			return err
		}
		if err := addLoss(game.Category, gl, gws); err != nil {
			return err
		}
	}

	if day.MVP != nil {
		day.MVP.MVP++
	}
	if day.Clown != nil {
		day.Clown.Clown++
	}
	return nil
}

// resolveRosters maps a ResolveOutcome over the day's two rosters.
func resolveRosters(team1, team2 []*model.Player, s1, s2 int) (winners, losers []*model.Player, winScore, loseScore int, err error) {
	winSide, _, ws, ls, err := ResolveOutcome(s1, s2)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	if winSide == Side1 {
		return team1, team2, ws, ls, nil
	}
	return team2, team1, ws, ls, nil
}

// updateTeammates increments every roster member's co-occurrence counter for
// every other member. Runs once per day regardless of sub-game count.
func updateTeammates(team []*model.Player) {
	for _, p := range team {
		for _, other := range team {
			if other.Name == p.Name {
				continue
			}
			p.Teammates[other.Name]++
		}
	}
}

func addWin(cat model.Category, team []*model.Player, amt int) error {
	if amt < 0 {
		return fmt.Errorf("%w: %d for %s", ErrInvalidAmount, amt, cat)
	}
	for _, p := range team {
		rec, ok := p.Stats[cat]
		if !ok {
			return fmt.Errorf("%w: %s for player %q", model.ErrUnknownCategory, cat, p.Name)
		}
		rec.Wins += amt
	}
	return nil
}

func addLoss(cat model.Category, team []*model.Player, amt int) error {
	if amt < 0 {
		return fmt.Errorf("%w: %d for %s", ErrInvalidAmount, amt, cat)
	}
	for _, p := range team {
		rec, ok := p.Stats[cat]
		if !ok {
			return fmt.Errorf("%w: %s for player %q", model.ErrUnknownCategory, cat, p.Name)
		}
		rec.Losses += amt
	}
	return nil
}
