// Package roster owns player identity for one aggregation run: the same name
// always resolves to the same Player instance, and unknown names are created
// on first use.
package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pable/go-fieldday-stats/internal/model"
)

var (
	ErrInvalidName = errors.New("invalid player name")
	ErrEmptyTeam   = errors.New("empty team")
)

// Registry maps names to shared Player instances. Each aggregation pass
// (full history or one season) owns its own Registry; a pass never sees
// another pass's counters.
type Registry struct {
	players map[string]*model.Player
	known   []string // seeded roster, used to initialize teammate maps
}

// NewRegistry seeds a fresh registry with zeroed players for each known
// roster name. Known names also define the teammate-map key set for every
// player created later.
func NewRegistry(known []string) *Registry {
	r := &Registry{
		players: make(map[string]*model.Player, len(known)),
		known:   append([]string(nil), known...),
	}
	for _, name := range known {
		r.players[name] = model.NewPlayer(name, known)
	}
	return r
}

// Resolve returns the player registered under name, creating and registering
// a zeroed one on first use. Names are case-sensitive keys.
func (r *Registry) Resolve(name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if p, ok := r.players[name]; ok {
		return p, nil
	}
	p := model.NewPlayer(name, r.known)
	r.players[name] = p
	return p, nil
}

// ResolveTeam resolves a comma-separated name list into an ordered roster.
func (r *Registry) ResolveTeam(list string) ([]*model.Player, error) {
	var team []*model.Player
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, err := r.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", list, err)
		}
		team = append(team, p)
	}
	if len(team) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTeam, list)
	}
	return team, nil
}

// Players returns every registered player sorted case-insensitively by name.
func (r *Registry) Players() []*model.Player {
	out := make([]*model.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Len returns the number of registered players.
func (r *Registry) Len() int { return len(r.players) }
