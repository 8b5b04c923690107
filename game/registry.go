package game

import (
	"fmt"
	"strings"
	"sync"
)

// Player is a registered identity with a cumulative score. Player values
// are replaced by key in the registry, never mutated in place.
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Registry is the authoritative in-memory store of players, keyed by
// name. A single mutex guards the map and the insertion-order slice, so
// every operation (including the read-modify-write in Update) is one
// critical section.
type Registry struct {
	mu      sync.Mutex
	players map[string]Player
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]Player),
	}
}

// Register stores a new player with score 0. Names are case-sensitive
// and must be unique; a name that is blank after trimming is rejected.
func (r *Registry) Register(name string) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, fmt.Errorf("%w: player name cannot be empty", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[name]; exists {
		return Player{}, fmt.Errorf("%w: player already registered: %s", ErrAlreadyExists, name)
	}

	p := Player{Name: name}
	r.players[name] = p
	r.order = append(r.order, name)

	return p, nil
}

// FindByName returns the current record for a player.
func (r *Registry) FindByName(name string) (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[name]
	if !ok {
		return Player{}, fmt.Errorf("%w: player %q", ErrNotFound, name)
	}
	return p, nil
}

// Update applies fn to the player's current record and stores the result,
// all under the registry lock. Callers use this for read-modify-write
// sequences that must not interleave with concurrent updates to the same
// name (e.g. score increments).
func (r *Registry) Update(name string, fn func(Player) Player) (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[name]
	if !ok {
		return Player{}, fmt.Errorf("%w: player %q", ErrNotFound, name)
	}

	updated := fn(p)
	updated.Name = name // key is immutable
	r.players[name] = updated

	return updated, nil
}

// UpdateScore replaces the player's score atomically.
func (r *Registry) UpdateScore(name string, score int) (Player, error) {
	return r.Update(name, func(p Player) Player {
		p.Score = score
		return p
	})
}

// ListAll returns a snapshot of all players in registration order.
func (r *Registry) ListAll() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Player, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.players[name])
	}
	return out
}
