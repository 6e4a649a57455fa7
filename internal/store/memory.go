// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is the default journal: penalties of the running game, kept in a map
// keyed by game ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Penalties(ctx, id) returns ErrNotFound for an unknown game.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when no penalty was ever recorded for a game.
var ErrNotFound = errors.New("store: game not found")

// Penalty is one quarter charged to a player at the end of a round.
type Penalty struct {
	GameID   string
	Round    int    // 1-based round number
	Player   int    // zero-based seat index
	Kind     string // "H" or "R"
	Outcome  string // verdict that ended the round
	Buffer   string // letters on the table when the round ended
	Word     string // word named by the verdict, if any
	Quarters int    // player's total after the charge
	At       time.Time
}

// Store defines the journal interface for penalties.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Record appends a penalty to its game.
	Record(ctx context.Context, p Penalty) error

	// Penalties lists a game's penalties in round order.
	// Returns ErrNotFound if the game has none.
	Penalties(ctx context.Context, gameID string) ([]Penalty, error)

	// Close releases the backing resources.
	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex         // guards games map
	games map[string][]Penalty // keyed by Penalty.GameID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string][]Penalty)}
}

// Record appends p to its game's list.
func (m *memory) Record(ctx context.Context, p Penalty) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[p.GameID] = append(m.games[p.GameID], p)
	return nil
}

// Penalties returns a copy of the game's penalties sorted by round.
func (m *memory) Penalties(ctx context.Context, gameID string) ([]Penalty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list, ok := m.games[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	out := append([]Penalty(nil), list...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out, nil
}

func (m *memory) Close() error { return nil }
