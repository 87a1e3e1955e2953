// apps/go-solver/internal/store/memory.go
//
// In-memory implementation of the result Store interface.
// Benchmark workers save one Result per simulated game; the driver reads
// them back to build a Summary.
//
// Characteristics:
//   - Stores Results keyed by answer word.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - List returns results in the order they were first saved.

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("not found")

// Result is the outcome of one simulated game.
type Result struct {
	Answer   string        `json:"answer" yaml:"answer"`
	Strategy string        `json:"strategy" yaml:"strategy"`
	Rounds   int           `json:"rounds" yaml:"rounds"` // 0 when not solved
	Solved   bool          `json:"solved" yaml:"solved"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Store defines the persistence interface for game results.
type Store interface {
	// Save records or replaces the result for r.Answer.
	Save(ctx context.Context, r Result) error

	// Get retrieves the result for an answer.
	// Returns ErrNotFound if no game with that answer was saved.
	Get(ctx context.Context, answer string) (Result, error)

	// List returns every saved result.
	List(ctx context.Context) ([]Result, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results and order
	results map[string]Result // keyed by Result.Answer
	order   []string          // answers in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

func (m *memory) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.Answer]; !ok {
		m.order = append(m.order, r.Answer)
	}
	m.results[r.Answer] = r
	return nil
}

func (m *memory) Get(ctx context.Context, answer string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[answer]; ok {
		return r, nil
	}
	return Result{}, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.order))
	for _, a := range m.order {
		out = append(out, m.results[a])
	}
	return out, nil
}
