// apps/go-solver/internal/solver/weight.go
//
// Weight is the reference strategy: a copy-on-write candidate pool narrowed
// by the latest guess each round, then a full frequency-weighted entropy
// ranking of every remaining candidate.

package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Weight implements game.Guesser. Use one instance per game.
type Weight struct {
	remaining *pool.Pool
}

// NewWeight borrows the shared dictionary; nothing is copied until the
// first guess that rules a word out.
func NewWeight() *Weight {
	return newWeight(words.Dictionary())
}

func newWeight(dict []words.Entry) *Weight {
	return &Weight{remaining: pool.Borrow(dict)}
}

func (w *Weight) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return Opening
	}
	w.remaining.Narrow(history[len(history)-1])

	entries := w.remaining.Entries()
	return best(entries, entries, w.remaining.TotalFrequency())
}

// Remaining exposes the live pool, mostly for tracing.
func (w *Weight) Remaining() *pool.Pool { return w.remaining }
