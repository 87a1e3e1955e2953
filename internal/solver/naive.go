// apps/go-solver/internal/solver/naive.go

package solver

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Naive copies the dictionary up front and allocates a fresh filtered slice
// every round.
type Naive struct {
	remaining []words.Entry
}

func NewNaive() *Naive {
	return &Naive{remaining: slices.Clone(words.Dictionary())}
}

func (n *Naive) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return Opening
	}
	last := history[len(history)-1]

	var next []words.Entry
	for _, e := range n.remaining {
		if last.Matches(e.Word) {
			next = append(next, e)
		}
	}
	n.remaining = next
	return best(next, next, totalFrequency(next))
}
