// apps/go-solver/internal/solver/vecrem.go

package solver

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Vecrem owns a private copy of the dictionary from construction and removes
// ruled-out words from it in place.
type Vecrem struct {
	remaining []words.Entry
}

func NewVecrem() *Vecrem {
	return &Vecrem{remaining: slices.Clone(words.Dictionary())}
}

func (v *Vecrem) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return Opening
	}
	last := history[len(history)-1]
	v.remaining = slices.DeleteFunc(v.remaining, func(e words.Entry) bool {
		return !last.Matches(e.Word)
	})
	return best(v.remaining, v.remaining, totalFrequency(v.remaining))
}
