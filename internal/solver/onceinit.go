// apps/go-solver/internal/solver/onceinit.go

package solver

import (
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// computedOpening ranks the whole dictionary once per process. Every OnceInit
// instance shares the result.
var computedOpening = sync.OnceValue(func() words.Word {
	dict := words.Dictionary()
	return best(dict, dict, totalFrequency(dict))
})

// OnceInit derives its opening from the dictionary instead of using the
// hard-coded one, and does not touch the dictionary at all until the first
// round with feedback.
type OnceInit struct {
	remaining *pool.Pool
}

func NewOnceInit() *OnceInit { return &OnceInit{} }

func (o *OnceInit) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return computedOpening()
	}
	if o.remaining == nil {
		o.remaining = pool.Borrow(words.Dictionary())
	}
	o.remaining.Narrow(history[len(history)-1])

	entries := o.remaining.Entries()
	return best(entries, entries, o.remaining.TotalFrequency())
}
