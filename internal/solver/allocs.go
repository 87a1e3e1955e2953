// apps/go-solver/internal/solver/allocs.go

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Allocs sizes everything it needs at construction: a bitmap of live
// dictionary indices and a candidate buffer with room for the whole
// dictionary. Guess never allocates.
type Allocs struct {
	dict []words.Entry
	live *bitset.BitSet
	buf  []words.Entry
}

func NewAllocs() *Allocs {
	dict := words.Dictionary()
	live := bitset.New(uint(len(dict)))
	live.FlipRange(0, uint(len(dict)))
	return &Allocs{
		dict: dict,
		live: live,
		buf:  make([]words.Entry, 0, len(dict)),
	}
}

func (a *Allocs) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return Opening
	}
	last := history[len(history)-1]

	a.buf = a.buf[:0]
	for i, ok := a.live.NextSet(0); ok; i, ok = a.live.NextSet(i + 1) {
		e := a.dict[i]
		if last.Matches(e.Word) {
			a.buf = append(a.buf, e)
		} else {
			a.live.Clear(i)
		}
	}
	return best(a.buf, a.buf, totalFrequency(a.buf))
}

// Live returns how many dictionary words are still candidates.
func (a *Allocs) Live() int { return int(a.live.Count()) }
