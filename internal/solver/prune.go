// apps/go-solver/internal/solver/prune.go

package solver

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultShortlist is how many candidates Prune ranks with full entropy.
const DefaultShortlist = 24

// Prune narrows like Weight, but ranks candidates with a cheap letter-split
// score first and only runs the entropy scorer on the best few. Large pools
// get much cheaper rounds at the cost of sometimes missing the best guess.
type Prune struct {
	remaining *pool.Pool
	shortlist int
	order     []int         // scratch: candidate indices by cheap score
	cheap     []uint64      // scratch: cheap score per candidate
	picked    []words.Entry // scratch: shortlisted entries in pool order
}

func NewPrune() *Prune {
	return newPrune(words.Dictionary(), DefaultShortlist)
}

func newPrune(dict []words.Entry, shortlist int) *Prune {
	return &Prune{remaining: pool.Borrow(dict), shortlist: shortlist}
}

func (p *Prune) Guess(history []game.Guess) words.Word {
	if len(history) == 0 {
		return Opening
	}
	p.remaining.Narrow(history[len(history)-1])

	entries := p.remaining.Entries()
	total := p.remaining.TotalFrequency()
	if len(entries) <= p.shortlist {
		return best(entries, entries, total)
	}
	return best(p.prune(entries, total), entries, total)
}

// prune returns the shortlist, kept in pool order so ties still resolve by
// dictionary order.
func (p *Prune) prune(entries []words.Entry, total uint64) []words.Entry {
	// letterWeight[l] is the frequency mass of candidates containing l.
	var letterWeight [26]uint64
	for _, e := range entries {
		var seen uint32
		for _, c := range e.Word {
			bit := uint32(1) << (c - 'a')
			if seen&bit == 0 {
				seen |= bit
				letterWeight[c-'a'] += e.Freq
			}
		}
	}

	// A letter is most useful when it splits the pool's mass in half.
	p.cheap = p.cheap[:0]
	p.order = p.order[:0]
	for i, e := range entries {
		var seen uint32
		var score uint64
		for _, c := range e.Word {
			bit := uint32(1) << (c - 'a')
			if seen&bit != 0 {
				continue
			}
			seen |= bit
			w := letterWeight[c-'a']
			score += min(w, total-w)
		}
		p.cheap = append(p.cheap, score)
		p.order = append(p.order, i)
	}

	slices.SortStableFunc(p.order, func(a, b int) int {
		switch {
		case p.cheap[a] > p.cheap[b]:
			return -1
		case p.cheap[a] < p.cheap[b]:
			return 1
		}
		return 0
	})
	top := p.order[:p.shortlist]
	slices.Sort(top)

	p.picked = p.picked[:0]
	for _, i := range top {
		p.picked = append(p.picked, entries[i])
	}
	return p.picked
}
