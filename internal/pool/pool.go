// apps/go-solver/internal/pool/pool.go
//
// Copy-on-write candidate pool.
//
// A Pool starts Borrowed: it references a shared, read-only base slice (the
// process-wide dictionary) and costs nothing to create. The first Narrow that
// actually removes an entry promotes it to Owned by building a private
// filtered copy; from then on narrowing filters that copy in place.
// The base slice is never written.

package pool

import (
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// State tells whether a pool still shares its base.
type State uint8

const (
	Borrowed State = iota
	Owned
)

func (s State) String() string {
	if s == Owned {
		return "owned"
	}
	return "borrowed"
}

// Pool is the set of entries still consistent with every narrowing so far.
// A Pool is not safe for concurrent use; each strategy owns its own.
type Pool struct {
	state   State
	entries []words.Entry // base while Borrowed, private copy once Owned
}

// Borrow returns a pool viewing base without copying it.
func Borrow(base []words.Entry) *Pool {
	return &Pool{state: Borrowed, entries: base}
}

// State reports whether the pool has been privatized.
func (p *Pool) State() State { return p.state }

// Entries returns the live entries in base order.
// The slice is only valid until the next Narrow and must not be modified.
func (p *Pool) Entries() []words.Entry { return p.entries }

// Len returns the number of live entries.
func (p *Pool) Len() int { return len(p.entries) }

// Narrow drops every entry that latest does not match. Earlier guesses are
// assumed to have been applied by earlier calls.
func (p *Pool) Narrow(latest game.Guess) {
	keep := func(e words.Entry) bool { return latest.Matches(e.Word) }

	if p.state == Owned {
		p.entries = slices.DeleteFunc(p.entries, func(e words.Entry) bool { return !keep(e) })
		return
	}

	first := slices.IndexFunc(p.entries, func(e words.Entry) bool { return !keep(e) })
	if first < 0 {
		return
	}
	owned := make([]words.Entry, first, len(p.entries)-1)
	copy(owned, p.entries[:first])
	for _, e := range p.entries[first+1:] {
		if keep(e) {
			owned = append(owned, e)
		}
	}
	p.entries = owned
	p.state = Owned
}

// TotalFrequency sums the frequencies of the live entries.
// It is recomputed on each call since the pool changes every round.
func (p *Pool) TotalFrequency() uint64 {
	var sum uint64
	for _, e := range p.entries {
		sum += e.Freq
	}
	return sum
}

// Contains reports whether w is still a live candidate.
func (p *Pool) Contains(w words.Word) bool {
	return slices.ContainsFunc(p.entries, func(e words.Entry) bool { return e.Word == w })
}
