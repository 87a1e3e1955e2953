package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func entries(ws ...string) []words.Entry {
	out := make([]words.Entry, len(ws))
	for i, w := range ws {
		out[i] = words.Entry{Word: words.MustParse(w), Freq: uint64(i + 1)}
	}
	return out
}

func played(answer, guess string) game.Guess {
	g := words.MustParse(guess)
	return game.Guess{Word: g, Mask: game.Compute(words.MustParse(answer), g)}
}

func TestBorrowSharesBase(t *testing.T) {
	base := entries("light", "might", "right")
	p := Borrow(base)
	assert.Equal(t, Borrowed, p.State())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, uint64(6), p.TotalFrequency())
	assert.Same(t, &base[0], &p.Entries()[0])
}

func TestNarrowWithoutRemovalStaysBorrowed(t *testing.T) {
	base := entries("light", "might", "right")
	p := Borrow(base)

	// no candidate has a "z", so nothing is ruled out
	p.Narrow(played("right", "zzzzz"))
	assert.Equal(t, Borrowed, p.State())
	assert.Equal(t, 3, p.Len())
}

func TestNarrowPromotesOnFirstRemoval(t *testing.T) {
	base := entries("light", "might", "right", "fight")
	snapshot := append([]words.Entry(nil), base...)
	p := Borrow(base)

	p.Narrow(played("right", "mould"))
	assert.Equal(t, Owned, p.State())
	assert.False(t, p.Contains(words.MustParse("might")))
	assert.True(t, p.Contains(words.MustParse("right")))
	assert.Equal(t, snapshot, base, "base must not be modified")

	before := p.Len()
	p.Narrow(played("right", "fight"))
	assert.Equal(t, Owned, p.State())
	assert.LessOrEqual(t, p.Len(), before)
	assert.True(t, p.Contains(words.MustParse("right")))
	assert.Equal(t, snapshot, base, "base must not be modified")
}

func TestNarrowPreservesOrder(t *testing.T) {
	p := Borrow(entries("about", "light", "other", "right", "sight", "tight"))
	p.Narrow(played("right", "about"))

	var got []string
	for _, e := range p.Entries() {
		got = append(got, e.Word.String())
	}
	assert.Equal(t, []string{"light", "right", "sight", "tight"}, got)
}

func TestNarrowMonotoneAndKeepsAnswer(t *testing.T) {
	dict := words.Dictionary()
	answers := []string{"right", "trace", "fuzzy", "world", "eight"}
	guesses := []string{"about", "crane", "sight", "house", "light", "tears"}

	for _, a := range answers {
		p := Borrow(dict)
		answer := words.MustParse(a)
		last := p.Len()
		for _, g := range guesses {
			p.Narrow(played(a, g))
			require.LessOrEqual(t, p.Len(), last, "answer %s after %s", a, g)
			require.True(t, p.Contains(answer), "answer %s filtered by %s", a, g)
			last = p.Len()
		}
	}
}
