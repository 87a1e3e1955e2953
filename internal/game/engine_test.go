package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func mask(t *testing.T, s string) Mask {
	t.Helper()
	m, err := ParseMask(s)
	require.NoError(t, err)
	return m
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name          string
		answer, guess string
		want          string
	}{
		{"all green", "abcde", "abcde", "CCCCC"},
		{"all gray", "abcde", "fghij", "WWWWW"},
		{"all yellow", "abcde", "eabcd", "MMMMM"},
		{"repeat green", "aabbb", "aaccc", "CCWWW"},
		{"repeat yellow", "aabbb", "ccaac", "WWMMW"},
		{"repeat some green", "aabbb", "caacc", "WCMWW"},
		{"only one yellow", "azzaz", "aaabb", "CMWWW"},
		{"only one green", "baccc", "aaddd", "WCWWW"},
		{"only one gray", "abcde", "aacde", "CWCCC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(words.MustParse(tc.answer), words.MustParse(tc.guess))
			assert.Equal(t, mask(t, tc.want), got)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, g := words.MustParse("crane"), words.MustParse("nacre")
	first := Compute(a, g)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(a, g))
	}
}

func TestPatterns(t *testing.T) {
	seen := make(map[Mask]bool, NumPatterns)
	i := 0
	for p := range Patterns() {
		assert.Equal(t, i, p.Index(), "patterns must be yielded in index order")
		assert.False(t, seen[p], "duplicate pattern %s", p)
		seen[p] = true
		i++
	}
	assert.Equal(t, NumPatterns, i)

	// restartable
	n := 0
	for range Patterns() {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)

	var first, last Mask
	for p := range Patterns() {
		if p.Index() == 0 {
			first = p
		}
		last = p
	}
	assert.Equal(t, "CCCCC", first.String())
	assert.Equal(t, "WWWWW", last.String())
}

func TestParseMask(t *testing.T) {
	m, err := ParseMask("gy.bC")
	require.NoError(t, err)
	assert.Equal(t, "CMWWC", m.String())

	_, err = ParseMask("CCC")
	assert.Error(t, err)
	_, err = ParseMask("CCCCX")
	assert.Error(t, err)
}

func TestMatchesSymmetry(t *testing.T) {
	dict := words.Dictionary()
	for i := 0; i < len(dict); i += 7 {
		for j := 0; j < len(dict); j += 11 {
			answer, guess := dict[i].Word, dict[j].Word
			g := Guess{Word: guess, Mask: Compute(answer, guess)}
			assert.True(t, g.Matches(answer), "%s vs %s", answer, guess)
		}
	}
}

func TestMatchesWholeMask(t *testing.T) {
	g := Guess{Word: words.MustParse("aaccc"), Mask: mask(t, "CCWWW")}
	assert.True(t, g.Matches(words.MustParse("aabbb")))
	// agrees on the first two greens but its final 'c' would be green too
	assert.False(t, g.Matches(words.MustParse("aabbc")))
}

func TestConsistent(t *testing.T) {
	answer := words.MustParse("right")
	history := []Guess{
		{Word: words.MustParse("trace"), Mask: Compute(answer, words.MustParse("trace"))},
		{Word: words.MustParse("light"), Mask: Compute(answer, words.MustParse("light"))},
	}
	assert.True(t, Consistent(history, answer))
	assert.True(t, Consistent(nil, words.MustParse("zzzzz")))
	assert.False(t, Consistent(history, words.MustParse("light")))
}
