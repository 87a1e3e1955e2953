package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestDateKeyUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2024, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-02-29", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	i := WordIndex(d, "salt", 100)
	assert.Equal(t, i, WordIndex(d.Add(time.Hour), "salt", 100), "same day, same index")
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)
	assert.Equal(t, 0, WordIndex(d, "salt", 0))
}

func TestDaily(t *testing.T) {
	dict := words.Dictionary()
	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	w, i := Daily(dict, d, "salt")
	assert.Equal(t, dict[i].Word, w)

	w, i = Daily(nil, d, "salt")
	assert.Equal(t, words.Word{}, w)
	assert.Equal(t, 0, i)
}

func TestPick(t *testing.T) {
	dict := words.Dictionary()

	a := Pick(dict, "alpha", 20)
	require.Len(t, a, 20)
	assert.Equal(t, a, Pick(dict, "alpha", 20), "same salt, same sample")
	assert.NotEqual(t, a, Pick(dict, "beta", 20))

	pos := make(map[words.Word]int, len(dict))
	for i, e := range dict {
		pos[e.Word] = i
	}
	for i := 1; i < len(a); i++ {
		assert.Less(t, pos[a[i-1]], pos[a[i]], "sample keeps dictionary order")
	}

	assert.Len(t, Pick(dict, "alpha", 0), len(dict))
	assert.Len(t, Pick(dict, "alpha", len(dict)+5), len(dict))
}
