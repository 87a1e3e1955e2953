// apps/go-solver/internal/sample/sample.go
//
// Deterministic answer selection.
//   - WordIndex: the "daily" answer for a date, HMAC(salt, YYYY-MM-DD) % n.
//   - Pick: a reproducible subset of dictionary answers for benchmarks,
//     ranked by HMAC(salt, word) and returned in dictionary order.
//
// The same salt always yields the same answers, so benchmark runs over a
// sample are comparable across strategies and machines.

package sample

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"slices"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(key(salt, []byte(DateKey(date))) % uint64(n))
}

// Daily returns the answer for date.
func Daily(entries []words.Entry, date time.Time, salt string) (words.Word, int) {
	if len(entries) == 0 {
		return words.Word{}, 0
	}
	i := WordIndex(date, salt, len(entries))
	return entries[i].Word, i
}

// Pick returns n answers chosen by salt, in dictionary order.
// n <= 0 or n >= len(entries) returns every word.
func Pick(entries []words.Entry, salt string, n int) []words.Word {
	if n <= 0 || n >= len(entries) {
		out := make([]words.Word, len(entries))
		for i, e := range entries {
			out[i] = e.Word
		}
		return out
	}

	type ranked struct {
		idx int
		key uint64
	}
	all := make([]ranked, len(entries))
	for i, e := range entries {
		all[i] = ranked{idx: i, key: key(salt, e.Word[:])}
	}
	slices.SortFunc(all, func(a, b ranked) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return a.idx - b.idx
	})

	chosen := all[:n]
	slices.SortFunc(chosen, func(a, b ranked) int { return a.idx - b.idx })
	out := make([]words.Word, n)
	for i, r := range chosen {
		out[i] = entries[r.idx].Word
	}
	return out
}

// key takes the first 8 bytes of HMAC-SHA256(salt, msg).
func key(salt string, msg []byte) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write(msg)
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}
