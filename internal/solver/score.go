// apps/go-solver/internal/solver/score.go
//
// Frequency-weighted entropy scoring shared by every strategy.
//
// For a candidate guess w against a pool P with total weight T:
//   bucket(p)   = Σ freq(c) for c in P with Compute(c, w) == p
//   entropy(w)  = -Σ_p (bucket(p)/T)·log2(bucket(p)/T), empty buckets skipped
//   goodness(w) = freq(w)/T · entropy(w)
//
// Ranking is O(|candidates|·|P|) mask computations plus a fixed 243-wide pass
// per candidate. The buckets live on the stack; nothing in the loops allocates.

package solver

import (
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	// Opening is played on an empty history. It was picked offline for its
	// combined first- and second-guess expected score.
	Opening = words.MustParse("trace")

	// Fallback is returned if the pool is ever empty, which real play
	// cannot produce.
	Fallback = words.MustParse("cigar")
)

// MaxEntropy is the entropy of a uniform split over every pattern.
var MaxEntropy = math.Log2(game.NumPatterns)

// Entropy returns, in bits, the entropy of the feedback guess would receive
// if the answer were drawn from pool with probability proportional to
// frequency. total must be the pool's total frequency.
func Entropy(guess words.Word, pool []words.Entry, total uint64) float64 {
	if total == 0 {
		return 0
	}
	var buckets [game.NumPatterns]uint64
	for _, c := range pool {
		buckets[game.Compute(c.Word, guess).Index()] += c.Freq
	}

	var sum float64
	for p := range game.Patterns() {
		weight := buckets[p.Index()]
		if weight == 0 {
			continue
		}
		prob := float64(weight) / float64(total)
		sum += prob * math.Log2(prob)
	}
	return -sum
}

// Goodness weights entropy by the word's own prior of being the answer.
func Goodness(freq, total uint64, entropy float64) float64 {
	if total == 0 {
		return 0
	}
	return float64(freq) / float64(total) * entropy
}

func totalFrequency(entries []words.Entry) uint64 {
	var sum uint64
	for _, e := range entries {
		sum += e.Freq
	}
	return sum
}

// best ranks candidates against pool and returns the first one with the
// strictly greatest goodness, or Fallback when there are no candidates.
// Ties go to the earliest candidate, so results follow dictionary order.
func best(candidates, pool []words.Entry, total uint64) words.Word {
	var (
		bestWord  = Fallback
		bestScore float64
		found     bool
	)
	for _, e := range candidates {
		g := Goodness(e.Freq, total, Entropy(e.Word, pool, total))
		if !found || g > bestScore {
			bestWord, bestScore, found = e.Word, g, true
		}
	}
	return bestWord
}
