// apps/go-solver/internal/game/engine.go
//
// Feedback rules shared by the game loop and every strategy.
// Responsibilities:
//   - Compute the mask for a guess against an answer (duplicate-letter aware).
//   - Enumerate all 243 masks in a fixed order.
//   - Decide whether a candidate answer is consistent with a past guess.
//
// Nothing here allocates; words and masks are fixed-size arrays.

package game

import (
	"iter"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Compute scores guess against answer.
//
// Pass 1 marks exact matches Correct and reserves those answer positions.
// Pass 2 walks the remaining guess letters left to right; each one claims the
// leftmost unreserved occurrence in the answer (Misplaced) or is Wrong.
// An answer letter can satisfy at most one guess letter.
func Compute(answer, guess words.Word) Mask {
	var m Mask
	var used [words.Length]bool

	for i := range guess {
		if answer[i] == guess[i] {
			m[i] = Correct
			used[i] = true
		} else {
			m[i] = Wrong
		}
	}

	for i := range guess {
		if m[i] == Correct {
			continue
		}
		for j := range answer {
			if !used[j] && answer[j] == guess[i] {
				used[j] = true
				m[i] = Misplaced
				break
			}
		}
	}
	return m
}

// Patterns yields every possible mask once, in Index order
// (CCCCC, CCCCM, CCCCW, CCCMC, ... WWWWW).
func Patterns() iter.Seq[Mask] {
	return func(yield func(Mask) bool) {
		for i := 0; i < NumPatterns; i++ {
			var m Mask
			n := i
			for p := words.Length - 1; p >= 0; p-- {
				m[p] = Correctness(n % 3)
				n /= 3
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Matches reports whether candidate could be the answer given that g.Word
// received g.Mask. The candidate is treated as the hypothetical answer and
// the mask recomputed; the whole mask must be equal.
func (g Guess) Matches(candidate words.Word) bool {
	return Compute(candidate, g.Word) == g.Mask
}

// Consistent reports whether candidate matches every guess in history.
func Consistent(history []Guess, candidate words.Word) bool {
	for _, g := range history {
		if !g.Matches(candidate) {
			return false
		}
	}
	return true
}
