// apps/go-solver/internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Correctness: per-letter result of a guess (correct/misplaced/wrong).
//   - Mask: the full 5-letter feedback for one guess.
//   - Guess: one past attempt and the mask it received.
//   - Guesser: the strategy contract driven by Play.

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Correctness represents the evaluation result for a single letter in a guess.
type Correctness uint8

const (
	Correct   Correctness = iota // green: right letter, right position
	Misplaced                    // yellow: letter is elsewhere in the answer
	Wrong                        // gray: no unaccounted occurrence in the answer
)

// NumPatterns is the number of distinct masks (3^5).
const NumPatterns = 243

// Mask is the feedback for a whole guess, one Correctness per position.
type Mask [words.Length]Correctness

// Index returns the mask's position in Patterns order, 0..NumPatterns-1.
// Position 0 is the most significant base-3 digit.
func (m Mask) Index() int {
	i := 0
	for _, c := range m {
		i = i*3 + int(c)
	}
	return i
}

// String renders a mask as C/M/W letters, e.g. "CMWWC".
func (m Mask) String() string {
	var b strings.Builder
	for _, c := range m {
		switch c {
		case Correct:
			b.WriteByte('C')
		case Misplaced:
			b.WriteByte('M')
		default:
			b.WriteByte('W')
		}
	}
	return b.String()
}

// ParseMask is the inverse of Mask.String. It also accepts G/Y/B
// (green/yellow/black) and is case-insensitive.
func ParseMask(s string) (Mask, error) {
	var m Mask
	if len(s) != words.Length {
		return m, fmt.Errorf("mask %q: must be %d letters", s, words.Length)
	}
	for i := 0; i < words.Length; i++ {
		switch s[i] {
		case 'C', 'c', 'G', 'g':
			m[i] = Correct
		case 'M', 'm', 'Y', 'y':
			m[i] = Misplaced
		case 'W', 'w', 'B', 'b', '.':
			m[i] = Wrong
		default:
			return m, fmt.Errorf("mask %q: unknown mark %q", s, s[i])
		}
	}
	return m, nil
}

// Guess is one round of history: the word played and the feedback it got.
type Guess struct {
	Word words.Word
	Mask Mask
}

// Guesser is a solving strategy. Guess is called once per round with the
// full history so far; the history is owned by the caller and read-only.
type Guesser interface {
	Guess(history []Guess) words.Word
}
