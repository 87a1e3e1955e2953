// apps/go-solver/internal/game/play.go
//
// Game loop: drives one strategy against one hidden answer.

package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// MaxRounds bounds a game. It is well above the usual six so that benchmark
// score distributions are not cut off.
const MaxRounds = 32

// ErrUnknownGuess is returned when a strategy plays a word that is not in
// the dictionary. It indicates a strategy bug.
var ErrUnknownGuess = errors.New("guess not in dictionary")

// Outcome is the result of one game.
// Solved=false means the answer was not found within MaxRounds.
type Outcome struct {
	Rounds  int     // round on which the answer was guessed (1-indexed)
	Solved  bool    // false: failure sentinel, Rounds is meaningless
	History []Guess // every non-winning guess, in play order
}

// Play runs g against answer for up to MaxRounds rounds.
// The history slice belongs to Play; g only reads it.
func Play(answer words.Word, g Guesser) (Outcome, error) {
	history := make([]Guess, 0, 8)
	for round := 1; round <= MaxRounds; round++ {
		guess := g.Guess(history)
		if guess == answer {
			return Outcome{Rounds: round, Solved: true, History: history}, nil
		}
		if !words.IsAllowed(guess) {
			return Outcome{History: history}, fmt.Errorf("round %d: %q: %w", round, guess, ErrUnknownGuess)
		}
		mask := Compute(answer, guess)
		history = append(history, Guess{Word: guess, Mask: mask})

		log.Trace().
			Str("answer", answer.String()).
			Int("round", round).
			Str("guess", guess.String()).
			Str("mask", mask.String()).
			Msg("round played")
	}
	return Outcome{History: history}, nil
}
