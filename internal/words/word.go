// apps/go-solver/internal/words/word.go
//
// Word is the fixed-length value type used everywhere in the solver.
// A Word is exactly Length lowercase ASCII letters; equality is byte-exact
// and comparisons never allocate.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of letters in every word.
const Length = 5

var (
	ErrWordLength = errors.New("word must be exactly 5 letters")
	ErrWordChar   = errors.New("word must contain only letters a-z")
)

// Word is a 5-letter lowercase word.
type Word [Length]byte

// ParseWord validates s and converts it to a Word.
// Input is trimmed and lowercased first.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length {
		return w, fmt.Errorf("%q: %w", s, ErrWordLength)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%q: %w", s, ErrWordChar)
		}
		w[i] = c
	}
	return w, nil
}

// MustParse is ParseWord for constants; it panics on invalid input.
func MustParse(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }
