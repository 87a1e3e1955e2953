// apps/go-solver/internal/words/words.go
//
// Provides dictionary management for the solver.
//
// Responsibilities:
//   - Parse the "<word> <frequency>" resource into an ordered []Entry.
//   - Load it exactly once per process (sync.Once) and share it read-only.
//   - Supply lookups and metadata: IsAllowed, Stats, Digest.
//
// Initialization behavior (Init):
//   1. If WORDS_DICTIONARY_FILE is set, load that file.
//   2. Otherwise use the embedded assets/dictionary.txt.
//
// Constraints:
//   • Every line must be a 5-letter a–z word, one space, and a base-10 integer.
//   • Any malformed line fails the whole load; there is no partial dictionary.
//   • Entry order is preserved from the resource and never changes afterward.

package words

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

var (
	ErrMalformedLine   = errors.New("malformed dictionary line")
	ErrEmptyDictionary = errors.New("dictionary is empty")
)

// Entry is one dictionary word with its usage frequency.
// Frequency is a relative prior; it is never normalized.
type Entry struct {
	Word Word
	Freq uint64
}

var (
	initOnce   sync.Once
	entries    []Entry           // dictionary order
	allowedSet map[Word]struct{} // every dictionary word
	total      uint64            // sum of all frequencies
	digest     string            // blake2b-256 of the raw resource
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resource is missing or malformed.
func Init() error {
	initOnce.Do(func() {
		raw := assets.Dictionary()
		source := "embedded"
		if path := os.Getenv("WORDS_DICTIONARY_FILE"); path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				initialErr = fmt.Errorf("read dictionary: %w", err)
				return
			}
			raw, source = b, path
		}

		list, err := Parse(bytes.NewReader(raw))
		if err != nil {
			initialErr = fmt.Errorf("load dictionary from %s: %w", source, err)
			return
		}

		entries = list
		allowedSet = make(map[Word]struct{}, len(list))
		for _, e := range list {
			allowedSet[e.Word] = struct{}{}
			total += e.Freq
		}
		sum := blake2b.Sum256(raw)
		digest = hex.EncodeToString(sum[:])

		log.Debug().
			Str("source", source).
			Int("entries", len(entries)).
			Str("digest", digest[:12]).
			Msg("dictionary loaded")
	})
	return initialErr
}

// Parse reads "<word> <frequency>" lines from r.
// Blank lines are skipped; anything else that does not parse is an error
// naming the offending line.
func Parse(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		word, count, ok := strings.Cut(text, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: %w: want \"<word> <frequency>\"", line, ErrMalformedLine)
		}
		w, err := ParseWord(word)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		freq, err := strconv.ParseUint(count, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: frequency %q", line, ErrMalformedLine, count)
		}
		out = append(out, Entry{Word: w, Freq: freq})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyDictionary
	}
	return out, nil
}

// Dictionary returns the shared dictionary in resource order.
// The slice is shared by every caller and must be treated as read-only.
// It panics if the dictionary failed to load; main calls Init first and
// exits on error, so reaching the panic is a programming error.
func Dictionary() []Entry {
	if err := Init(); err != nil {
		panic(err)
	}
	return entries
}

// IsAllowed reports whether w is a dictionary word.
func IsAllowed(w Word) bool {
	if Init() != nil {
		return false
	}
	_, ok := allowedSet[w]
	return ok
}

// Stats returns the number of entries and the sum of their frequencies.
func Stats() (count int, totalFrequency uint64) {
	if Init() != nil {
		return 0, 0
	}
	return len(entries), total
}

// Digest returns the hex blake2b-256 digest of the loaded resource, so that
// benchmark results can be tied to the exact dictionary they ran against.
func Digest() string {
	if Init() != nil {
		return ""
	}
	return digest
}
