// apps/go-solver/internal/store/summary.go

package store

import (
	"slices"
	"time"
)

// Bucket is one histogram bar: how many games were solved in Rounds guesses.
type Bucket struct {
	Rounds int `json:"rounds" yaml:"rounds"`
	Games  int `json:"games" yaml:"games"`
}

// Summary aggregates a set of results.
type Summary struct {
	Games      int           `json:"games" yaml:"games"`
	Solved     int           `json:"solved" yaml:"solved"`
	Failed     int           `json:"failed" yaml:"failed"`
	MeanRounds float64       `json:"meanRounds" yaml:"meanRounds"` // over solved games
	MaxRounds  int           `json:"maxRounds" yaml:"maxRounds"`
	Histogram  []Bucket      `json:"histogram" yaml:"histogram"` // ascending by Rounds
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`     // sum over games
	Failures   []string      `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Summarize computes aggregate statistics over results.
func Summarize(results []Result) Summary {
	var s Summary
	counts := make(map[int]int)
	rounds := 0
	for _, r := range results {
		s.Games++
		s.Elapsed += r.Elapsed
		if !r.Solved {
			s.Failed++
			s.Failures = append(s.Failures, r.Answer)
			continue
		}
		s.Solved++
		rounds += r.Rounds
		counts[r.Rounds]++
		s.MaxRounds = max(s.MaxRounds, r.Rounds)
	}
	if s.Solved > 0 {
		s.MeanRounds = float64(rounds) / float64(s.Solved)
	}
	for n, c := range counts {
		s.Histogram = append(s.Histogram, Bucket{Rounds: n, Games: c})
	}
	slices.SortFunc(s.Histogram, func(a, b Bucket) int { return a.Rounds - b.Rounds })
	slices.Sort(s.Failures)
	return s
}
