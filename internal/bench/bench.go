// apps/go-solver/internal/bench/bench.go
//
// Benchmark driver: plays one game per answer with a chosen strategy and
// aggregates the round counts.
//
// Every game gets its own strategy instance, so games share nothing mutable
// except the read-only dictionary and the concurrency-safe result store.
// Games run on a bounded errgroup; the first error (a strategy emitting a
// non-dictionary word, or cancellation) stops the run.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config controls a benchmark run.
type Config struct {
	Strategy string    // registered strategy name
	Workers  int       // concurrent games; <= 0 means runtime.NumCPU()
	Progress io.Writer // progress bar destination; nil disables it
	Store    store.Store
}

// Report is the outcome of a run.
type Report struct {
	Strategy   string        `json:"strategy" yaml:"strategy"`
	Dictionary string        `json:"dictionary" yaml:"dictionary"` // blake2b digest
	Workers    int           `json:"workers" yaml:"workers"`
	Wall       time.Duration `json:"wall" yaml:"wall"`

	store.Summary `yaml:",inline"`
}

// Run plays every answer and summarizes the results.
func Run(ctx context.Context, cfg Config, answers []words.Word) (Report, error) {
	factory, err := solver.Lookup(cfg.Strategy)
	if err != nil {
		return Report{}, err
	}
	if len(answers) == 0 {
		return Report{}, errors.New("bench: no answers to play")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := cfg.Store
	if results == nil {
		results = store.NewMemoryStore()
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(len(answers),
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription(cfg.Strategy),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	log.Info().
		Str("strategy", cfg.Strategy).
		Int("answers", len(answers)).
		Int("workers", workers).
		Msg("bench started")

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, answer := range answers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := playOne(answer, cfg.Strategy, factory)
			if err != nil {
				return err
			}
			if err := results.Save(gctx, r); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("bench %s: %w", cfg.Strategy, err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("bench %s: %w", cfg.Strategy, err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	list, err := results.List(ctx)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Strategy:   cfg.Strategy,
		Dictionary: words.Digest(),
		Workers:    workers,
		Wall:       time.Since(start),
		Summary:    store.Summarize(list),
	}

	log.Info().
		Str("strategy", rep.Strategy).
		Int("games", rep.Games).
		Int("failed", rep.Failed).
		Float64("mean", rep.MeanRounds).
		Dur("wall", rep.Wall).
		Msg("bench finished")
	return rep, nil
}

func playOne(answer words.Word, strategy string, factory solver.Factory) (store.Result, error) {
	start := time.Now()
	out, err := game.Play(answer, factory())
	if err != nil {
		return store.Result{}, fmt.Errorf("answer %s: %w", answer, err)
	}
	r := store.Result{
		Answer:   answer.String(),
		Strategy: strategy,
		Solved:   out.Solved,
		Elapsed:  time.Since(start),
	}
	if out.Solved {
		r.Rounds = out.Rounds
	} else {
		log.Warn().Str("answer", r.Answer).Str("strategy", strategy).Msg("not solved within round limit")
	}
	return r, nil
}
