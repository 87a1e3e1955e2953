// apps/go-solver/commands.go
//
// CLI surface.
//   - play <answer>          play one game and print every round
//   - bench                  play every (or a sampled set of) answer(s), print a summary
//   - daily                  play the day's deterministic answer
//   - suggest guess:MASK...  next guess for a real game in progress
//   - strategies, dict       introspection
//
// Flag defaults come from the environment, so the tree is built after
// main has loaded .env.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/sample"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// options holds flag values shared by the subcommands.
type options struct {
	strategy  string
	workers   int
	sampleN   int
	salt      string
	format    string
	progress  bool
	dailyDate string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Simulate and benchmark Wordle solving strategies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&o.strategy, "strategy", "s", getEnv("SOLVER_STRATEGY", solver.DefaultStrategy),
		"strategy: "+strings.Join(solver.Names(), ", "))

	root.AddCommand(
		newPlayCmd(o),
		newBenchCmd(o),
		newDailyCmd(o),
		newSuggestCmd(o),
		newStrategiesCmd(),
		newDictCmd(),
	)
	return root
}

func newPlayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play <answer>",
		Short: "Play one game against a hidden answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := words.ParseWord(args[0])
			if err != nil {
				return err
			}
			if !words.IsAllowed(answer) {
				return fmt.Errorf("%s: not in dictionary", answer)
			}
			return playAndPrint(cmd, o.strategy, answer)
		},
	}
}

func newBenchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every dictionary answer and summarize the round counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cfg := bench.Config{Strategy: o.strategy, Workers: o.workers}
			if o.progress {
				cfg.Progress = cmd.ErrOrStderr()
			}
			rep, err := bench.Run(ctx, cfg, sample.Pick(words.Dictionary(), o.salt, o.sampleN))
			if err != nil {
				return err
			}
			return rep.Render(cmd.OutOrStdout(), o.format)
		},
	}

	defWorkers := runtime.NumCPU()
	if n, err := strconv.Atoi(getEnv("BENCH_WORKERS", "")); err == nil && n > 0 {
		defWorkers = n
	}
	cmd.Flags().IntVarP(&o.workers, "workers", "w", defWorkers, "concurrent games")
	cmd.Flags().IntVarP(&o.sampleN, "sample", "n", 0, "play only N answers picked by --salt (0 = all)")
	cmd.Flags().StringVar(&o.salt, "salt", getEnv("DAILY_SALT", "local_dev_salt"), "salt for --sample")
	cmd.Flags().StringVarP(&o.format, "format", "f", bench.FormatText, "output format: text, json, yaml")
	cmd.Flags().BoolVarP(&o.progress, "progress", "p", false, "show a progress bar on stderr")
	return cmd
}

func newDailyCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Play the deterministic answer of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if o.dailyDate != "" {
				d, err := time.Parse("2006-01-02", o.dailyDate)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				date = d
			}
			answer, idx := sample.Daily(words.Dictionary(), date, o.salt)
			log.Info().Str("date", sample.DateKey(date)).Int("index", idx).Msg("daily answer selected")
			return playAndPrint(cmd, o.strategy, answer)
		},
	}
	cmd.Flags().StringVar(&o.dailyDate, "date", "", "date as YYYY-MM-DD (default today, UTC)")
	cmd.Flags().StringVar(&o.salt, "salt", getEnv("DAILY_SALT", "local_dev_salt"), "salt for the daily answer")
	return cmd
}

func newSuggestCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "suggest [guess:MASK ...]",
		Short:   "Suggest the next guess given feedback so far (MASK letters: C/M/W or G/Y/B)",
		Example: "  wordle-solver suggest trace:WMWWW sight:WCCCC",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := parseHistory(args)
			if err != nil {
				return err
			}
			g, err := solver.New(o.strategy)
			if err != nil {
				return err
			}
			// strategies narrow incrementally, so feed the history one round at a time
			next := g.Guess(nil)
			for i := range history {
				next = g.Guess(history[:i+1])
			}

			left := 0
			for _, e := range words.Dictionary() {
				if game.Consistent(history, e.Word) {
					left++
				}
			}
			if left == 0 {
				log.Warn().Msg("no dictionary word fits this feedback")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%d candidates)\n", next, left)
			return nil
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range solver.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

func newDictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dict",
		Short: "Show dictionary statistics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			n, total := words.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "entries\t%d\nfrequency\t%d\ndigest\t%s\n", n, total, words.Digest())
		},
	}
}

// parseHistory turns "word:MASK" arguments into guesses.
func parseHistory(args []string) ([]game.Guess, error) {
	history := make([]game.Guess, 0, len(args))
	for _, a := range args {
		word, mask, ok := strings.Cut(a, ":")
		if !ok {
			return nil, fmt.Errorf("%q: want guess:MASK", a)
		}
		w, err := words.ParseWord(word)
		if err != nil {
			return nil, err
		}
		m, err := game.ParseMask(mask)
		if err != nil {
			return nil, err
		}
		history = append(history, game.Guess{Word: w, Mask: m})
	}
	return history, nil
}

func playAndPrint(cmd *cobra.Command, strategy string, answer words.Word) error {
	g, err := solver.New(strategy)
	if err != nil {
		return err
	}
	out, err := game.Play(answer, g)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, h := range out.History {
		fmt.Fprintf(w, "%2d  %s  %s\n", i+1, h.Word, h.Mask)
	}
	if !out.Solved {
		fmt.Fprintf(w, "not solved in %d rounds\n", game.MaxRounds)
		return nil
	}
	fmt.Fprintf(w, "%2d  %s  %s\n", out.Rounds, answer, game.Compute(answer, answer))
	fmt.Fprintf(w, "solved in %d\n", out.Rounds)
	return nil
}
