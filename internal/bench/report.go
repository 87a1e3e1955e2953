// apps/go-solver/internal/bench/report.go

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes the report to w in the given format.
func (r Report) Render(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return r.renderText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func (r Report) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "strategy\t%s\n", r.Strategy)
	fmt.Fprintf(tw, "dictionary\t%.12s\n", r.Dictionary)
	fmt.Fprintf(tw, "games\t%d\n", r.Games)
	fmt.Fprintf(tw, "solved\t%d\n", r.Solved)
	fmt.Fprintf(tw, "failed\t%d\n", r.Failed)
	fmt.Fprintf(tw, "mean rounds\t%.4f\n", r.MeanRounds)
	fmt.Fprintf(tw, "max rounds\t%d\n", r.MaxRounds)
	fmt.Fprintf(tw, "wall\t%s\n", r.Wall.Round(time.Millisecond))
	for _, b := range r.Histogram {
		pct := 0.0
		if r.Games > 0 {
			pct = 100 * float64(b.Games) / float64(r.Games)
		}
		fmt.Fprintf(tw, "  %d\t%d\t%5.1f%%\t%s\n", b.Rounds, b.Games, pct, strings.Repeat("#", int(pct/2)))
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(tw, "failures\t%s\n", strings.Join(r.Failures, " "))
	}
	return tw.Flush()
}
