// apps/go-solver/internal/solver/registry.go
//
// Name → constructor lookup so callers can pick a strategy at runtime.
// Every constructor returns a fresh instance; instances must not be shared
// between games.

package solver

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// DefaultStrategy is the strongest strategy.
const DefaultStrategy = "weight"

var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory builds a new strategy instance.
type Factory func() game.Guesser

var registry = map[string]Factory{
	"weight":   func() game.Guesser { return NewWeight() },
	"naive":    func() game.Guesser { return NewNaive() },
	"allocs":   func() game.Guesser { return NewAllocs() },
	"vecrem":   func() game.Guesser { return NewVecrem() },
	"onceinit": func() game.Guesser { return NewOnceInit() },
	"prune":    func() game.Guesser { return NewPrune() },
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w (want one of %s)", name, ErrUnknownStrategy, strings.Join(Names(), ", "))
	}
	return f, nil
}

// New builds a fresh instance of the named strategy.
func New(name string) (game.Guesser, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
