// Package puzzles holds the global set of registered solvers. Year
// packages register their days from init(); import
// github.com/arthur-debert/aoc/pkg/puzzles/all to load every year.
package puzzles

import (
	"slices"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/registry"
)

var global = registry.New[puzzle.ID, puzzle.Puzzle](puzzle.ID.Compare)

// Register adds a puzzle to the global set. It panics on an invalid or
// duplicate id, which can only happen through a programming error.
func Register(p puzzle.Puzzle) {
	if err := p.ID.Validate(); err != nil {
		panic(err)
	}
	if p.Solve == nil {
		panic("puzzle " + p.ID.String() + " has no solve function")
	}
	registry.MustRegister(global, p.ID, p)
}

// Lookup returns the puzzle registered for id
func Lookup(id puzzle.ID) (puzzle.Puzzle, error) {
	p, err := global.Get(id)
	if err != nil {
		return puzzle.Puzzle{}, errors.Newf(errors.ErrPuzzleNotFound, "no solver registered for %s", id).
			WithDetail("year", id.Year).
			WithDetail("day", id.Day)
	}
	return p, nil
}

// All returns every registered puzzle ordered by year and day
func All() []puzzle.Puzzle {
	return global.Items()
}

// ForYear returns the puzzles of one event; year 0 means every year
func ForYear(year int) []puzzle.Puzzle {
	all := All()
	if year == 0 {
		return all
	}
	return slices.DeleteFunc(all, func(p puzzle.Puzzle) bool {
		return p.ID.Year != year
	})
}

// Years returns the distinct years that have at least one puzzle
func Years() []int {
	var years []int
	for _, id := range global.Keys() {
		if len(years) == 0 || years[len(years)-1] != id.Year {
			years = append(years, id.Year)
		}
	}
	return years
}
