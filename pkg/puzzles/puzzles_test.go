package puzzles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
	_ "github.com/arthur-debert/aoc/pkg/puzzles/all"
)

func TestAllRegistered(t *testing.T) {
	var keys []string
	for _, p := range puzzles.All() {
		keys = append(keys, p.ID.String())
		assert.NotEmpty(t, p.Title, p.ID.String())
		assert.NotEmpty(t, p.Summary, p.ID.String())
	}

	assert.Equal(t, []string{
		"2020/01", "2020/02", "2020/03", "2020/04",
		"2022/01", "2022/02", "2022/03", "2022/04", "2022/05",
	}, keys)
	assert.Equal(t, []int{2020, 2022}, puzzles.Years())
}

func TestForYear(t *testing.T) {
	assert.Len(t, puzzles.ForYear(2020), 4)
	assert.Len(t, puzzles.ForYear(2022), 5)
	assert.Len(t, puzzles.ForYear(0), 9)
	assert.Empty(t, puzzles.ForYear(2019))
}

func TestLookup(t *testing.T) {
	p, err := puzzles.Lookup(puzzle.ID{Year: 2020, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "Report Repair", p.Title)

	_, err = puzzles.Lookup(puzzle.ID{Year: 2020, Day: 25})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPuzzleNotFound))
	assert.Equal(t, 25, errors.GetErrorDetails(err)["day"])
}

func TestRegisterRejectsBadPuzzles(t *testing.T) {
	solve := func(puzzle.Params, string, puzzle.Part) (puzzle.Output, error) {
		return puzzle.Output{}, nil
	}

	assert.Panics(t, func() {
		puzzles.Register(puzzle.Puzzle{ID: puzzle.ID{Year: 2020, Day: 1}, Solve: solve})
	}, "duplicate id")
	assert.Panics(t, func() {
		puzzles.Register(puzzle.Puzzle{ID: puzzle.ID{Year: 2021, Day: 40}, Solve: solve})
	}, "invalid day")
	assert.Panics(t, func() {
		puzzles.Register(puzzle.Puzzle{ID: puzzle.ID{Year: 2021, Day: 1}})
	}, "missing solve func")
}
