package y2022

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const calorieCountingSummary = `# Calorie Counting

Each elf's inventory is a blank-line separated group of calorie values.

- **Part 1**: the most calories carried by a single elf.
- **Part 2**: the calories carried by the top three elves together.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2022, Day: 1},
		Title:   "Calorie Counting",
		Summary: calorieCountingSummary,
		Solve:   solveCalorieCounting,
	})
}

func elfTotals(in string) ([]uint64, error) {
	blocks := input.Blocks(in)
	totals := make([]uint64, 0, len(blocks))
	for i, block := range blocks {
		values, err := input.Uints(block)
		if err != nil {
			return nil, fmt.Errorf("elf %d: %w", i+1, err)
		}
		var total uint64
		for _, v := range values {
			total += v
		}
		totals = append(totals, total)
	}
	return totals, nil
}

func solveCalorieCounting(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	totals, err := elfTotals(in)
	if err != nil {
		return puzzle.Output{}, err
	}
	if len(totals) == 0 {
		return puzzle.Output{}, input.ParseErrorf(1, "no elf inventories")
	}

	slices.SortFunc(totals, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	top := 1
	if part == puzzle.Two {
		top = min(3, len(totals))
	}

	var sum uint64
	for _, total := range totals[:top] {
		sum += total
	}

	return puzzle.Output{
		Answer: strconv.FormatUint(sum, 10),
		Detail: fmt.Sprintf("top %d of %d elves: %v", top, len(totals), totals[:top]),
	}, nil
}
