package y2020

import (
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/nsum"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const reportRepairSummary = `# Report Repair

The expense report is a list of numbers, one per line.

- **Part 1**: find the two entries that sum to 2020 and multiply them.
- **Part 2**: do the same with three entries.

The target sum can be changed with the ` + "`puzzles.expense_target`" + ` setting.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2020, Day: 1},
		Title:   "Report Repair",
		Summary: reportRepairSummary,
		Solve:   solveReportRepair,
	})
}

func solveReportRepair(params puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	entries, err := input.Uints(in)
	if err != nil {
		return puzzle.Output{}, err
	}

	n := 2
	if part == puzzle.Two {
		n = 3
	}

	// Search the sorted report; factors are listed last pick first
	slices.Sort(entries)
	picked, err := nsum.Find(entries, n, params.ExpenseTarget)
	if err != nil {
		return puzzle.Output{}, err
	}
	slices.Reverse(picked)

	product, err := multiply(picked)
	if err != nil {
		return puzzle.Output{}, err
	}

	factors := make([]string, len(picked))
	for i, v := range picked {
		factors[i] = strconv.FormatUint(v, 10)
	}
	answer := strconv.FormatUint(product, 10)

	return puzzle.Output{
		Answer: answer,
		Detail: strings.Join(factors, " × ") + " = " + answer,
	}, nil
}

func multiply(values []uint64) (uint64, error) {
	product := uint64(1)
	for _, v := range values {
		if v != 0 && product > ^uint64(0)/v {
			return 0, errors.Newf(errors.ErrInputParse, "product of %v overflows 64 bits", values)
		}
		product *= v
	}
	return product, nil
}
