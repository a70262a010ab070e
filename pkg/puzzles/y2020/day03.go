package y2020

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const tobogganTrajectorySummary = `# Toboggan Trajectory

The map is a grid of open squares (` + "`.`" + `) and trees (` + "`#`" + `) that
repeats to the right forever.

- **Part 1**: count the trees hit going right 3, down 1 from the top left.
- **Part 2**: multiply the tree counts of slopes (1,1), (3,1), (5,1), (7,1)
  and (1,2).`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2020, Day: 3},
		Title:   "Toboggan Trajectory",
		Summary: tobogganTrajectorySummary,
		Solve:   solveTobogganTrajectory,
	})
}

type slope struct {
	right int
	down  int
}

var surveySlopes = []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

type forest []string

func parseForest(in string) (forest, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, input.ParseErrorf(1, "map is empty")
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width || width == 0 {
			return nil, input.ParseErrorf(i+1, "row has width %d, expected %d", len(line), width)
		}
		if strings.Trim(line, ".#") != "" {
			return nil, input.ParseErrorf(i+1, "row %q holds something other than '.' and '#'", line)
		}
	}
	return forest(lines), nil
}

func (f forest) treesOn(s slope) int {
	trees := 0
	x := 0
	for y := 0; y < len(f); y += s.down {
		row := f[y]
		if row[x%len(row)] == '#' {
			trees++
		}
		x += s.right
	}
	return trees
}

func solveTobogganTrajectory(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	f, err := parseForest(in)
	if err != nil {
		return puzzle.Output{}, err
	}

	if part == puzzle.One {
		trees := f.treesOn(slope{right: 3, down: 1})
		return puzzle.Output{
			Answer: strconv.Itoa(trees),
			Detail: fmt.Sprintf("%d trees in %d lines", trees, len(f)),
		}, nil
	}

	product := 1
	details := make([]string, 0, len(surveySlopes))
	for _, s := range surveySlopes {
		trees := f.treesOn(s)
		product *= trees
		details = append(details, fmt.Sprintf("Right %d, Down %d, Trees %d", s.right, s.down, trees))
	}

	return puzzle.Output{
		Answer: strconv.Itoa(product),
		Detail: strings.Join(details, "\n"),
	}, nil
}
