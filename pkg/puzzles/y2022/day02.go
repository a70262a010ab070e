package y2022

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const rockPaperScissorsSummary = `# Rock Paper Scissors

Each line of the strategy guide is the opponent's shape (A, B, C for rock,
paper, scissors) and a second column X, Y or Z. A round scores the shape
played (1, 2, 3) plus the outcome (0 loss, 3 draw, 6 win).

- **Part 1**: the second column is the shape to play.
- **Part 2**: the second column is the outcome needed (lose, draw, win).`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2022, Day: 2},
		Title:   "Rock Paper Scissors",
		Summary: rockPaperScissorsSummary,
		Solve:   solveRockPaperScissors,
	})
}

type shape int

const (
	rock shape = iota
	paper
	scissors
)

func (s shape) score() int {
	return int(s) + 1
}

// beats returns the shape that s defeats
func (s shape) beats() shape {
	return (s + 2) % 3
}

// losesTo returns the shape that defeats s
func (s shape) losesTo() shape {
	return (s + 1) % 3
}

type outcome int

const (
	loss outcome = 0
	draw outcome = 3
	win  outcome = 6
)

func play(mine, theirs shape) outcome {
	switch {
	case mine == theirs:
		return draw
	case mine.beats() == theirs:
		return win
	default:
		return loss
	}
}

func parseColumn(s string, base byte) (int, bool) {
	if len(s) != 1 || s[0] < base || s[0] > base+2 {
		return 0, false
	}
	return int(s[0] - base), true
}

func solveRockPaperScissors(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	lines := input.Lines(in)

	total := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return puzzle.Output{}, input.ParseErrorf(i+1, "expected two columns, got %q", line)
		}
		opponent, ok := parseColumn(fields[0], 'A')
		if !ok {
			return puzzle.Output{}, input.ParseErrorf(i+1, "unknown opponent shape %q", fields[0])
		}
		column, ok := parseColumn(fields[1], 'X')
		if !ok {
			return puzzle.Output{}, input.ParseErrorf(i+1, "unknown strategy %q", fields[1])
		}

		theirs := shape(opponent)
		var mine shape
		if part == puzzle.One {
			mine = shape(column)
		} else {
			switch column {
			case 0:
				mine = theirs.beats()
			case 1:
				mine = theirs
			default:
				mine = theirs.losesTo()
			}
		}

		total += mine.score() + int(play(mine, theirs))
	}

	return puzzle.Output{
		Answer: strconv.Itoa(total),
		Detail: fmt.Sprintf("%d rounds", len(lines)),
	}, nil
}
