package y2022

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const supplyStacksSummary = `# Supply Stacks

The input is a drawing of crate stacks followed by a blank line and a list
of ` + "`move N from A to B`" + ` instructions.

- **Part 1**: the crane moves crates one at a time.
- **Part 2**: the crane moves N crates at once, keeping their order.

The answer is the top crate of each stack.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2022, Day: 5},
		Title:   "Supply Stacks",
		Summary: supplyStacksSummary,
		Solve:   solveSupplyStacks,
	})
}

var moveInstruction = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type move struct {
	quantity int
	from     int
	to       int
}

// stacks holds crates bottom first; stack 1 is at index 0
type stacks [][]byte

func parseDrawing(drawing string) (stacks, error) {
	rows := strings.Split(drawing, "\n")
	labels := strings.Fields(rows[len(rows)-1])
	if len(labels) == 0 {
		return nil, fmt.Errorf("drawing has no stack labels")
	}
	for i, label := range labels {
		if label != strconv.Itoa(i+1) {
			return nil, fmt.Errorf("stack label %q out of sequence", label)
		}
	}

	s := make(stacks, len(labels))
	for r := len(rows) - 2; r >= 0; r-- {
		row := rows[r]
		for k := range s {
			col := 1 + 4*k
			if col >= len(row) || row[col] == ' ' {
				continue
			}
			s[k] = append(s[k], row[col])
		}
	}
	return s, nil
}

func parseMoves(text string, stackCount int) ([]move, error) {
	lines := input.Lines(text)
	moves := make([]move, 0, len(lines))
	for i, line := range lines {
		m := moveInstruction.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, fmt.Errorf("instruction %d: %q is not a move", i+1, line)
		}
		quantity, _ := strconv.Atoi(m[1])
		from, _ := strconv.Atoi(m[2])
		to, _ := strconv.Atoi(m[3])
		if from < 1 || from > stackCount || to < 1 || to > stackCount {
			return nil, fmt.Errorf("instruction %d: stack out of range in %q", i+1, line)
		}
		moves = append(moves, move{quantity: quantity, from: from - 1, to: to - 1})
	}
	return moves, nil
}

func (s stacks) apply(m move, keepOrder bool) error {
	from := s[m.from]
	if m.quantity > len(from) {
		return fmt.Errorf("cannot move %d crates from stack %d holding %d", m.quantity, m.from+1, len(from))
	}

	split := len(from) - m.quantity
	picked := append([]byte(nil), from[split:]...)
	s[m.from] = from[:split]
	if !keepOrder {
		for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
			picked[i], picked[j] = picked[j], picked[i]
		}
	}
	s[m.to] = append(s[m.to], picked...)
	return nil
}

func (s stacks) tops() string {
	var b strings.Builder
	for _, stack := range s {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}
	return b.String()
}

func solveSupplyStacks(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	drawing, instructions, ok := strings.Cut(input.Normalize(in), "\n\n")
	if !ok {
		return puzzle.Output{}, input.ParseErrorf(1, "missing blank line between drawing and instructions")
	}
	drawingLines := strings.Count(drawing, "\n") + 1

	s, err := parseDrawing(drawing)
	if err != nil {
		return puzzle.Output{}, input.ParseErrorf(drawingLines, "%v", err)
	}
	moves, err := parseMoves(instructions, len(s))
	if err != nil {
		return puzzle.Output{}, input.ParseErrorf(drawingLines+1, "%v", err)
	}

	for i, m := range moves {
		if err := s.apply(m, part == puzzle.Two); err != nil {
			return puzzle.Output{}, input.ParseErrorf(drawingLines+2+i, "%v", err)
		}
	}

	return puzzle.Output{
		Answer: s.tops(),
		Detail: fmt.Sprintf("%d moves across %d stacks", len(moves), len(s)),
	}, nil
}
