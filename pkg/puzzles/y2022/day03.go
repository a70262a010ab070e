package y2022

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const rucksackSummary = `# Rucksack Reorganization

Each line lists the items of a rucksack. Item priorities are a-z = 1-26 and
A-Z = 27-52.

- **Part 1**: sum the priority of the item found in both halves of each
  rucksack.
- **Part 2**: sum the priority of the badge item shared by each group of
  three rucksacks.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2022, Day: 3},
		Title:   "Rucksack Reorganization",
		Summary: rucksackSummary,
		Solve:   solveRucksack,
	})
}

// itemSet is a bitmask of priorities 1-52
type itemSet uint64

func priority(item byte) (int, bool) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, true
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, true
	}
	return 0, false
}

func itemsOf(s string) (itemSet, error) {
	var set itemSet
	for i := 0; i < len(s); i++ {
		p, ok := priority(s[i])
		if !ok {
			return 0, fmt.Errorf("%q is not an item", s[i])
		}
		set |= 1 << p
	}
	return set, nil
}

// single returns the priority of the only item in the set
func (s itemSet) single() (int, bool) {
	if s == 0 || s&(s-1) != 0 {
		return 0, false
	}
	p := 0
	for s > 1 {
		s >>= 1
		p++
	}
	return p, true
}

func solveRucksack(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	lines := input.Lines(in)
	sets := make([]itemSet, len(lines))
	for i, line := range lines {
		if part == puzzle.One && len(line)%2 != 0 {
			return puzzle.Output{}, input.ParseErrorf(i+1, "rucksack %q cannot be split in two", line)
		}
		set, err := itemsOf(line)
		if err != nil {
			return puzzle.Output{}, input.ParseErrorf(i+1, "%v", err)
		}
		sets[i] = set
	}

	total := 0
	if part == puzzle.One {
		for i, line := range lines {
			left, _ := itemsOf(line[:len(line)/2])
			right, _ := itemsOf(line[len(line)/2:])
			p, ok := (left & right).single()
			if !ok {
				return puzzle.Output{}, input.ParseErrorf(i+1, "compartments must share exactly one item")
			}
			total += p
		}
		return puzzle.Output{
			Answer: strconv.Itoa(total),
			Detail: fmt.Sprintf("%d rucksacks", len(lines)),
		}, nil
	}

	if len(lines)%3 != 0 {
		return puzzle.Output{}, input.ParseErrorf(len(lines), "%d rucksacks do not form groups of three", len(lines))
	}
	for i := 0; i < len(sets); i += 3 {
		p, ok := (sets[i] & sets[i+1] & sets[i+2]).single()
		if !ok {
			return puzzle.Output{}, input.ParseErrorf(i+1, "group must share exactly one badge")
		}
		total += p
	}

	return puzzle.Output{
		Answer: strconv.Itoa(total),
		Detail: fmt.Sprintf("%d groups", len(lines)/3),
	}, nil
}
