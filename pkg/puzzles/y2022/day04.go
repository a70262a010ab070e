package y2022

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const campCleanupSummary = `# Camp Cleanup

Each line is a pair of section ranges: ` + "`2-4,6-8`" + `.

- **Part 1**: count pairs where one range fully contains the other.
- **Part 2**: count pairs whose ranges overlap at all.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2022, Day: 4},
		Title:   "Camp Cleanup",
		Summary: campCleanupSummary,
		Solve:   solveCampCleanup,
	})
}

type sections struct {
	start, end int
}

func (s sections) contains(other sections) bool {
	return s.start <= other.start && other.end <= s.end
}

func (s sections) overlaps(other sections) bool {
	return s.start <= other.end && other.start <= s.end
}

type overlap int

const (
	noOverlap overlap = iota
	partialOverlap
	fullOverlap
)

func compareSections(a, b sections) overlap {
	switch {
	case a.contains(b) || b.contains(a):
		return fullOverlap
	case a.overlaps(b):
		return partialOverlap
	}
	return noOverlap
}

func parseSectionPair(line string) (sections, sections, error) {
	var a, b sections
	n, err := fmt.Sscanf(line, "%d-%d,%d-%d", &a.start, &a.end, &b.start, &b.end)
	if err != nil || n != 4 {
		return a, b, fmt.Errorf("%q is not a pair of ranges", line)
	}
	if a.start > a.end || b.start > b.end {
		return a, b, fmt.Errorf("%q has a reversed range", line)
	}
	return a, b, nil
}

func solveCampCleanup(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	lines := input.Lines(in)

	count := 0
	for i, line := range lines {
		a, b, err := parseSectionPair(line)
		if err != nil {
			return puzzle.Output{}, input.ParseErrorf(i+1, "%v", err)
		}

		status := compareSections(a, b)
		if status == fullOverlap || (part == puzzle.Two && status == partialOverlap) {
			count++
		}
	}

	return puzzle.Output{
		Answer: strconv.Itoa(count),
		Detail: fmt.Sprintf("%d out of %d pairs", count, len(lines)),
	}, nil
}
