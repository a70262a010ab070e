package y2020

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const passwordPhilosophySummary = `# Password Philosophy

Each line holds a policy and a password: ` + "`1-3 a: abcde`" + `.

- **Part 1** (sled rental rules): the letter must appear between 1 and 3
  times.
- **Part 2** (toboggan rules): exactly one of positions 1 and 3 (1-based)
  must hold the letter.

The answer is the number of valid passwords.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2020, Day: 2},
		Title:   "Password Philosophy",
		Summary: passwordPhilosophySummary,
		Solve:   solvePasswordPhilosophy,
	})
}

type passwordPolicy struct {
	letter rune
	min    int
	max    int
}

type passwordEntry struct {
	policy   passwordPolicy
	password string
}

func parsePasswordEntry(line string) (passwordEntry, error) {
	policyText, password, ok := strings.Cut(line, ":")
	if !ok {
		return passwordEntry{}, fmt.Errorf("password entry %q has no ':'", line)
	}

	rangeText, letterText, ok := strings.Cut(strings.TrimSpace(policyText), " ")
	if !ok {
		return passwordEntry{}, fmt.Errorf("policy %q has no letter", policyText)
	}
	minText, maxText, ok := strings.Cut(rangeText, "-")
	if !ok {
		return passwordEntry{}, fmt.Errorf("policy range %q has no '-'", rangeText)
	}

	lo, err := strconv.Atoi(minText)
	if err != nil {
		return passwordEntry{}, fmt.Errorf("policy minimum %q: %w", minText, err)
	}
	hi, err := strconv.Atoi(maxText)
	if err != nil {
		return passwordEntry{}, fmt.Errorf("policy maximum %q: %w", maxText, err)
	}
	letters := []rune(strings.TrimSpace(letterText))
	if len(letters) != 1 {
		return passwordEntry{}, fmt.Errorf("policy letter %q must be one character", letterText)
	}
	if lo < 1 || hi < lo {
		return passwordEntry{}, fmt.Errorf("policy range %d-%d is invalid", lo, hi)
	}

	return passwordEntry{
		policy:   passwordPolicy{letter: letters[0], min: lo, max: hi},
		password: strings.TrimSpace(password),
	}, nil
}

func (e passwordEntry) validForSledRental() bool {
	count := strings.Count(e.password, string(e.policy.letter))
	return count >= e.policy.min && count <= e.policy.max
}

func (e passwordEntry) validForToboggan() bool {
	letters := []rune(e.password)
	if e.policy.max > len(letters) {
		return false
	}
	first := letters[e.policy.min-1] == e.policy.letter
	second := letters[e.policy.max-1] == e.policy.letter
	return first != second
}

func solvePasswordPhilosophy(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	lines := input.Lines(in)

	valid := 0
	for i, line := range lines {
		entry, err := parsePasswordEntry(line)
		if err != nil {
			return puzzle.Output{}, input.ParseErrorf(i+1, "%v", err)
		}

		ok := entry.validForSledRental()
		if part == puzzle.Two {
			ok = entry.validForToboggan()
		}
		if ok {
			valid++
		}
	}

	return puzzle.Output{
		Answer: strconv.Itoa(valid),
		Detail: fmt.Sprintf("%d out of %d", valid, len(lines)),
	}, nil
}
