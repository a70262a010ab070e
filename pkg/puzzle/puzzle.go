// Package puzzle defines the types shared by every puzzle solver and the
// code that runs them.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/errors"
)

// Part selects which of the two questions of a day is answered
type Part int

const (
	One Part = iota + 1
	Two
)

// Parts lists both parts in order
var Parts = []Part{One, Two}

func (p Part) String() string {
	switch p {
	case One:
		return "1"
	case Two:
		return "2"
	default:
		return "unknown"
	}
}

// Name is the lowercase word form used as a key in answer files
func (p Part) Name() string {
	switch p {
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return "unknown"
	}
}

// ParsePart accepts "1", "2", "one" or "two"
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one":
		return One, nil
	case "2", "two":
		return Two, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown part %q (expected 1 or 2)", s)
	}
}

// ID identifies a puzzle by event year and day of December
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string {
	return fmt.Sprintf("%d/%02d", id.Year, id.Day)
}

// IsZero reports whether the id was never set
func (id ID) IsZero() bool {
	return id.Year == 0 && id.Day == 0
}

// Compare orders ids by year, then day
func (id ID) Compare(other ID) int {
	if id.Year != other.Year {
		return id.Year - other.Year
	}
	return id.Day - other.Day
}

// Validate checks that the id names a day of an existing event
func (id ID) Validate() error {
	if id.Year < 2015 {
		return errors.Newf(errors.ErrInvalidInput, "year %d is before the first event (2015)", id.Year)
	}
	if id.Day < 1 || id.Day > 25 {
		return errors.Newf(errors.ErrInvalidInput, "day %d is outside 1-25", id.Day)
	}
	return nil
}

// ParseID builds an id from its year and day arguments. The day may be
// written "1", "01" or "day1".
func ParseID(year, day string) (ID, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return ID{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid year %q", year)
	}

	d, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(day)), "day"))
	if err != nil {
		return ID{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid day %q", day)
	}

	id := ID{Year: y, Day: d}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// ParseKey parses the "2020/01" form produced by String
func ParseKey(key string) (ID, error) {
	year, day, ok := strings.Cut(key, "/")
	if !ok {
		return ID{}, errors.Newf(errors.ErrInvalidInput, "invalid puzzle key %q (expected year/day)", key)
	}
	return ParseID(year, day)
}

// Output is what a solver produces for one part. Answer is the value to
// submit; Detail explains how it was reached and is meant for stderr.
type Output struct {
	Answer string
	Detail string
}

// Params carries configuration that some solvers depend on
type Params struct {
	// ExpenseTarget is the sum the expense report entries must reach
	ExpenseTarget uint64
}

// DefaultParams returns the values used by the puzzles as published
func DefaultParams() Params {
	return Params{ExpenseTarget: 2020}
}

// SolveFunc answers one part of a puzzle for the given input text
type SolveFunc func(params Params, input string, part Part) (Output, error)

// Puzzle is a registered solver with its metadata
type Puzzle struct {
	ID    ID
	Title string
	// Summary is a short markdown description shown by the describe command
	Summary string
	Solve   SolveFunc
}
