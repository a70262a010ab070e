package y2020

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

const passportProcessingSummary = `# Passport Processing

Passports are blank-line separated groups of ` + "`key:value`" + ` fields.

- **Part 1**: count passports that have all of byr, iyr, eyr, hgt, hcl, ecl
  and pid (cid is optional).
- **Part 2**: additionally require every field value to be valid: birth
  year 1920-2002, issue year 2010-2020, expiration year 2020-2030, height
  150-193cm or 59-76in, hair colour ` + "`#`" + ` plus six hex digits, eye
  colour one of amb blu brn gry grn hzl oth, passport id of nine digits.`

func init() {
	puzzles.Register(puzzle.Puzzle{
		ID:      puzzle.ID{Year: 2020, Day: 4},
		Title:   "Passport Processing",
		Summary: passportProcessingSummary,
		Solve:   solvePassportProcessing,
	})
}

var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

type passport map[string]string

func parsePassport(block string) (passport, error) {
	p := make(passport)
	for _, field := range strings.Fields(block) {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("field %q is not key:value", field)
		}
		p[key] = value
	}
	return p, nil
}

func (p passport) hasRequiredFields() bool {
	for _, field := range requiredPassportFields {
		if _, ok := p[field]; !ok {
			return false
		}
	}
	return true
}

func (p passport) isValid() bool {
	return p.hasRequiredFields() &&
		yearWithin(p["byr"], 1920, 2002) &&
		yearWithin(p["iyr"], 2010, 2020) &&
		yearWithin(p["eyr"], 2020, 2030) &&
		heightValid(p["hgt"]) &&
		hairColorValid(p["hcl"]) &&
		slices.Contains(eyeColors, p["ecl"]) &&
		len(p["pid"]) == 9 && allDigits(p["pid"])
}

func yearWithin(value string, lo, hi int) bool {
	return len(value) == 4 && numberWithin(value, lo, hi)
}

func numberWithin(value string, lo, hi int) bool {
	if !allDigits(value) {
		return false
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= lo && n <= hi
}

func heightValid(value string) bool {
	if number, ok := strings.CutSuffix(value, "cm"); ok {
		return numberWithin(number, 150, 193)
	}
	if number, ok := strings.CutSuffix(value, "in"); ok {
		return numberWithin(number, 59, 76)
	}
	return false
}

func hairColorValid(value string) bool {
	hex, ok := strings.CutPrefix(value, "#")
	if !ok || len(hex) != 6 {
		return false
	}
	return strings.Trim(hex, "0123456789abcdef") == ""
}

func allDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

func solvePassportProcessing(_ puzzle.Params, in string, part puzzle.Part) (puzzle.Output, error) {
	blocks := input.Blocks(in)

	valid := 0
	for i, block := range blocks {
		p, err := parsePassport(block)
		if err != nil {
			return puzzle.Output{}, input.ParseErrorf(i+1, "passport %d: %v", i+1, err)
		}

		ok := p.hasRequiredFields()
		if part == puzzle.Two {
			ok = p.isValid()
		}
		if ok {
			valid++
		}
	}

	return puzzle.Output{
		Answer: strconv.Itoa(valid),
		Detail: fmt.Sprintf("%d out of %d passports", valid, len(blocks)),
	}, nil
}
