// Package input locates puzzle input files and splits their text into the
// shapes solvers work with.
package input

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
)

// Path expands an input file pattern for a puzzle and joins it to dir.
// Supported placeholders: {year}, {day} (zero padded) and {d} (unpadded).
func Path(dir, pattern string, id puzzle.ID) string {
	r := strings.NewReplacer(
		"{year}", strconv.Itoa(id.Year),
		"{day}", leftPad(id.Day),
		"{d}", strconv.Itoa(id.Day),
	)
	return filepath.Join(dir, r.Replace(pattern))
}

func leftPad(day int) string {
	if day < 10 {
		return "0" + strconv.Itoa(day)
	}
	return strconv.Itoa(day)
}

// PathFor resolves the input file of a puzzle from the configuration
func PathFor(cfg *config.Config, id puzzle.ID) string {
	return Path(cfg.Inputs.Dir, cfg.Inputs.Pattern, id)
}

// Load reads the configured input file of a puzzle
func Load(cfg *config.Config, id puzzle.ID) (string, error) {
	return Read(PathFor(cfg, id))
}

// Read loads an input file. Windows line endings are normalised and a
// trailing newline is dropped.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInputRead, "cannot read input %s", path).
			WithDetail("path", path)
	}
	return Normalize(string(data)), nil
}

// Exists reports whether an input file is present
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Normalize converts CRLF to LF and trims trailing newlines
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Lines splits text into lines. Empty text has no lines.
func Lines(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits text into groups separated by blank lines
func Blocks(s string) []string {
	var blocks []string
	for _, block := range strings.Split(Normalize(s), "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Fields splits each line into whitespace separated fields
func Fields(s string) [][]string {
	lines := Lines(s)
	fields := make([][]string, len(lines))
	for i, line := range lines {
		fields[i] = strings.Fields(line)
	}
	return fields
}

// Uints parses whitespace or newline separated unsigned integers
func Uints(s string) ([]uint64, error) {
	var numbers []uint64
	for i, line := range Lines(s) {
		for _, field := range strings.Fields(line) {
			n, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInputParse, "line %d: %q is not an unsigned integer", i+1, field).
					WithDetail("line", i+1)
			}
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}

// ParseErrorf builds an INPUT_PARSE error pointing at a 1-based line
func ParseErrorf(line int, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInputParse, "line %d: "+format, append([]interface{}{line}, args...)...).
		WithDetail("line", line)
}
