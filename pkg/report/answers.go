package report

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/runner"
)

// LoadAnswers reads an answers file. Each table is a puzzle key and each
// entry a part:
//
//	["2020/01"]
//	one = "514579"
//	two = "241861950"
func LoadAnswers(path string) (runner.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "cannot read answers %s", path).
			WithDetail("path", path)
	}

	answers, err := ParseAnswers(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputParse, "invalid answers file %s", path).
			WithDetail("path", path)
	}
	return answers, nil
}

// ParseAnswers decodes answers TOML. Integer answers are accepted and kept
// in their decimal form.
func ParseAnswers(data []byte) (runner.Answers, error) {
	var raw map[string]map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "malformed TOML")
	}

	answers := make(runner.Answers, len(raw))
	for key, parts := range raw {
		id, err := puzzle.ParseKey(key)
		if err != nil {
			return nil, err
		}

		expected := make(map[puzzle.Part]string, len(parts))
		for name, value := range parts {
			part, err := puzzle.ParsePart(name)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInputParse, "puzzle %s", key)
			}

			switch v := value.(type) {
			case string:
				expected[part] = v
			case int64:
				expected[part] = strconv.FormatInt(v, 10)
			default:
				return nil, errors.Newf(errors.ErrInputParse, "puzzle %s part %s: answer must be a string or integer", key, name)
			}
		}
		answers[id] = expected
	}
	return answers, nil
}
