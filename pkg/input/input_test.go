package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/puzzle"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		id      puzzle.ID
		want    string
	}{
		{"padded_day", "{year}/{day}.txt", puzzle.ID{Year: 2020, Day: 1}, filepath.Join("inputs", "2020", "01.txt")},
		{"unpadded_day", "{year}/day{d}.txt", puzzle.ID{Year: 2022, Day: 5}, filepath.Join("inputs", "2022", "day5.txt")},
		{"two_digit_day", "{year}-{day}", puzzle.ID{Year: 2022, Day: 12}, filepath.Join("inputs", "2022-12")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Path("inputs", tt.pattern, tt.id))
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01.txt")
	require.NoError(t, os.WriteFile(path, []byte("1721\r\n979\r\n\n"), 0644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1721\n979", got)
	assert.True(t, Exists(path))

	t.Run("missing_file", func(t *testing.T) {
		missing := filepath.Join(dir, "nope.txt")
		_, err := Read(missing)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
		assert.Equal(t, missing, errors.GetErrorDetails(err)["path"])
		assert.False(t, Exists(missing))
		assert.False(t, Exists(dir))
	})
}

func TestLinesAndBlocks(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb"))

	assert.Equal(t, []string{"1\n2", "3", "4\n5"}, Blocks("1\n2\n\n3\n\n\n4\n5\n"))
	assert.Nil(t, Blocks("\n\n"))
}

func TestUints(t *testing.T) {
	got, err := Uints("1721\n979 366\n\n299\n")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1721, 979, 366, 299}, got)

	_, err = Uints("12\n-4\n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputParse))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
}

func TestParseErrorf(t *testing.T) {
	err := ParseErrorf(7, "expected %d fields, got %d", 3, 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputParse))
	assert.Equal(t, "[INPUT_PARSE] line 7: expected 3 fields, got 2", err.Error())
}

func TestLoad(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Inputs.Dir = t.TempDir()

	id := puzzle.ID{Year: 2020, Day: 1}
	assert.Equal(t, filepath.Join(cfg.Inputs.Dir, "2020", "01.txt"), PathFor(cfg, id))

	_, err = Load(cfg, id)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Inputs.Dir, "2020"), 0755))
	require.NoError(t, os.WriteFile(PathFor(cfg, id), []byte("1721\n299\n"), 0644))

	got, err := Load(cfg, id)
	require.NoError(t, err)
	assert.Equal(t, "1721\n299", got)
	assert.True(t, Exists(PathFor(cfg, id)))
}

func TestFields(t *testing.T) {
	assert.Equal(t, [][]string{{"A", "Y"}, {"B", "X"}, {}}, Fields("A Y\nB  X\n   \n"))
	assert.Empty(t, Fields(""))
}
