// cmd/aoc/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Registered solvers, temp working and input directories
// PURPOSE: Test the command line end to end through Execute

package aoc

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aoc/pkg/config"
	_ "github.com/arthur-debert/aoc/pkg/puzzles/all"
	"github.com/arthur-debert/aoc/pkg/testutil"
)

const (
	expenseReport = "1721\n979\n366\n299\n675\n1456\n"
	calories      = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"
)

// sandbox moves the test into an isolated environment and returns its
// inputs directory holding the given files
func sandbox(t *testing.T, files map[string]string) string {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	for name, content := range files {
		testutil.CreateFile(t, env.InputsDir, name, content)
	}
	return env.InputsDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.CreateFile(t, filepath.Dir(path), filepath.Base(path), content)
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunCommand(t *testing.T) {
	sandbox(t, map[string]string{"2020/01.txt": expenseReport})

	t.Run("both_parts", func(t *testing.T) {
		code, out, errOut := execute(t, "run", "2020", "1")
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "514579\n241861950\n", out)
		assert.Contains(t, errOut, "2020/01 part 1: 1721 × 299 = 514579")
	})

	t.Run("single_part", func(t *testing.T) {
		code, out, _ := execute(t, "run", "2020", "day01", "--part", "2")
		assert.Equal(t, 0, code)
		assert.Equal(t, "241861950\n", out)
	})

	t.Run("explicit_input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "small.txt")
		writeFile(t, path, "1000\n1020\n5\n")

		code, out, _ := execute(t, "run", "2020", "1", "-p", "1", "--input", path)
		assert.Equal(t, 0, code)
		assert.Equal(t, "1020000\n", out)
	})

	t.Run("json", func(t *testing.T) {
		code, out, _ := execute(t, "run", "2020", "1", "--format", "json")
		require.Equal(t, 0, code)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "2020/01", decoded["puzzle"])
	})
}

func TestRunCommandErrors(t *testing.T) {
	sandbox(t, nil)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"missing_arguments", []string{"run", "2020"}, MsgErrArgsRun},
		{"all_with_arguments", []string{"run", "--all", "2020"}, MsgErrArgsRunAll},
		{"all_with_input", []string{"run", "--all", "--input", "x.txt"}, MsgErrFlagsRunAll},
		{"unknown_puzzle", []string{"run", "2019", "1"}, "no solver registered for 2019/01"},
		{"bad_day", []string{"run", "2020", "26"}, "day 26 is outside 1-25"},
		{"bad_part", []string{"run", "2020", "1", "--part", "3"}, "3"},
		{"missing_input", []string{"run", "2020", "1"}, "cannot read input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error: ")
			assert.Contains(t, errOut, tt.message)
		})
	}

	t.Run("json_error", func(t *testing.T) {
		code, _, errOut := execute(t, "run", "2019", "1", "--format", "json")
		assert.Equal(t, 1, code)
		assert.JSONEq(t, `{"error":"no solver registered for 2019/01","code":"PUZZLE_NOT_FOUND"}`, errOut)
	})
}

func TestRunAllCommand(t *testing.T) {
	inputs := sandbox(t, map[string]string{
		"2020/01.txt": expenseReport,
		"2022/01.txt": calories,
	})

	t.Run("every_year", func(t *testing.T) {
		code, out, errOut := execute(t, "run", "--all")
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, "2020/01 Report Repair")
		assert.Contains(t, out, "2022/01 Calorie Counting")
		assert.Contains(t, out, "24000")
		assert.Contains(t, out, "45000")
	})

	t.Run("one_year", func(t *testing.T) {
		code, out, _ := execute(t, "run", "--all", "--year", "2022")
		assert.Equal(t, 0, code)
		assert.NotContains(t, out, "2020/01")
		assert.Contains(t, out, "2022/01")
	})

	t.Run("failures_set_exit_code", func(t *testing.T) {
		writeFile(t, filepath.Join(inputs, "2020", "02.txt"), "1-3 a abcde\nbad line\n")

		code, out, errOut := execute(t, "run", "--all", "--year", "2020")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "2020/01 Report Repair")
		assert.Contains(t, out, "error:")
		assert.Contains(t, errOut, "1 of 2 puzzles failed")
	})
}

func TestListCommand(t *testing.T) {
	sandbox(t, nil)

	code, out, _ := execute(t, "list", "--year", "2020")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "2020/01  Report Repair\n")
	assert.NotContains(t, out, "2022/")

	code, out, _ = execute(t, "list", "--format", "json")
	require.Equal(t, 0, code)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotEmpty(t, decoded)
	assert.Equal(t, "2020/01", decoded[0]["puzzle"])
}

func TestDescribeCommand(t *testing.T) {
	sandbox(t, nil)

	code, out, errOut := execute(t, "describe", "2020", "1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "# Report Repair")
	assert.Contains(t, out, "Input: `"+filepath.Join("inputs", "2020", "01.txt")+"`")

	code, _, errOut = execute(t, "describe", "2019", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no solver registered")
}

func TestCheckCommand(t *testing.T) {
	sandbox(t, map[string]string{"2020/01.txt": expenseReport})

	t.Run("passing", func(t *testing.T) {
		writeFile(t, "answers.toml", "[\"2020/01\"]\n1 = \"514579\"\n2 = 241861950\n")

		code, out, errOut := execute(t, "check")
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, "PASS  2020/01 part 1  514579")
		assert.Contains(t, out, "2 checked: 2 passed, 0 failed, 0 errors")
	})

	t.Run("mismatch_with_junit", func(t *testing.T) {
		answers := filepath.Join(t.TempDir(), "wrong.toml")
		writeFile(t, answers, "[\"2020/01\"]\n1 = \"1\"\n")
		junit := filepath.Join(t.TempDir(), "reports", "junit.xml")
		testutil.AssertNoFile(t, junit)

		code, out, errOut := execute(t, "check", "--answers", answers, "--junit", junit)
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "FAIL  2020/01 part 1  expected 1, got 514579")
		assert.Contains(t, errOut, "1 of 1 answers did not match")
		require.True(t, testutil.FileExists(t, junit))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(testutil.ReadFile(t, junit)))
		suite := doc.FindElement("//testsuite")
		require.NotNil(t, suite)
		assert.Equal(t, "1", suite.SelectAttrValue("failures", ""))
	})

	t.Run("missing_answers", func(t *testing.T) {
		code, _, errOut := execute(t, "check", "--answers", "nope.toml")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Error: ")
	})
}

func TestConfigCommand(t *testing.T) {
	inputs := sandbox(t, nil)

	code, out, _ := execute(t, "config", "--defaults")
	require.Equal(t, 0, code)
	assert.Equal(t, config.DefaultsContent(), out)

	code, out, _ = execute(t, "config", "--inputs", inputs)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "dir = '"+inputs+"'")

	writeFile(t, "aoc.toml", "[run]\nparallelism = 9\n")
	code, out, _ = execute(t, "config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "parallelism = 9")

	writeFile(t, "broken.toml", "[output]\nformat = \"xml\"\n")
	code, _, errOut := execute(t, "config", "--config", "broken.toml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "output.format")
}

func TestMiscCommands(t *testing.T) {
	sandbox(t, nil)

	t.Run("version", func(t *testing.T) {
		code, out, _ := execute(t, "version")
		assert.Equal(t, 0, code)
		assert.Equal(t, "aoc dev (commit unknown, built unknown)\n", out)
	})

	t.Run("completion", func(t *testing.T) {
		code, out, _ := execute(t, "completion", "bash")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "bash completion")

		code, _, _ = execute(t, "completion", "tcsh")
		assert.Equal(t, 1, code)
	})

	t.Run("no_command", func(t *testing.T) {
		code, out, errOut := execute(t)
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "aoc")
		assert.Contains(t, errOut, MsgErrNoCommand)
	})
}

func TestHelpTopics(t *testing.T) {
	sandbox(t, nil)

	code, out, _ := execute(t, "topics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "  inputs\n")
	assert.Contains(t, out, "  --format\n")

	code, out, _ = execute(t, "help", "inputs")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "# Puzzle inputs")

	code, out, _ = execute(t, "help", "run")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "--part")
}

func TestPuzzleArgsCompletion(t *testing.T) {
	cmd := NewRootCmd()

	years, _ := puzzleArgsCompletion(cmd, nil, "")
	assert.Equal(t, []string{"2020", "2022"}, years)

	days, _ := puzzleArgsCompletion(cmd, []string{"2020"}, "")
	require.NotEmpty(t, days)
	assert.Equal(t, "1\tReport Repair", days[0])

	none, _ := puzzleArgsCompletion(cmd, []string{"2020", "1"}, "")
	assert.Empty(t, none)
}
