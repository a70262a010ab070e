package aoc

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Solve Advent of Code puzzles"
	MsgRunShort        = "Solve a puzzle, or every puzzle with --all"
	MsgListShort       = "List the registered puzzles"
	MsgListLong        = "List displays every puzzle that has a solver, in year and day order."
	MsgDescribeShort   = "Show what a puzzle asks"
	MsgDescribeLong    = "Describe renders the summary of a puzzle and where its input is read from."
	MsgCheckShort      = "Verify solvers against recorded answers"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Output messages
	MsgVersionFormat = "aoc %s (commit %s, built %s)\n"
	MsgInputLine     = "Input: `%s`"
	MsgReportWritten = "JUnit report written to %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrArgsRun      = "run takes <year> <day>, or --all"
	MsgErrArgsRunAll   = "run --all takes no positional arguments; use --year to pick an event"
	MsgErrFlagsRunAll  = "--input cannot be combined with --all"
	MsgErrTopicsNoHelp = "help command not found"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Read configuration from this file instead of ./aoc.toml"
	MsgFlagInputs   = "Directory holding puzzle inputs (inputs.dir)"
	MsgFlagFormat   = "Output format: auto, term, text or json (output.format)"
	MsgFlagNoColor  = "Disable styled output (output.no_color)"
	MsgFlagPart     = "Part to solve: 1, 2 or both"
	MsgFlagInput    = "Read the puzzle input from this file"
	MsgFlagAll      = "Solve every puzzle that has an input file"
	MsgFlagYear     = "Limit to one event year"
	MsgFlagAnswers  = "Answers file (check.answers)"
	MsgFlagJUnit    = "Write a JUnit XML report to this file"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/describe-example.txt
	msgDescribeExampleRaw string
	MsgDescribeExample    = strings.TrimRight(msgDescribeExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
