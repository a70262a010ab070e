package aoc

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/aoc/internal/version"
	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
	"github.com/arthur-debert/aoc/pkg/report"
	"github.com/arthur-debert/aoc/pkg/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		part      string
		inputPath string
		all       bool
		year      int
	)

	cmd := &cobra.Command{
		Use:     "run <year> <day>",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 {
					return errors.New(errors.ErrInvalidInput, MsgErrArgsRunAll)
				}
				if inputPath != "" {
					return errors.New(errors.ErrInvalidInput, MsgErrFlagsRunAll)
				}
				return nil
			}
			if len(args) != 2 {
				return errors.New(errors.ErrInvalidInput, MsgErrArgsRun)
			}
			return nil
		},
		ValidArgsFunction: puzzleArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := parseParts(part)
			if err != nil {
				return err
			}

			cfg, r, err := a.setup(cmd)
			if err != nil {
				return err
			}

			if all {
				results, err := runner.RunAll(cmd.Context(), runner.Options{
					Year:   year,
					Parts:  parts,
					Config: cfg,
				})
				if err != nil {
					return err
				}
				if err := r.Results(results); err != nil {
					return err
				}
				return failedResults(results)
			}

			id, err := puzzle.ParseID(args[0], args[1])
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context(), runner.Options{
				ID:        id,
				Parts:     parts,
				InputPath: inputPath,
				Config:    cfg,
			})
			if err != nil {
				return err
			}
			return r.Result(result)
		},
	}

	cmd.Flags().StringVarP(&part, "part", "p", "both", MsgFlagPart)
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", MsgFlagInput)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	cmd.Flags().IntVarP(&year, "year", "y", 0, MsgFlagYear)

	_ = cmd.RegisterFlagCompletionFunc("part", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"1", "2", "both"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("year", yearCompletion)

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := a.setup(cmd)
			if err != nil {
				return err
			}
			return r.Puzzles(puzzles.ForYear(year))
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, MsgFlagYear)
	_ = cmd.RegisterFlagCompletionFunc("year", yearCompletion)

	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "describe <year> <day>",
		Short:             MsgDescribeShort,
		Long:              MsgDescribeLong,
		Example:           MsgDescribeExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: puzzleArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := puzzle.ParseID(args[0], args[1])
			if err != nil {
				return err
			}
			p, err := puzzles.Lookup(id)
			if err != nil {
				return err
			}

			cfg, r, err := a.setup(cmd)
			if err != nil {
				return err
			}

			md := p.Summary + "\n\n" + fmt.Sprintf(MsgInputLine, input.PathFor(cfg, id))
			return r.Markdown(md)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		answersPath string
		junitPath   string
	)

	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, r, err := a.setup(cmd)
			if err != nil {
				return err
			}

			if answersPath == "" {
				answersPath = cfg.Check.Answers
			}
			answers, err := report.LoadAnswers(answersPath)
			if err != nil {
				return err
			}

			rep, err := runner.Check(cmd.Context(), cfg, answers)
			if err != nil {
				return err
			}
			if err := r.Check(rep); err != nil {
				return err
			}

			if junitPath != "" {
				if err := report.WriteJUnitFile(junitPath, rep); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), MsgReportWritten, junitPath)
			}

			return rep.Err()
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", MsgFlagAnswers)
	cmd.Flags().StringVar(&junitPath, "junit", "", MsgFlagJUnit)

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return nil
			}

			cfg, _, err := a.setup(cmd)
			if err != nil {
				return err
			}
			content, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, MsgErrTopicsNoHelp)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// parseParts turns the --part flag into the parts to solve; nil means both
func parseParts(s string) ([]puzzle.Part, error) {
	if s == "" || s == "both" {
		return nil, nil
	}
	p, err := puzzle.ParsePart(s)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{p}, nil
}

// failedResults returns an error carrying the first failure's code when any
// puzzle in results failed
func failedResults(results []runner.Result) error {
	var first error
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			if first == nil {
				first = res.Err
			}
			failed++
		}
	}
	if first == nil {
		return nil
	}
	log.Debug().Int("failed", failed).Int("total", len(results)).Msg("Some puzzles failed")
	return errors.Newf(errors.GetErrorCode(first), "%d of %d puzzles failed", failed, len(results))
}

// puzzleArgsCompletion completes <year> then <day> from the registry
func puzzleArgsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return yearCompletion(cmd, args, toComplete)
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var days []string
		for _, p := range puzzles.ForYear(year) {
			days = append(days, fmt.Sprintf("%d\t%s", p.ID.Day, p.Title))
		}
		return days, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func yearCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var years []string
	for _, y := range puzzles.Years() {
		years = append(years, strconv.Itoa(y))
	}
	return years, cobra.ShellCompDirectiveNoFileComp
}
