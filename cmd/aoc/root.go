package aoc

import (
	"bytes"
	"context"
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/aoc/internal/version"
	"github.com/arthur-debert/aoc/pkg/cobrax/topics"
	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/logging"
	"github.com/arthur-debert/aoc/pkg/output"
)

//go:embed topics
var topicsFS embed.FS

// app holds the global flag values and what is derived from them
type app struct {
	verbosity  int
	configFile string
	inputsDir  string
	format     string
	noColor    bool

	renderer *output.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

// Execute runs the command line and returns the process exit code. Errors
// are printed on stderr in the selected output format.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		a.errorRenderer(stderr).Error(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "aoc",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.inputsDir, "inputs", "", MsgFlagInputs)
	flags.StringVar(&a.format, "format", "", MsgFlagFormat)
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	source, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   &topicRenderer{app: a},
		}
		if _, err = topics.InitializeWithOptions(rootCmd, source, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// setup loads the configuration with the global flags applied and creates
// the renderer for cmd's output streams
func (a *app) setup(cmd *cobra.Command) (*config.Config, *output.Renderer, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("inputs") {
		overrides["inputs.dir"] = a.inputsDir
	}
	if flags.Changed("format") {
		overrides["output.format"] = a.format
	}
	if flags.Changed("no-color") {
		overrides["output.no_color"] = a.noColor
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      a.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, nil, err
	}

	format, err := output.Resolve(cfg.Output.Format, cfg.Output.NoColor, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	a.renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)

	return cfg, a.renderer, nil
}

// errorRenderer returns the renderer used to report a failed command. When
// setup never ran, the format comes from the flags alone.
func (a *app) errorRenderer(stderr io.Writer) *output.Renderer {
	if a.renderer != nil {
		return a.renderer
	}
	format, err := output.Resolve(a.format, a.noColor, stderr)
	if err != nil {
		format = output.FormatText
	}
	return output.NewRenderer(stderr, stderr, format)
}

// topicRenderer renders markdown help topics like describe does
type topicRenderer struct {
	app *app
}

func (t *topicRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	format, err := output.Resolve(t.app.format, t.app.noColor, os.Stdout)
	if err != nil || format == output.FormatJSON {
		format = output.FormatText
	}

	var buf bytes.Buffer
	if err := output.NewRenderer(&buf, io.Discard, format).Markdown(content); err != nil {
		return content
	}
	return buf.String()
}
