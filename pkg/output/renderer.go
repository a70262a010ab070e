// Package output renders puzzle results for people and for machines.
//
// Terminal output uses the semantic lipgloss styles from the styles
// package, text output is the same layout without styling, and JSON output
// encodes the runner types directly.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/logging"
	"github.com/arthur-debert/aoc/pkg/output/styles"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/runner"
)

// WordWrap is the width markdown is wrapped at on a terminal
const WordWrap = 80

// Renderer writes results to out. Single puzzle runs put the detail lines
// on errOut so that out only carries answers.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// NewRenderer creates a renderer for a concrete format. FormatAuto is
// treated as text; resolve it first with Resolve.
func NewRenderer(out, errOut io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
	}
	logger := logging.GetLogger("output")
	logger.Debug().Stringer("format", format).Msg("Creating renderer")
	return &Renderer{out: out, errOut: errOut, format: format}
}

// Format returns the format the renderer writes
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) style(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result writes the answers of one puzzle
func (r *Renderer) Result(res *runner.Result) error {
	if r.format == FormatJSON {
		return r.writeJSON(res)
	}

	for _, p := range res.Parts {
		if _, err := fmt.Fprintln(r.out, r.style(styles.Answer, p.Answer)); err != nil {
			return err
		}
		detail := fmt.Sprintf("%s part %s: %s", res.Key, p.Part, p.Detail)
		if _, err := fmt.Fprintln(r.errOut, r.style(styles.Detail, detail)+" "+r.style(styles.Muted, "("+elapsed(p.Elapsed)+")")); err != nil {
			return err
		}
	}
	return nil
}

type resultJSON struct {
	runner.Result
	Error string `json:"error,omitempty"`
}

// Results writes a batch of puzzles, one heading per puzzle
func (r *Renderer) Results(results []runner.Result) error {
	if r.format == FormatJSON {
		out := make([]resultJSON, len(results))
		for i, res := range results {
			out[i] = resultJSON{Result: res}
			if res.Err != nil {
				out[i].Error = errors.UserMessage(res.Err)
			}
		}
		return r.writeJSON(out)
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(r.out, r.style(styles.Muted, "No puzzle inputs found."))
		return err
	}

	for _, res := range results {
		if _, err := fmt.Fprintln(r.out, r.style(styles.Heading, res.Key+" "+res.Title)); err != nil {
			return err
		}
		if res.Err != nil {
			if _, err := fmt.Fprintln(r.out, "  "+r.style(styles.Error, "error: "+errors.UserMessage(res.Err))); err != nil {
				return err
			}
			continue
		}
		for _, p := range res.Parts {
			line := fmt.Sprintf("  part %s  %s  %s %s",
				p.Part,
				r.style(styles.Answer, p.Answer),
				r.style(styles.Detail, p.Detail),
				r.style(styles.Muted, "("+elapsed(p.Elapsed)+")"))
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				return err
			}
		}
	}
	return nil
}

type checkJSON struct {
	*runner.CheckReport
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Errors int `json:"errors"`
}

// Check writes one line per checked part followed by a summary
func (r *Renderer) Check(report *runner.CheckReport) error {
	if r.format == FormatJSON {
		return r.writeJSON(checkJSON{
			CheckReport: report,
			Passed:      report.Passed(),
			Failed:      report.Failed(),
			Errors:      report.Errors(),
		})
	}

	for _, c := range report.Cases {
		var verdict, text string
		switch c.Status {
		case runner.StatusPass:
			verdict, text = r.style(styles.Pass, "PASS "), c.Actual
		case runner.StatusFail:
			verdict, text = r.style(styles.Fail, "FAIL "), c.Message
		default:
			verdict, text = r.style(styles.Error, "ERROR"), c.Message
		}
		if _, err := fmt.Fprintf(r.out, "%s %s part %s  %s\n", verdict, c.Key, c.Part, text); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d checked: %d passed, %d failed, %d errors in %s",
		len(report.Cases), report.Passed(), report.Failed(), report.Errors(), elapsed(report.Elapsed))
	name := styles.Pass
	if !report.OK() {
		name = styles.Fail
	}
	_, err := fmt.Fprintln(r.out, r.style(name, summary))
	return err
}

type puzzleJSON struct {
	Puzzle string `json:"puzzle"`
	Year   int    `json:"year"`
	Day    int    `json:"day"`
	Title  string `json:"title"`
}

// Puzzles writes the list of registered puzzles
func (r *Renderer) Puzzles(list []puzzle.Puzzle) error {
	switch r.format {
	case FormatJSON:
		out := make([]puzzleJSON, len(list))
		for i, p := range list {
			out[i] = puzzleJSON{Puzzle: p.ID.String(), Year: p.ID.Year, Day: p.ID.Day, Title: p.Title}
		}
		return r.writeJSON(out)

	case FormatTerminal:
		data := pterm.TableData{{"Year", "Day", "Title"}}
		for _, p := range list {
			data = append(data, []string{strconv.Itoa(p.ID.Year), strconv.Itoa(p.ID.Day), p.Title})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render table")
		}
		_, err = fmt.Fprintln(r.out, table)
		return err

	default:
		for _, p := range list {
			if _, err := fmt.Fprintf(r.out, "%s  %s\n", p.ID, p.Title); err != nil {
				return err
			}
		}
		return nil
	}
}

// Markdown writes a markdown document, rendered with glamour on a terminal
func (r *Renderer) Markdown(md string) error {
	if r.format != FormatTerminal {
		_, err := fmt.Fprintln(r.out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(WordWrap),
	)
	if err == nil {
		var rendered string
		if rendered, err = renderer.Render(md); err == nil {
			_, err = fmt.Fprint(r.out, rendered)
			return err
		}
	}

	// Fallback to plain text on error
	logger := logging.GetLogger("output")
	logger.Debug().Err(err).Msg("Markdown rendering failed")
	_, err = fmt.Fprintln(r.out, md)
	return err
}

// Error writes err to errOut as "Error: message"
func (r *Renderer) Error(err error) {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.errOut)
		_ = enc.Encode(map[string]string{
			"error": errors.UserMessage(err),
			"code":  string(errors.GetErrorCode(err)),
		})
		return
	}
	fmt.Fprintln(r.errOut, r.style(styles.Error, "Error: "+errors.UserMessage(err)))
}

func elapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
