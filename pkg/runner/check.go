package runner

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/logging"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

// Answers holds the expected answer of each recorded puzzle part
type Answers map[puzzle.ID]map[puzzle.Part]string

// IDs returns the recorded puzzles in order
func (a Answers) IDs() []puzzle.ID {
	ids := make([]puzzle.ID, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, puzzle.ID.Compare)
	return ids
}

// Status is the verdict of one checked part
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// Case is one checked puzzle part
type Case struct {
	ID       puzzle.ID     `json:"-"`
	Key      string        `json:"puzzle"`
	Part     puzzle.Part   `json:"part"`
	Expected string        `json:"expected"`
	Actual   string        `json:"actual,omitempty"`
	Status   Status        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// CheckReport collects the cases of a check run in puzzle and part order
type CheckReport struct {
	Cases   []Case        `json:"cases"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

func (r *CheckReport) count(status Status) int {
	n := 0
	for _, c := range r.Cases {
		if c.Status == status {
			n++
		}
	}
	return n
}

// Passed counts matching answers
func (r *CheckReport) Passed() int { return r.count(StatusPass) }

// Failed counts wrong answers
func (r *CheckReport) Failed() int { return r.count(StatusFail) }

// Errors counts parts that could not be solved
func (r *CheckReport) Errors() int { return r.count(StatusError) }

// OK reports whether every case passed
func (r *CheckReport) OK() bool {
	return r.Passed() == len(r.Cases)
}

// Err summarises a report that did not pass as an ANSWER_MISMATCH error
func (r *CheckReport) Err() error {
	if r.OK() {
		return nil
	}
	return errors.Newf(errors.ErrAnswerMismatch, "%d of %d answers did not match",
		len(r.Cases)-r.Passed(), len(r.Cases)).
		WithDetail("failed", r.Failed()).
		WithDetail("errors", r.Errors())
}

// Check solves every part recorded in answers and compares the results.
// Unknown puzzles and unreadable inputs become error cases rather than
// aborting the run.
func Check(ctx context.Context, cfg *config.Config, answers Answers) (*CheckReport, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInternal, "runner needs a configuration")
	}
	logger := logging.GetLogger("runner")
	done := logging.LogOperationStart(logger, "check")
	defer done()

	start := time.Now()
	ids := answers.IDs()
	perPuzzle := make([][]Case, len(ids))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Run.Parallelism)

	for i, id := range ids {
		eg.Go(func() error {
			cases, err := checkPuzzle(egCtx, cfg, id, answers[id])
			if err != nil {
				return err
			}
			perPuzzle[i] = cases
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &CheckReport{}
	for _, cases := range perPuzzle {
		report.Cases = append(report.Cases, cases...)
	}
	report.Elapsed = time.Since(start)

	logger.Info().
		Int("passed", report.Passed()).
		Int("failed", report.Failed()).
		Int("errors", report.Errors()).
		Msg("Check finished")

	return report, nil
}

func checkPuzzle(ctx context.Context, cfg *config.Config, id puzzle.ID, expected map[puzzle.Part]string) ([]Case, error) {
	var parts []puzzle.Part
	for _, part := range puzzle.Parts {
		if _, ok := expected[part]; ok {
			parts = append(parts, part)
		}
	}

	errorCases := func(err error) []Case {
		cases := make([]Case, 0, len(parts))
		for _, part := range parts {
			cases = append(cases, Case{
				ID:       id,
				Key:      id.String(),
				Part:     part,
				Expected: expected[part],
				Status:   StatusError,
				Message:  errors.UserMessage(err),
			})
		}
		return cases
	}

	p, err := puzzles.Lookup(id)
	if err != nil {
		return errorCases(err), nil
	}
	path := input.PathFor(cfg, id)
	text, err := input.Read(path)
	if err != nil {
		return errorCases(err), nil
	}

	var cases []Case
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := Case{ID: id, Key: id.String(), Part: part, Expected: expected[part]}

		r, err := solve(ctx, p, path, text, []puzzle.Part{part}, cfg.Params())
		switch {
		case err != nil:
			c.Status = StatusError
			c.Message = errors.UserMessage(err)
		case r.Parts[0].Answer == c.Expected:
			c.Status = StatusPass
			c.Actual = r.Parts[0].Answer
			c.Elapsed = r.Parts[0].Elapsed
		default:
			c.Status = StatusFail
			c.Actual = r.Parts[0].Answer
			c.Elapsed = r.Parts[0].Elapsed
			c.Message = "expected " + c.Expected + ", got " + c.Actual
		}
		cases = append(cases, c)
	}
	return cases, nil
}
