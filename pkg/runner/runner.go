// Package runner loads puzzle inputs, calls the registered solvers and
// times them. It backs the run and check commands.
package runner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/errors"
	"github.com/arthur-debert/aoc/pkg/input"
	"github.com/arthur-debert/aoc/pkg/logging"
	"github.com/arthur-debert/aoc/pkg/puzzle"
	"github.com/arthur-debert/aoc/pkg/puzzles"
)

// Options selects what to solve
type Options struct {
	// ID is the puzzle solved by Run
	ID puzzle.ID
	// Year limits RunAll to one event; 0 means every year
	Year int
	// Parts to solve; empty means both
	Parts []puzzle.Part
	// InputPath replaces the configured input location for Run
	InputPath string
	Config    *config.Config
}

// PartResult is the outcome of one part
type PartResult struct {
	Part    puzzle.Part   `json:"part"`
	Answer  string        `json:"answer"`
	Detail  string        `json:"detail,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Result is the outcome of one puzzle
type Result struct {
	ID        puzzle.ID    `json:"-"`
	Key       string       `json:"puzzle"`
	Title     string       `json:"title"`
	InputPath string       `json:"input"`
	Parts     []PartResult `json:"parts"`
	// Err is set by RunAll when the puzzle failed
	Err error `json:"-"`
}

// Run solves the requested parts of a single puzzle
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "runner needs a configuration")
	}

	p, err := puzzles.Lookup(opts.ID)
	if err != nil {
		return nil, err
	}

	path := opts.InputPath
	if path == "" {
		path = input.PathFor(opts.Config, opts.ID)
	}
	text, err := input.Read(path)
	if err != nil {
		return nil, err
	}

	return solve(ctx, p, path, text, partsOrDefault(opts.Parts), opts.Config.Params())
}

func solve(ctx context.Context, p puzzle.Puzzle, path, text string, parts []puzzle.Part, params puzzle.Params) (*Result, error) {
	logger := logging.GetLogger("runner")

	result := &Result{
		ID:        p.ID,
		Key:       p.ID.String(),
		Title:     p.Title,
		InputPath: path,
	}

	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		done := logging.LogOperationStart(logger, "solve "+p.ID.String()+" part "+part.String())
		start := time.Now()
		out, err := p.Solve(params, text, part)
		elapsed := time.Since(start)
		done()

		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "%s part %s", p.ID, part).
				WithDetail("puzzle", p.ID.String()).
				WithDetail("part", int(part))
		}

		logger.Info().
			Str("puzzle", p.ID.String()).
			Stringer("part", part).
			Str("answer", out.Answer).
			Dur("elapsed", elapsed).
			Msg("Solved")

		result.Parts = append(result.Parts, PartResult{
			Part:    part,
			Answer:  out.Answer,
			Detail:  out.Detail,
			Elapsed: elapsed,
		})
	}

	return result, nil
}

// RunAll solves every registered puzzle of opts.Year whose input file
// exists, at most run.parallelism at a time. Results keep registry order.
// A failing puzzle records its error in Result.Err; the returned error is
// only set when ctx ends.
func RunAll(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "runner needs a configuration")
	}
	logger := logging.GetLogger("runner")
	parts := partsOrDefault(opts.Parts)

	var selected []puzzle.Puzzle
	for _, p := range puzzles.ForYear(opts.Year) {
		path := input.PathFor(opts.Config, p.ID)
		if !input.Exists(path) {
			logger.Info().Str("puzzle", p.ID.String()).Str("path", path).Msg("Skipping puzzle without input")
			continue
		}
		selected = append(selected, p)
	}

	results := make([]Result, len(selected))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Config.Run.Parallelism)

	for i, p := range selected {
		eg.Go(func() error {
			path := input.PathFor(opts.Config, p.ID)
			results[i] = Result{ID: p.ID, Key: p.ID.String(), Title: p.Title, InputPath: path}

			text, err := input.Read(path)
			if err == nil {
				var r *Result
				r, err = solve(egCtx, p, path, text, parts, opts.Config.Params())
				if err == nil {
					results[i] = *r
				}
			}
			if err != nil {
				if ctxErr := egCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn().Err(err).Str("puzzle", p.ID.String()).Msg("Puzzle failed")
				results[i].Err = err
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func partsOrDefault(parts []puzzle.Part) []puzzle.Part {
	if len(parts) == 0 {
		return puzzle.Parts
	}
	return parts
}
