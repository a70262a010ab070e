// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aoc/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_combination_error",
			code:    errors.ErrNoCombination,
			message: "no 2 entries sum to 2020",
			wantStr: "[NO_COMBINATION] no 2 entries sum to 2020",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "count must be at least 1",
			wantStr: "[INVALID_INPUT] count must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInputParse, "line %d: %q is not a number", 3, "abc")
	assert.Equal(t, `line 3: "abc" is not a number`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInputRead, "cannot read input")

		assert.Equal(t, errors.ErrInputRead, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INPUT_READ] cannot read input: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrInputRead, "reading %s", "inputs/2020/01.txt")
		assert.Equal(t, "reading inputs/2020/01.txt", err.Message)
	})
}

func TestErrorCodeLookup(t *testing.T) {
	inner := errors.New(errors.ErrNoCombination, "nothing sums to 7")
	wrapped := fmt.Errorf("solving 2020/01 part 1: %w", inner)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrNoCombination))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrNotFound))
	assert.Equal(t, errors.ErrNoCombination, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	t.Run("errors_is_matches_by_code", func(t *testing.T) {
		assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrNoCombination, "")))
		assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrInputParse, "")))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPuzzleNotFound, "no such puzzle").
		WithDetail("year", 2020).
		WithDetail("day", 26)

	details := errors.GetErrorDetails(fmt.Errorf("wrapped: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, 2020, details["year"])
	assert.Equal(t, 26, details["day"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestGetErrorDetailsMergesChain(t *testing.T) {
	inner := errors.New(errors.ErrNoCombination, "no 3 entries sum to 2020").
		WithDetail("count", 3).
		WithDetail("entries", 6)
	outer := errors.Wrap(fmt.Errorf("solver: %w", inner), errors.ErrNoCombination, "2020/01 part 2").
		WithDetail("puzzle", "2020/01").
		WithDetail("count", 99)

	details := errors.GetErrorDetails(outer)
	assert.Equal(t, "2020/01", details["puzzle"])
	assert.Equal(t, 6, details["entries"])
	assert.Equal(t, 99, details["count"], "outer detail wins on conflict")
	assert.Equal(t, 3, errors.GetErrorDetails(inner)["count"])
}

func TestUserMessage(t *testing.T) {
	inner := errors.New(errors.ErrNoCombination, "no 3 entries sum to 2020")
	outer := errors.Wrap(inner, errors.ErrInternal, "solving 2020/01 part 2")

	assert.Equal(t, "solving 2020/01 part 2: no 3 entries sum to 2020", errors.UserMessage(outer))
	assert.Equal(t, "plain", errors.UserMessage(stderrors.New("plain")))
}
