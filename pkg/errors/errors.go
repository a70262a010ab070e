package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable identifier for a class of failure
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Puzzle errors
	ErrPuzzleNotFound ErrorCode = "PUZZLE_NOT_FOUND"
	ErrInputRead      ErrorCode = "INPUT_READ"
	ErrInputParse     ErrorCode = "INPUT_PARSE"
	ErrNoCombination  ErrorCode = "NO_COMBINATION"

	// Verification errors
	ErrAnswerMismatch ErrorCode = "ANSWER_MISMATCH"
	ErrReportWrite    ErrorCode = "REPORT_WRITE"
)

// AocError is an error carrying a code and optional structured details
type AocError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *AocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AocError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an AocError with the same code
func (e *AocError) Is(target error) bool {
	var targetErr *AocError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an AocError with the given code and message
func New(code ErrorCode, message string) *AocError {
	return &AocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates an AocError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AocError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err gives a nil result, so
// callers must check err before returning the result as an error value.
func Wrap(err error, code ErrorCode, message string) *AocError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AocError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *AocError) WithDetail(key string, value interface{}) *AocError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in err's chain has the given code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the code of the first AocError in err's chain, or
// ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var aocErr *AocError
	if errors.As(err, &aocErr) {
		return aocErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails merges the details of every AocError in err's chain.
// When a key repeats, the outermost error wins.
func GetErrorDetails(err error) map[string]interface{} {
	var details map[string]interface{}
	var aocErr *AocError
	for errors.As(err, &aocErr) {
		for k, v := range aocErr.Details {
			if details == nil {
				details = make(map[string]interface{})
			}
			if _, exists := details[k]; !exists {
				details[k] = v
			}
		}
		err = aocErr.Wrapped
	}
	return details
}

// UserMessage returns the message chain without code prefixes, for display
func UserMessage(err error) string {
	var aocErr *AocError
	if !errors.As(err, &aocErr) {
		return err.Error()
	}
	if aocErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", aocErr.Message, UserMessage(aocErr.Wrapped))
	}
	return aocErr.Message
}
