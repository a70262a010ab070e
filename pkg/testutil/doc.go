// Package testutil provides utilities for testing aoc components.
//
// Key components:
//   - TestEnvironment: an isolated working directory with private XDG
//     directories and a configuration pointing at its own inputs
//   - File helpers that fail the test instead of returning errors
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
//   - Tests using TestEnvironment change the working directory and
//     must not call t.Parallel
package testutil
