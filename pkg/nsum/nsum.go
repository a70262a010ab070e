package nsum

import (
	"golang.org/x/exp/constraints"

	"github.com/arthur-debert/aoc/pkg/errors"
)

// Find returns n values from entries, each taken from a distinct position,
// whose sum is exactly target. Values come back in the order they were
// picked; callers should treat the result as an unordered collection.
func Find[T constraints.Unsigned](entries []T, n int, target T) ([]T, error) {
	if n < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "entry count must be at least 1, got %d", n)
	}

	s := &search[T]{
		entries: entries,
		used:    make([]bool, len(entries)),
		picked:  make([]T, 0, n),
	}
	if !s.find(n, target) {
		return nil, errors.Newf(errors.ErrNoCombination, "no %d entries sum to %v", n, target).
			WithDetail("count", n).
			WithDetail("entries", len(entries))
	}

	return s.picked, nil
}

// IsNotFound reports whether err means the search ran out of candidates
func IsNotFound(err error) bool {
	return errors.IsErrorCode(err, errors.ErrNoCombination)
}

// search holds the state shared by every level of the recursion. Positions
// are excluded through the used mask instead of copying the list.
type search[T constraints.Unsigned] struct {
	entries []T
	used    []bool
	picked  []T
}

func (s *search[T]) find(n int, target T) bool {
	if n == 1 {
		for i, v := range s.entries {
			if !s.used[i] && v == target {
				s.picked = append(s.picked, v)
				return true
			}
		}
		return false
	}

	for i, v := range s.entries {
		// v > target would underflow; prune this branch only
		if s.used[i] || v > target {
			continue
		}

		s.used[i] = true
		s.picked = append(s.picked, v)
		if s.find(n-1, target-v) {
			return true
		}
		s.picked = s.picked[:len(s.picked)-1]
		s.used[i] = false
	}

	return false
}
