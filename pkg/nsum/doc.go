// Package nsum finds N entries of a list whose values add up to a target.
//
// The search is depth first over entry positions in list order and stops at
// the first combination found, so results are deterministic for a given
// input. An entry position is never used twice in one result, but equal
// values at different positions may both be picked:
//
//	nsum.Find([]uint{5, 5, 10}, 2, 10) // [5 5]
//
// Running out of candidates is a normal outcome reported as an error with
// code NO_COMBINATION; asking for fewer than one entry is INVALID_INPUT.
//
// Complexity is O(len(entries)^n) without memoization, which is fine for
// the puzzle inputs this is used with (hundreds of entries, n of 2 or 3).
package nsum
