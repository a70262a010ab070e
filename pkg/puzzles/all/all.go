// Package all imports every year package so that their solvers register
package all

import (
	_ "github.com/arthur-debert/aoc/pkg/puzzles/y2020"
	_ "github.com/arthur-debert/aoc/pkg/puzzles/y2022"
)
