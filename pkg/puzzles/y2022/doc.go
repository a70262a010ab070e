// Package y2022 registers the solvers for the 2022 event.
package y2022
