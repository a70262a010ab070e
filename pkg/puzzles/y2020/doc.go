// Package y2020 registers the solvers for the 2020 event.
package y2020
