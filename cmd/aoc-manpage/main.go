package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/aoc/cmd/aoc"
	"github.com/arthur-debert/aoc/internal/version"
)

func main() {
	rootCmd := aoc.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AOC",
		Section: "1",
		Source:  "aoc " + version.Version,
		Manual:  "aoc manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
