// SPDX-License-Identifier: MIT

// Command lvlmath runs the lvlmath matrix algorithms on a YAML document.
//
// Scenario:
//
//	A matrix is written as a list of rows, optionally with its storage
//	layout, and piped in on stdin or named with --file:
//
//	  rows:
//	    - [4, 7]
//	    - [2, 6]
//	  layout: row_major
//
//	Each subcommand prints its result as YAML on stdout.
//
// Usage:
//
//	lvlmath inverse   [--file m.yaml] [--trace] [--single]
//	lvlmath det       [--file m.yaml] [--single]
//	lvlmath transpose [--file m.yaml]
//	lvlmath lu        [--file m.yaml] [--pivot]
//
// Flags:
//   - --trace prints every Gauss–Jordan pivot (step, row, col) on stderr.
//     Matrices up to 4×4 use closed forms and print nothing.
//   - --single computes in float32 instead of float64.
//
// Exit status is 1 on any error, including a non-square input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlmath:", err)
		os.Exit(1)
	}
}
