// SPDX-License-Identifier: MIT

// Command qft is a small driver for the transform engine and its companion
// packages: it prints QFT and DFT results, builds the demo knowledge graph,
// samples random graphs and factors integers.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
