// Command zstack is the reference host for the engine: it loads or
// produces replay files and drives the engine from their input edges.
// Physical keyboard input and graphics are out of scope (spec §1), so
// every subcommand here either reads a pre-recorded input edge stream
// or synthesizes one. play runs the engine through internal/host.Loop and
// renders a single text line per draw frame instead of a window; record
// and verify-replay tick the engine directly and print a one-line summary.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
