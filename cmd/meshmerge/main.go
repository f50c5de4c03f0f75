// Command meshmerge reads a mesh v2 file from stdin, merges every
// polygon pair across a shared edge whenever the merge stays convex,
// validates the result, and writes the merged mesh v2 to stdout.
//
// Parse errors, validation failures and internal ring-alignment
// assertion panics are all fatal: a one-line diagnostic goes to stderr
// and the process exits 1. There is no partial output — stdout is only
// written once the merge has fully validated.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/navmesh/mesh"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "meshmerge:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal assertion failed: %v", r)
		}
	}()

	st, err := mesh.Parse(in)
	if err != nil {
		return err
	}

	st.Merge()

	if err := st.Validate(); err != nil {
		return err
	}

	return st.Write(out)
}
