// Command parmul multiplies two fixed-size square matrices with the parallel
// column-partitioned kernel and prints the wall-clock time of the multiply:
//
//	$ parmul --size 1000 --workers 2
//	0.412345 seconds
//
// Diagnostics go to stderr; a non-zero exit code signals failure.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
