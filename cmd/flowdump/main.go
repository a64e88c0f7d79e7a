// Command flowdump prints a bounded text report of a 4D flow MRI analysis
// directory or of single files from one.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCommand(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
