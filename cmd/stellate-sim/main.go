// Command stellate-sim runs regenerations without a window, on a simulated
// frame clock, and reports what the viewer would draw.
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
