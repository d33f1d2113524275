// Command dtype_inspector lists and inspects the registered tensor element
// data types: their stable codes, bit widths, families and storage sizes.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
