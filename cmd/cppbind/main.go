// Command cppbind translates a C++ header's declarations into D binding
// source, driven by a JSON configuration describing per-declaration
// overrides (§6.3).
package main

import (
	"fmt"
	"os"

	"github.com/binderd/cppbind/cmd/cppbind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cppbind: %v\n", err)
		os.Exit(1)
	}
}
