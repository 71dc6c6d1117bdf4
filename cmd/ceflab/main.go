// Command ceflab exposes the browser host utilities on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/kztool/ceflab/cmd/ceflab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
