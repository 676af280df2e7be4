// typey compiles steno lessons from word lists and your typing history,
// and checks typed output against the material.
package main

import (
	"fmt"
	"os"

	"github.com/jladdjr/typey-type/cmd/typey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
