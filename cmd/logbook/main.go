// main is the entry point for the logbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/logbook/cmd"
	"github.com/huangsam/logbook/internal/runstore"
)

func main() {
	err := cmd.Execute()
	runstore.CloseHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
