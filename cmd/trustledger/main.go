package main

import (
	"fmt"
	"os"

	"github.com/dotcomlabs/trustledger/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own failures; only surface messages
		// that haven't been printed yet.
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
