// Command stagetest runs staged conformance fixtures against a compiler.
//
//	stagetest run 1 2 3
package main

import (
	"fmt"
	"os"

	"github.com/roach88/stagetest/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
