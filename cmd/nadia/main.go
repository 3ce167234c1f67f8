// Command nadia is the command-line front end for the proof checker.
package main

import (
	"fmt"
	"os"

	"github.com/daviromero/nadia/pkg/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(cli.ExitIOFailure)
		}
	}()
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
