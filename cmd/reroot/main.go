/*
PURPOSE:
  Entry point for the reroot application.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - reroot <input> <outgroup> writes <input>_rerooted.tre.
  - Nonzero exit and a diagnostic on stderr for every failure.

  Implementation-discovered:
  - Uses cobra for CLI command management.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - Depends on: internal/cli package

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.
  - Do not put business logic here.

USAGE:
  go build -o reroot ./cmd/reroot
  ./reroot tree.nwk Outgroup

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/reroot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
