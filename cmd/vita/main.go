// Command vita is the CLI entry point.
package main

import (
	"os"

	"github.com/meridian-labs/vita-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
