// Command sqlforge is a thin wrapper around internal/cli.
package main

import (
	"os"

	"github.com/brindlecode/sqlforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
