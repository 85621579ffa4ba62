// Command idtlc is the CLI driver over pkg/kernel: parse, check, and
// normalise one term per run.
package main

import (
	"os"

	"github.com/cwbudde/idtlc/cmd/idtlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
