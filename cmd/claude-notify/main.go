// claude-notify - Desktop notification hook for Claude Code

package main

import (
	"os"

	"github.com/quietfold/claude-notify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
