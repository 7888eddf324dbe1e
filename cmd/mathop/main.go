package main

import (
	"os"

	"github.com/mathop-labs/mathop-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
