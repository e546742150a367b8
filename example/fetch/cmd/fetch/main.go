package main

import (
	"os"

	"github.com/kroma-labs/ruxios-go/example/fetch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
