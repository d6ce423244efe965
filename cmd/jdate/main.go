package main

import (
	"os"

	"github.com/Davoodeh/jcal/internal/cli"
)

func main() {
	if err := cli.NewDateCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
