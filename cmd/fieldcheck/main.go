package main

import (
	"os"

	"github.com/fieldcheck/fieldcheck/cmd/fieldcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
