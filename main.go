package main

import (
	"os"

	"github.com/abhisek/scaletrainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
