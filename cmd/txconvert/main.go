package main

import (
	"os"

	"github.com/txconvert-dev/txconvert/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
