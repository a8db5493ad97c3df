package main

import (
	"os"

	"docket/cmd/docket/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
