package main

import (
	"os"

	"physiquist/cmd/physiquist/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
