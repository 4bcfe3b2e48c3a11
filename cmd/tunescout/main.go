package main

import (
	"fmt"
	"os"

	"tunescout/cmd/tunescout/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
