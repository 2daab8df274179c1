package main

import (
	"os"

	"honnef.co/go/contour/cmd/contour/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
