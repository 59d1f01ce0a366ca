package main

import (
	"os"

	"github.com/decalc/decmath/cmd/decmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
