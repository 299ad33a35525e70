package main

import (
	"os"

	"github.com/warebotics/waresim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
