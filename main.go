package main

import (
	"os"

	"github.com/mightyhq/prepcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
