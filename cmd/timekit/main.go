package main

import (
	"os"

	"github.com/ersinkoc/TimeKit/cmd/timekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
