package main

import (
	"os"

	"github.com/spencebuilds/smartapply/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
