package main

import (
	"os"

	"github.com/go-drift/charts/cmd/chartbar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
