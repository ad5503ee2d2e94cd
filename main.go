// file: main.go
// version: 1.1.0
// guid: 8b6c2d5e-3f7a-4c9d-2e0f-1a5b6c7d8e9f

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mholtz/treeaudit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
