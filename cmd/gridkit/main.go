// Command gridkit prices garden regions, solves mazes and draws region
// outlines from plain character grids.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
