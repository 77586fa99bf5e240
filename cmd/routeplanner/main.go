// Command routeplanner loads a road network description and plans a route
// between two points given in 0–100 map coordinates.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
