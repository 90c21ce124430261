// Command gridpath plans a route for a single vehicle across a warehouse
// floor grid and explains failures.
//
// Usage:
//
//	gridpath solve                          # built-in 10×10 warehouse layout
//	gridpath solve floor.yaml --render      # scenario file, draw the route
//	gridpath random --obstacles 20 --seed 7 # random layout, start (0,0) goal (9,9)
//	gridpath random --rows 30 --cols 40 --obstacles 200 --start 0,0 --goal 29,39
//
// The exit status is 1 when no route to the goal was found.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSearchFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
