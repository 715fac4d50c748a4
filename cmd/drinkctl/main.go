// Command drinkctl drives the DrinkChain synthesis pipeline from a terminal
// and serves it to MCP clients over stdio.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
