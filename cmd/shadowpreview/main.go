// Command shadowpreview renders a shadow ring to PNG and prints its geometry.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/shadow/cmd/shadowpreview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
