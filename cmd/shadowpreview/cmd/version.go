package cmd

import (
	"fmt"
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the shadowpreview version and the Go toolchain it was built with.",
		Usage: "shadowpreview version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "shadowpreview version %s (built %s, %s)\n", Version, BuildTime, runtime.Version())
}
