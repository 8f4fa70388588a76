// Command lcafocus computes life-cycle-assessment impacts for products.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/lcafocus/internal/cli"
	"github.com/rshade/lcafocus/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
