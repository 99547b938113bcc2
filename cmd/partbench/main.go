// Command partbench benchmarks pairwise part intersection strategies.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/partbench/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "partbench: %v\n", err)
		os.Exit(1)
	}
}
