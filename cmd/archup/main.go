// cmd/archup/main.go
package main

import (
	"fmt"
	"os"

	"github.com/archup-dev/archup/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	// 2 for argument parse errors, 1 for everything else including
	// precondition failures
	if cli.IsUsageError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}
