// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for kvbrowse.
//
// Usage:
//
//	go run . [flags] <database-path>
//	./kvbrowse [flags] <database-path>
//
// See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/kvbrowse/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
