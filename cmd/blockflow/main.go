// Package main provides the blockflow CLI for running layout fixtures.
//
// Usage:
//
//	blockflow layout <fixture>      Lay out a fixture and print the boxes
//	blockflow check [path...]       Verify fixture expectations
//	blockflow version               Print version information
//
// Examples:
//
//	blockflow layout testdata/block_basic.yaml
//	blockflow layout --width 320 --format json page.html
//	blockflow check ./fixtures/...
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/grindlemire/go-blockflow/internal/observability"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp()
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		// Use the logger once configuration loaded, stderr before that.
		if a.cfg != nil {
			a.log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}
	if syncErr := observability.Sync(a.log); syncErr != nil {
		fmt.Fprintf(stderr, "error: failed to sync logger: %v\n", syncErr)
	}
	if err != nil {
		return 1
	}
	return 0
}
