// Command nwalign prints the optimal global alignment of two strings.
//
// Usage:
//
//	nwalign <s> <t> [<match> <mismatch> <gap>] [flags]
//
// Example:
//
//	nwalign AC AGC 2 -1 -1
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
