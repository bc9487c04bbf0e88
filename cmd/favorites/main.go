// Package main provides the favorites CLI, a client-side view of the recipe
// catalog that keeps a replicated favorites list on the local machine.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openSession).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
