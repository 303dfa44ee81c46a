// Command quizreview runs the content verification service and its
// operator tooling: schema migrations, reviewer grants and token issuing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
