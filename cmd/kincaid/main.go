// Command kincaid scores English text with the Flesch reading-ease formula,
// estimates syllables per word, and checks the estimator against the CMU
// pronouncing dictionary.
//
// Exit codes: 0 = success, 1 = error, 2 = eval mistakes above baseline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/kincaid/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrBaselineExceeded):
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
}
