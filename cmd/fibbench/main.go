// Command fibbench races Fibonacci computation techniques against each other
// under a fixed wall-clock budget and reports a ranked comparison.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/speedyfib/fibbench/internal/app"
	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return a.Run(context.Background(), os.Stdout)
}
