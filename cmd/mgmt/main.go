// Package main provides the mgmt CLI for managing deployment configuration
// values.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/slr71/mgmt/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code. Errors the user can fix
// (missing records, violated references, bad names) exit 1, everything else 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrConstraintViolation),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrUnknownValueType):
		return exitUserError
	default:
		return exitSysError
	}
}
