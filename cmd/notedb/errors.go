package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// usageError means the command line was wrong. It makes run print
// the usage text and exit with status 1.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// recordArgs accepts <key> <value> that can be saved and loaded back.
func recordArgs(cmd *cobra.Command, args []string) error {
	if err := exactArgs(2)(cmd, args); err != nil {
		return err
	}
	if err := kv.ValidateKey(args[0]); err != nil {
		return &usageError{err: fmt.Errorf("invalid key %q: %w", args[0], err)}
	}
	if err := kv.ValidateValue(args[1]); err != nil {
		return &usageError{err: fmt.Errorf("invalid value: %w", err)}
	}
	return nil
}
