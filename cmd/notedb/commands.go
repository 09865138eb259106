package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heysubinoy/notedb/internal/api"
	"github.com/heysubinoy/notedb/internal/shell"
	"github.com/heysubinoy/notedb/internal/store"
)

func (c *cli) storeCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "insert <key> <value>",
			Short: "Insert a key-value pair, replacing the value if the key exists",
			Args:  recordArgs,
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.Insert(args[0], args[1])
			}),
		},
		{
			Use:   "update <key> <value>",
			Short: "Update the value of an existing key",
			Args:  recordArgs,
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.Update(args[0], args[1])
			}),
		},
		{
			Use:   "remove <key>",
			Short: "Remove a key-value pair",
			Args:  exactArgs(1),
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.Remove(args[0])
			}),
		},
		{
			Use:   "find <key>",
			Short: "Print the key-value pairs whose key contains <key>",
			Args:  exactArgs(1),
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.Find(args[0])
			}),
		},
		{
			Use:   "list",
			Short: "Print all key-value pairs",
			Args:  exactArgs(0),
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.List()
			}),
		},
		{
			Use:   "pylist",
			Short: "Print all key-value pairs on one line, separated for HTML",
			Args:  exactArgs(0),
			RunE: c.withStore(func(h *api.Handler, args []string) error {
				return h.ListHTML()
			}),
		},
	}
}

// withStore loads the database, runs fn and saves the database again.
// The save happens even if fn fails, and its error is returned.
func (c *cli) withStore(fn func(h *api.Handler, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		fs, err := store.OpenFileStore(c.cfg.DBPath(), c.logger)
		if err != nil {
			c.logger.Error("failed to load database", zap.Error(err))
			return err
		}
		defer func() {
			if cerr := fs.Close(); cerr != nil {
				c.logger.Error("failed to save database", zap.Error(cerr))
				if err == nil {
					err = cerr
				}
			}
		}()

		is := store.NewInstrumentedStore(fs)
		defer api.LogMetrics(c.logger, is)
		return fn(api.NewHandler(is, cmd.OutOrStdout()), args)
	}
}

func (c *cli) shellCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "clearcli",
			Short: "Clear the content of the terminal screen",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				c.reportShellError("clear screen", shell.ClearScreen(cmd.OutOrStdout(), cmd.ErrOrStderr()))
				return nil
			},
		},
		{
			Use:   "clearhis",
			Short: "Clear command history",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				c.reportShellError("clear history", shell.ClearHistory(cmd.OutOrStdout(), cmd.ErrOrStderr()))
				return nil
			},
		},
	}
}

// best-effort: a failing shell command does not change the exit status
func (c *cli) reportShellError(what string, err error) {
	if err == nil {
		return
	}
	c.logger.Warn("shell command failed", zap.String("what", what), zap.Error(err))
	fmt.Fprintf(c.stderr, "%s failed: %s\n", what, err)
}
