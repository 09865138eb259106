package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/heysubinoy/notedb/pkg/config"
)

// cli holds the flag values and the state shared by all commands of one run.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	// flags
	configPath string
	dbName     string
	dir        string
	logFile    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = c.logger.Sync()
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %s\n", uerr)
		printUsage(stdout)
		return 1
	}
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return 1
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notedb <command> [arguments]",
		Short: "A key-value store kept in a plain text file",
		Long: `notedb keeps key:value pairs in <name>.db, one pair per line.

Every run loads the whole file, executes one command and writes the file back.`,
		// unknown commands end up here instead of failing inside cobra,
		// so they get the same usage error as a wrong argument count
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("missing command")
			}
			return usageErrorf("unknown command %q", args[0])
		},
		PersistentPreRunE: c.setup,
		// global flags are only read before the command, so that keys and
		// values may start with "-"
		TraverseChildren: true,
		SilenceErrors:    true,
		SilenceUsage:     true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	// "help" is not a notedb command; use --help
	root.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("unknown command %q", cmd.Name())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	})
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&c.dbName, "db", "", "database name, the data is kept in <name>.db (default \"mydatabase\")")
	pf.StringVar(&c.dir, "dir", "", "directory holding the database file (default \".\")")
	pf.StringVar(&c.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range append(c.storeCommands(), c.shellCommands()...) {
		cmd.DisableFlagParsing = true
		root.AddCommand(cmd)
	}
	return root
}

// setup resolves the configuration and builds the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if !cmd.HasParent() {
		// root only reports usage errors
		return nil
	}
	// flags were parsed by root, subcommands take their arguments verbatim
	flags := cmd.Root().PersistentFlags()
	cfg, err := config.LoadConfig(c.configPath, func(cfg *config.Config) {
		if flags.Changed("db") {
			cfg.Name = c.dbName
		}
		if flags.Changed("dir") {
			cfg.Dir = c.dir
		}
		if flags.Changed("log-file") {
			cfg.LogFile = c.logFile
		}
		if flags.Changed("verbose") {
			cfg.Verbose = c.verbose
		}
	})
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zcfg.Build()
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: notedb <command> [arguments]
Commands:
  insert <key> <value>  - Insert a new key-value pair
  update <key> <value>  - Update an existing key-value pair
  remove <key>          - Remove a key-value pair
  find <key>            - Find the key-value pairs whose key contains <key>
  list                  - List all key-value pairs
  pylist                - List all key-value pairs on one line for HTML output
  clearcli              - Clear the content of the terminal screen
  clearhis              - Clear command history

Flags (before the command):
  --config <file>       - YAML config file
  --db <name>           - Database name (default "mydatabase")
  --dir <path>          - Directory holding <name>.db (default ".")
  --log-file <path>     - Write logs to a file instead of stderr
  -v, --verbose         - Enable debug logging
`)
}
