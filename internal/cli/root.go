package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ts2abc/internal/backend"
)

// Env is the process environment of one run.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Generator receives the generation request. Nil selects the reference
	// backend.Emitter logging to Stderr.
	Generator backend.Generator

	// Logger receives driver diagnostics. Nil builds a text logger on Stderr
	// at the --opt-log-level level.
	Logger *slog.Logger
}

// NewRootCommand creates the ts2abc command bound to env.
//
// The command resolves its input in a fixed order, and the first check that
// fires ends the run:
//
//  1. flag parsing (errors print the parser message and help to stderr)
//  2. --help (usage and help to stdout)
//  3. --bc-version / --bc-min-version
//  4. --opt-level bounds
//  5. file or pipe mode dispatch
//
// Steps 1 and 2 are carried out by cobra before RunE is called.
func NewRootCommand(env *Env) *cobra.Command {
	opts := &InvocationOptions{}

	cmd := &cobra.Command{
		Use:   "ts2abc [OPTIONS]... [ARGS]...",
		Short: "Convert a JSON program description into a bytecode file",
		Long: `ts2abc reads the JSON description of a compiled program and writes the
bytecode file a virtual machine loads.

The program is read from the input file, or from standard input with
--compile-by-pipe.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &ParseError{Err: err}
			}
			return nil
		},
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.setPositionals(args)
			return newDriver(cmd, env, opts).run(cmd.Context())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	opts.bindFlags(cmd.Flags())

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ParseError{Err: err}
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printer{cmd: c}.help(c.OutOrStdout())
	})

	return cmd
}

// Run executes one ts2abc invocation and returns the process exit code.
func Run(ctx context.Context, args []string, env Env) int {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := NewRootCommand(&env)
	cmd.SetArgs(args)
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var parseErr *ParseError
	var exitErr *ExitError
	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintln(env.Stderr, parseErr.Error())
		fmt.Fprint(env.Stderr, HelpText(cmd))
	case errors.As(err, &exitErr):
		// diagnostics were printed where the error was raised
	default:
		fmt.Fprintln(env.Stderr, err.Error())
	}
	return GetExitCode(err)
}
