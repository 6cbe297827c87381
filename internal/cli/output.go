package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes for the ts2abc process. Every failure maps to ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Fixed diagnostics.
const (
	Usage                = "Usage: ts2abc [OPTIONS]... [ARGS]..."
	UsageExample         = "Usage example: ts2abc test.json test.abc"
	MsgIncorrectOptLevel = "Incorrect optimization level value"
	MsgIncorrectArgs     = "Incorrect args number"
	MsgGenerateFailed    = "call GenerateProgram fail"
)

// ExitError represents an error with a specific exit code.
// Diagnostics for the user are printed before an ExitError is returned;
// Message is for logs and tests.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ParseError is a malformed command line: unknown flags, bad flag values or
// too many positional arguments.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// HelpText renders the full option and argument reference for cmd.
func HelpText(cmd *cobra.Command) string {
	var b strings.Builder
	b.WriteString("Options:\n")
	b.WriteString(cmd.Flags().FlagUsages())
	b.WriteString("\nArguments:\n")
	b.WriteString("  input    JSON program to convert (omitted with --compile-by-pipe)\n")
	b.WriteString("  output   path of the bytecode file to write\n")
	return b.String()
}

// printer writes the fixed diagnostics of the driver.
type printer struct {
	cmd *cobra.Command
}

// help prints the usage synopsis followed by the help text.
func (p printer) help(w io.Writer) {
	fmt.Fprintln(w, Usage)
	fmt.Fprint(w, HelpText(p.cmd))
}

// usageError prints each message on its own line, then usage and help.
func (p printer) usageError(w io.Writer, msgs ...string) {
	for _, m := range msgs {
		fmt.Fprintln(w, m)
	}
	p.help(w)
}
