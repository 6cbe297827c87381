package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ts2abc/internal/backend"
	"github.com/roach88/ts2abc/internal/input"
	"github.com/roach88/ts2abc/internal/version"
)

// driver carries one resolved invocation through version handling,
// validation, input acquisition and generation.
type driver struct {
	opts   *InvocationOptions
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	gen    backend.Generator
	logger *slog.Logger
	print  printer
}

func newDriver(cmd *cobra.Command, env *Env, opts *InvocationOptions) *driver {
	d := &driver{
		opts:   opts,
		stdin:  env.Stdin,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		gen:    env.Generator,
		logger: env.Logger,
		print:  printer{cmd: cmd},
	}
	if d.logger == nil {
		logger, err := backend.NewLogger(d.stderr, opts.OptLogLevel)
		if err != nil {
			// an unknown level is the backend's to reject
			logger, _ = backend.NewLogger(d.stderr, backend.DefaultLogLevel)
		}
		d.logger = logger
	}
	if d.gen == nil {
		d.gen = backend.NewEmitter(d.stderr)
	}
	return d
}

func (d *driver) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if d.opts.VersionRequested() {
		return d.printVersion()
	}

	if !d.opts.OptLevel.Valid() {
		d.print.usageError(d.stderr, MsgIncorrectOptLevel)
		return NewExitError(ExitFailure, fmt.Sprintf("optimization level %d outside [%d, %d]",
			int(d.opts.OptLevel), int(backend.MinOptLevel), int(backend.MaxOptLevel)))
	}

	src, err := d.selectSource()
	if err != nil {
		return err
	}

	payload, err := d.acquire(src)
	if err != nil {
		return err
	}

	return d.generate(ctx, backend.Request{
		Payload:     payload,
		OutputPath:  src.OutputPath(),
		OptLevel:    d.opts.OptLevel,
		OptLogLevel: d.opts.OptLogLevel,
	})
}

// printVersion prints the current version, or the minimum supported one when
// only --bc-min-version was given.
func (d *driver) printVersion() error {
	v := version.Minimum
	if d.opts.BytecodeVersion {
		v = version.Current
	}
	fmt.Fprintln(d.stdout, version.Format(v))
	return nil
}

// selectSource picks file or pipe mode and checks its positional arguments.
func (d *driver) selectSource() (input.Source, error) {
	src, err := input.Select(d.opts.CompileByPipe, d.opts.Arg1, d.opts.Arg2, d.stdin)
	if err == nil {
		d.logger.Debug("input source selected", "mode", src.Mode().String(), "output", src.OutputPath())
		return src, nil
	}

	if d.opts.CompileByPipe {
		d.print.usageError(d.stderr)
	} else {
		d.print.usageError(d.stderr, MsgIncorrectArgs, UsageExample)
	}
	return nil, WrapExitError(ExitFailure, "resolving input", err)
}

func (d *driver) acquire(src input.Source) (string, error) {
	payload, err := src.Acquire()
	if err != nil {
		d.logger.Error("reading input failed", "mode", src.Mode().String())
		d.logger.Debug("input error detail", "error", err)
		return "", WrapExitError(ExitFailure, "acquiring input", err)
	}
	d.logger.Debug("input acquired", "mode", src.Mode().String(), "bytes", len(payload))
	return payload, nil
}

// generate hands the request to the backend. The backend's own error is
// only logged; the user sees the fixed diagnostic.
func (d *driver) generate(ctx context.Context, req backend.Request) error {
	if err := d.gen.GenerateProgram(ctx, req); err != nil {
		d.logger.Debug("generation failed", "output", req.OutputPath, "error", err)
		fmt.Fprintln(d.stderr, MsgGenerateFailed)
		return WrapExitError(ExitFailure, MsgGenerateFailed, err)
	}
	return nil
}
