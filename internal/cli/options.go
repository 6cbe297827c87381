package cli

import (
	"github.com/spf13/pflag"

	"github.com/roach88/ts2abc/internal/backend"
)

// InvocationOptions is the resolved command line of one ts2abc run.
// It is filled once by flag parsing and read-only afterwards.
type InvocationOptions struct {
	Help               bool
	BytecodeVersion    bool
	BytecodeMinVersion bool
	OptLevel           backend.OptLevel // not yet bounds-checked
	OptLogLevel        string
	CompileByPipe      bool
	Arg1               string
	Arg2               string
}

// bindFlags declares the ts2abc flag schema on fs.
func (o *InvocationOptions) bindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.Help, "help", "h", false, "Print this message and exit")
	fs.BoolVar(&o.BytecodeVersion, "bc-version", false, "Print the current bytecode version and exit")
	fs.BoolVar(&o.BytecodeMinVersion, "bc-min-version", false, "Print the minimum supported bytecode version and exit")
	fs.IntVar((*int)(&o.OptLevel), "opt-level", int(backend.O0), "Optimization level, one of 0, 1, 2")
	fs.StringVar(&o.OptLogLevel, "opt-log-level", backend.DefaultLogLevel, "Optimization log level: debug, info, error or fatal")
	fs.BoolVar(&o.CompileByPipe, "compile-by-pipe", false, "Read the JSON program from standard input")
}

// setPositionals records up to two positional arguments.
func (o *InvocationOptions) setPositionals(args []string) {
	if len(args) > 0 {
		o.Arg1 = args[0]
	}
	if len(args) > 1 {
		o.Arg2 = args[1]
	}
}

// VersionRequested reports whether either version flag was given.
func (o *InvocationOptions) VersionRequested() bool {
	return o.BytecodeVersion || o.BytecodeMinVersion
}
