// Command ts2abc converts the JSON description of a compiled program into a
// bytecode file.
//
//	ts2abc [OPTIONS]... input.json output.abc
//	frontend | ts2abc --compile-by-pipe output.abc
package main

import (
	"context"
	"os"

	"github.com/roach88/ts2abc/internal/backend"
	"github.com/roach88/ts2abc/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], cli.Env{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Generator: backend.NewEmitter(os.Stderr),
	}))
}
