package backend

import (
	"context"
	"fmt"
)

// OptLevel is the optimization level forwarded to the backend.
type OptLevel int

const (
	O0 OptLevel = iota
	O1
	O2
)

// Bounds of the supported optimization range, inclusive.
const (
	MinOptLevel = O0
	MaxOptLevel = O2
)

// Valid reports whether l lies within [MinOptLevel, MaxOptLevel].
func (l OptLevel) Valid() bool {
	return l >= MinOptLevel && l <= MaxOptLevel
}

func (l OptLevel) String() string {
	return fmt.Sprintf("O%d", int(l))
}

// Request is one generation request. It is built once by the driver after the
// payload has been acquired and is not modified afterwards.
type Request struct {
	Payload     string
	OutputPath  string
	OptLevel    OptLevel
	OptLogLevel string
}

// Generator turns a payload into a bytecode artifact at req.OutputPath.
//
// A non-nil error means no usable artifact was produced. The error detail
// belongs to the generator; the driver reports a fixed diagnostic.
type Generator interface {
	GenerateProgram(ctx context.Context, req Request) error
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) error

// GenerateProgram implements Generator.
func (f GeneratorFunc) GenerateProgram(ctx context.Context, req Request) error {
	return f(ctx, req)
}
