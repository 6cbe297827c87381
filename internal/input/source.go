package input

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrAcquire is wrapped by every payload read failure.
	ErrAcquire = errors.New("input acquisition failed")

	// ErrMissingArgs reports that the positional arguments required by the
	// selected mode were not supplied.
	ErrMissingArgs = errors.New("incorrect args number")
)

// Mode selects the acquisition strategy.
type Mode int

const (
	// ModeFile reads the payload from a named file.
	ModeFile Mode = iota
	// ModePipe reads the payload from standard input.
	ModePipe
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModePipe:
		return "pipe"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Source is one acquisition strategy bound to its arguments.
type Source interface {
	// Mode reports which strategy this source implements.
	Mode() Mode

	// OutputPath is the destination the generated artifact is written to.
	OutputPath() string

	// Acquire returns the complete payload. A partial payload is never
	// returned: on failure the string is empty and the error wraps ErrAcquire.
	Acquire() (string, error)
}

// File acquires the payload from the file at Input.
type File struct {
	Input  string
	Output string
}

// Mode implements Source.
func (File) Mode() Mode { return ModeFile }

// OutputPath implements Source.
func (f File) OutputPath() string { return f.Output }

// Acquire implements Source.
func (f File) Acquire() (string, error) {
	return ReadFile(f.Input)
}

// Pipe acquires the payload from Stdin.
type Pipe struct {
	Stdin  io.Reader
	Output string
}

// Mode implements Source.
func (Pipe) Mode() Mode { return ModePipe }

// OutputPath implements Source.
func (p Pipe) OutputPath() string { return p.Output }

// Acquire implements Source.
func (p Pipe) Acquire() (string, error) {
	return ReadAll(p.Stdin)
}

// Select picks the acquisition strategy for one invocation.
//
// In file mode arg1 is the input path and arg2 the output path, and both are
// required. In pipe mode arg1 is the output path and arg2 is ignored.
// Select performs no I/O; ErrMissingArgs is returned before anything is
// opened or read.
func Select(pipe bool, arg1, arg2 string, stdin io.Reader) (Source, error) {
	if pipe {
		if arg1 == "" {
			return nil, fmt.Errorf("%w: pipe mode needs an output path", ErrMissingArgs)
		}
		return Pipe{Stdin: stdin, Output: arg1}, nil
	}

	if arg1 == "" || arg2 == "" {
		return nil, fmt.Errorf("%w: file mode needs an input and an output path", ErrMissingArgs)
	}
	return File{Input: arg1, Output: arg2}, nil
}
