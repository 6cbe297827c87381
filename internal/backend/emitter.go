package backend

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roach88/ts2abc/internal/version"
)

// Emitter is the reference Generator. It validates the payload, assembles
// the program and writes a checksummed artifact.
type Emitter struct {
	// LogOutput receives backend diagnostics at the request's log level.
	// Nil discards them.
	LogOutput io.Writer
}

// NewEmitter returns an Emitter logging to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{LogOutput: w}
}

// GenerateProgram implements Generator.
func (e *Emitter) GenerateProgram(ctx context.Context, req Request) error {
	logger, err := NewLogger(e.LogOutput, req.OptLogLevel)
	if err != nil {
		return fmt.Errorf("configuring backend logger: %w", err)
	}
	if !req.OptLevel.Valid() {
		return fmt.Errorf("optimization level %s outside [%s, %s]", req.OptLevel, MinOptLevel, MaxOptLevel)
	}
	if req.OutputPath == "" {
		return fmt.Errorf("no output path")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog, err := Decode(req.Payload)
	if err != nil {
		logger.Error("payload rejected", "error", err)
		return fmt.Errorf("decoding payload: %w", err)
	}

	stats := prog.Stats()
	logger.Debug("program assembled",
		"functions", stats.Functions,
		"records", stats.Records,
		"strings", stats.Strings,
		"instructions", stats.Instructions,
		"module_mode", prog.Options.ModuleMode,
	)

	data, err := EncodeArtifact(prog, req.OptLevel)
	if err != nil {
		logger.Error("emission failed", "error", err)
		return err
	}

	if err := writeAtomic(req.OutputPath, data); err != nil {
		logger.Error("writing artifact failed", "path", req.OutputPath, "error", err)
		return err
	}

	logger.Info("artifact written",
		"path", req.OutputPath,
		"bytes", len(data),
		"version", version.Current.String(),
		"opt_level", req.OptLevel.String(),
	)
	return nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place. On failure the temporary file is removed and path is untouched.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ts2abc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary artifact: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("setting artifact permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing artifact: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming artifact into place: %w", err)
	}
	return nil
}
