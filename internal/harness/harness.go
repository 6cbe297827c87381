package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/ts2abc/internal/backend"
	"github.com/roach88/ts2abc/internal/cli"
	"github.com/roach88/ts2abc/internal/testutil"
)

// repeatRuns is how many times each scenario is executed.
const repeatRuns = 2

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Create a scratch directory and write the scenario files into it
// 2. Run the command with a fresh generator and stdin on every repetition
// 3. Evaluate the expectations against each run
// 4. Check that every repetition issued the same backend calls
//
// Returns an error only when the scenario could not be executed.
// Failed expectations are reported through Result.
func Run(ctx context.Context, s *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "ts2abc-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	for name, content := range s.Files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	result := NewResult()
	for i := 0; i < repeatRuns; i++ {
		run := execute(ctx, s, dir)
		result.Runs = append(result.Runs, run)

		for _, msg := range evaluate(s, dir, run) {
			result.AddError(fmt.Sprintf("run %d: %s", i+1, msg))
		}
	}

	first := result.Runs[0].Calls
	for i, run := range result.Runs[1:] {
		if !sameCalls(first, run.Calls) {
			result.AddError(fmt.Sprintf("run %d: backend calls differ from run 1", i+2))
		}
	}

	return result, nil
}

// execute runs the command once inside dir.
func execute(ctx context.Context, s *Scenario, dir string) Execution {
	gen := newGenerator(s.Backend)
	stdin := &countingReader{r: strings.NewReader(s.Stdin)}

	var stdout, stderr bytes.Buffer
	code := cli.Run(ctx, expandAll(s.Args, dir), cli.Env{
		Stdin:     stdin,
		Stdout:    &stdout,
		Stderr:    &stderr,
		Generator: gen,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return Execution{
		ExitCode:   code,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		StdinReads: stdin.reads,
		Calls:      gen.Calls(),
	}
}

func newGenerator(kind string) *testutil.RecordingGenerator {
	switch kind {
	case BackendFail:
		return testutil.NewFailingGenerator()
	case BackendEmit:
		return testutil.NewRecordingDelegate(backend.NewEmitter(io.Discard))
	default:
		return testutil.NewRecordingGenerator()
	}
}

// expand replaces ${dir} with the scratch directory.
func expand(s, dir string) string {
	return os.Expand(s, func(key string) string {
		if key == "dir" {
			return dir
		}
		return "${" + key + "}"
	})
}

func expandAll(args []string, dir string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = expand(a, dir)
	}
	return out
}

func sameCalls(a, b []backend.Request) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countingReader counts Read calls made on standard input.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}
