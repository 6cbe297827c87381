package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/roach88/ts2abc/internal/backend"
)

// ErrGenerationFailed is returned by FailingGenerator.
var ErrGenerationFailed = errors.New("generation failed")

// RecordingGenerator records every request it receives and returns Err.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type RecordingGenerator struct {
	mu    sync.Mutex
	calls []backend.Request

	// Err is returned from every call. Nil means success.
	Err error

	// Delegate, when set and Err is nil, performs the actual generation
	// after the request has been recorded.
	Delegate backend.Generator
}

// NewRecordingGenerator creates a generator that always succeeds.
func NewRecordingGenerator() *RecordingGenerator {
	return &RecordingGenerator{}
}

// NewFailingGenerator creates a generator that records calls and fails each
// one with ErrGenerationFailed.
func NewFailingGenerator() *RecordingGenerator {
	return &RecordingGenerator{Err: ErrGenerationFailed}
}

// NewRecordingDelegate creates a generator that records calls and forwards
// them to next.
func NewRecordingDelegate(next backend.Generator) *RecordingGenerator {
	return &RecordingGenerator{Delegate: next}
}

// GenerateProgram implements backend.Generator.
func (g *RecordingGenerator) GenerateProgram(ctx context.Context, req backend.Request) error {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	err, next := g.Err, g.Delegate
	g.mu.Unlock()

	if err != nil || next == nil {
		return err
	}
	return next.GenerateProgram(ctx, req)
}

// Calls returns a copy of the recorded requests in call order.
func (g *RecordingGenerator) Calls() []backend.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]backend.Request, len(g.calls))
	copy(out, g.calls)
	return out
}

// Reset forgets all recorded requests.
func (g *RecordingGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}
