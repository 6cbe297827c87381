// Package input acquires the textual payload for a single ts2abc run.
//
// Exactly one acquisition strategy runs per process. The strategy is chosen
// once by Select and is represented by a Source variant:
//
//   - File reads a named JSON file (file mode).
//   - Pipe reads a predecessor process's output from standard input until
//     end of stream (pipe mode).
//
// All read failures wrap ErrAcquire. Callers are not expected to tell a
// missing file apart from a short read; both abort the run.
package input
