// Package backend defines the code-generation contract used by the ts2abc
// driver and ships the reference Emitter that implements it.
//
// The driver only depends on Generator and Request. The Emitter:
//
//  1. builds its logger from the request's log level,
//  2. validates every payload entry against the embedded CUE schema,
//  3. decodes the entries into an ir.Program and normalizes it,
//  4. writes a checksummed artifact with a canonical CBOR body.
//
// Artifacts are written through a temporary file and renamed into place, so
// the output path either holds a complete artifact or nothing new.
package backend
