// Package ir provides the program model decoded from the ts2abc JSON payload.
//
// This package contains type definitions and normalization only. All other
// internal packages may import ir; ir imports nothing internal.
//
// Payload entries are discriminated by the "t" field:
//
//	{"t": 0, "fb": {...}}   function body
//	{"t": 1, "rb": {...}}   record
//	{"t": 2, "s": "..."}    string constant
//	{"t": 3, "o": {...}}    module options
//
// All strings are NFC normalized before they reach an artifact.
package ir
