// Package testutil provides deterministic test doubles for the ts2abc
// generation backend.
package testutil
