package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "boom")
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, err.Unwrap())

	cause := errors.New("disk full")
	wrapped := WrapExitError(ExitFailure, "writing", cause)
	assert.Equal(t, "writing: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitFailure, GetExitCode(&ParseError{Err: errors.New("unknown flag: --x")}))
	assert.Equal(t, 7, GetExitCode(NewExitError(7, "custom")))
	assert.Equal(t, 7, GetExitCode(fmt.Errorf("outer: %w", NewExitError(7, "inner"))))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unknown flag: --nope")
	err := &ParseError{Err: cause}
	assert.Equal(t, "unknown flag: --nope", err.Error())
	assert.ErrorIs(t, err, cause)
}
