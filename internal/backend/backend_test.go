package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptLevelValid(t *testing.T) {
	assert.True(t, O0.Valid())
	assert.True(t, O1.Valid())
	assert.True(t, O2.Valid())
	assert.False(t, OptLevel(-1).Valid())
	assert.False(t, OptLevel(3).Valid())
}

func TestOptLevelString(t *testing.T) {
	assert.Equal(t, "O0", O0.String())
	assert.Equal(t, "O2", MaxOptLevel.String())
	assert.Equal(t, "O7", OptLevel(7).String())
}

func TestGeneratorFunc(t *testing.T) {
	var got Request
	gen := GeneratorFunc(func(ctx context.Context, req Request) error {
		got = req
		return nil
	})

	req := Request{Payload: "{}", OutputPath: "out.abc", OptLevel: O1, OptLogLevel: "info"}
	require.NoError(t, gen.GenerateProgram(context.Background(), req))
	assert.Equal(t, req, got)

	boom := errors.New("boom")
	failing := GeneratorFunc(func(context.Context, Request) error { return boom })
	assert.ErrorIs(t, failing.GenerateProgram(context.Background(), req), boom)
}
