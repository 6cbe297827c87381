package backend

import (
	"bytes"
	"encoding/binary"
	"hash/adler32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ts2abc/internal/ir"
	"github.com/roach88/ts2abc/internal/version"
)

func sampleProgram(t *testing.T) *ir.Program {
	t.Helper()
	prog, err := Decode(samplePayload)
	require.NoError(t, err)
	return prog
}

func TestHeaderSize(t *testing.T) {
	assert.Equal(t, 24, HeaderSize)
}

func TestArtifactRoundTrip(t *testing.T) {
	prog := sampleProgram(t)

	data, err := EncodeArtifact(prog, O2)
	require.NoError(t, err)
	assert.Equal(t, Magic[:], data[:8])

	h, got, err := ReadArtifact(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, version.Current, h.Version)
	assert.Equal(t, uint8(O2), h.OptLevel)
	assert.Equal(t, uint32(len(data)-HeaderSize), h.BodySize)
	assert.Equal(t, prog, got)
}

func TestArtifactDeterministic(t *testing.T) {
	a, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)
	b, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestArtifactOptLevelChangesBytes(t *testing.T) {
	a, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)
	b, err := EncodeArtifact(sampleProgram(t), O1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestReadArtifactTruncated(t *testing.T) {
	_, _, err := ReadArtifact(bytes.NewReader([]byte("PANDA")))
	assert.ErrorIs(t, err, ErrTruncated)

	data, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)
	short := data[:len(data)-1]
	// keep the checksum valid so the size check is what fails
	binary.LittleEndian.PutUint32(short[checksumOffset:checksumEnd], adler32.Checksum(short[checksumEnd:]))

	_, _, err = ReadArtifact(bytes.NewReader(short))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadArtifactBadMagic(t *testing.T) {
	data, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)
	data[0] = 'X'

	_, _, err = ReadArtifact(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReadArtifactChecksumMismatch(t *testing.T) {
	data, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff

	_, _, err = ReadArtifact(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestReadArtifactUnsupportedVersion(t *testing.T) {
	data, err := EncodeArtifact(sampleProgram(t), O0)
	require.NoError(t, err)

	// version bytes follow the checksum
	copy(data[checksumEnd:checksumEnd+version.Size], []byte{9, 9, 9, 9})
	binary.LittleEndian.PutUint32(data[checksumOffset:checksumEnd], adler32.Checksum(data[checksumEnd:]))

	_, _, err = ReadArtifact(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}
