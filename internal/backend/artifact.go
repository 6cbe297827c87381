package backend

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/adler32"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/roach88/ts2abc/internal/ir"
	"github.com/roach88/ts2abc/internal/version"
)

// Magic opens every artifact.
var Magic = [8]byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0}

// Header is the fixed little-endian prefix of an artifact. Checksum is the
// adler32 of every byte after the checksum field, body included.
type Header struct {
	Magic    [8]byte
	Checksum uint32
	Version  version.Version
	OptLevel uint8
	_        [3]byte
	BodySize uint32
}

const (
	checksumOffset = 8
	checksumEnd    = checksumOffset + 4
)

// HeaderSize is the encoded size of Header in bytes.
var HeaderSize = binary.Size(Header{})

var (
	ErrTruncated          = errors.New("artifact truncated")
	ErrBadMagic           = errors.New("not a bytecode artifact")
	ErrChecksum           = errors.New("artifact checksum mismatch")
	ErrUnsupportedVersion = errors.New("unsupported artifact version")
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("backend: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// EncodeArtifact serializes p into a complete artifact stamped with the
// current bytecode version. Equal programs encode to equal bytes.
func EncodeArtifact(p *ir.Program, level OptLevel) ([]byte, error) {
	body, err := cborEncMode.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("backend: marshal program: %w", err)
	}

	h := Header{
		Magic:    Magic,
		Version:  version.Current,
		OptLevel: uint8(level),
		BodySize: uint32(len(body)),
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(body))
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("backend: write header: %w", err)
	}
	buf.Write(body)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[checksumOffset:checksumEnd], adler32.Checksum(out[checksumEnd:]))
	return out, nil
}

// ReadArtifact decodes and verifies an artifact.
func ReadArtifact(r io.Reader) (*Header, *ir.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("backend: read artifact: %w", err)
	}
	if len(data) < HeaderSize {
		return nil, nil, ErrTruncated
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return nil, nil, fmt.Errorf("backend: read header: %w", err)
	}
	if h.Magic != Magic {
		return nil, nil, ErrBadMagic
	}
	if sum := adler32.Checksum(data[checksumEnd:]); sum != h.Checksum {
		return nil, nil, fmt.Errorf("%w: header %08x, computed %08x", ErrChecksum, h.Checksum, sum)
	}
	if !version.Supported(h.Version) {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, h.Version)
	}

	body := data[HeaderSize:]
	if uint32(len(body)) != h.BodySize {
		return nil, nil, fmt.Errorf("%w: body is %d bytes, header says %d", ErrTruncated, len(body), h.BodySize)
	}

	var p ir.Program
	if err := cbor.Unmarshal(body, &p); err != nil {
		return nil, nil, fmt.Errorf("backend: unmarshal program: %w", err)
	}
	return &h, &p, nil
}
