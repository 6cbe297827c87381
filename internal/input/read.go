package input

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ReadFile reads the whole file at path as payload text.
// The file handle is closed before ReadFile returns on every path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquire, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrAcquire, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not UTF-8 text", ErrAcquire, path)
	}
	return string(data), nil
}

// ReadAll reads r until end of stream. The reader is not closed; standard
// input belongs to the process.
func ReadAll(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: no input stream", ErrAcquire)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading input stream: %v", ErrAcquire, err)
	}
	return string(data), nil
}
