package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/ts2abc/internal/ir"
)

// ErrEmptyPayload is returned for a payload with no entries.
var ErrEmptyPayload = errors.New("empty payload")

// Decode validates the payload against the entry schema and assembles the
// normalized program.
//
// The payload is either a JSON array of entries or a stream of concatenated
// JSON entry objects, as produced by frontends that emit one entry at a time.
func Decode(payload string) (*ir.Program, error) {
	raws, err := splitEntries(payload)
	if err != nil {
		return nil, err
	}

	s, err := newSchema()
	if err != nil {
		return nil, err
	}

	prog := &ir.Program{}
	for i, raw := range raws {
		if err := s.validate(i, raw); err != nil {
			return nil, err
		}
		var entry ir.Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := prog.Add(entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	prog.Normalize()
	return prog, nil
}

// splitEntries returns the raw JSON value of every payload entry.
func splitEntries(payload string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, ErrEmptyPayload
	}

	if trimmed[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, fmt.Errorf("parsing entry array: %w", err)
		}
		if len(entries) == 0 {
			return nil, ErrEmptyPayload
		}
		return entries, nil
	}

	var entries []json.RawMessage
	dec := json.NewDecoder(strings.NewReader(trimmed))
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		entries = append(entries, raw)
	}
	return entries, nil
}
