package backend

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaSrc string

// SchemaError reports a payload entry that does not match the schema.
type SchemaError struct {
	Entry   int // zero-based position of the entry in the payload
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("entry %d: %d:%d: %s", e.Entry, e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("entry %d: %s", e.Entry, e.Message)
}

// schema validates raw payload entries against #Entry.
// A schema is bound to one CUE context and is not safe for concurrent use.
type schema struct {
	ctx   *cue.Context
	entry cue.Value
}

func newSchema() (*schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling payload schema: %w", err)
	}
	entry := v.LookupPath(cue.ParsePath("#Entry"))
	if !entry.Exists() {
		return nil, fmt.Errorf("payload schema has no #Entry definition")
	}
	return &schema{ctx: ctx, entry: entry}, nil
}

// validate checks one raw JSON entry.
func (s *schema) validate(index int, raw []byte) error {
	expr, err := cuejson.Extract(fmt.Sprintf("entry%d.json", index), raw)
	if err != nil {
		return schemaError(index, err)
	}
	v := s.ctx.BuildExpr(expr)
	if err := v.Err(); err != nil {
		return schemaError(index, err)
	}
	if err := s.entry.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return schemaError(index, err)
	}
	return nil
}

// schemaError keeps the first CUE error and its position.
func schemaError(index int, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &SchemaError{Entry: index, Message: err.Error()}
	}
	first := errs[0]
	se := &SchemaError{Entry: index, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		se.Pos = positions[0]
	}
	return se
}
