package ir

import "fmt"

// EntryKind discriminates top-level payload entries.
type EntryKind int

const (
	KindFunction EntryKind = 0
	KindRecord   EntryKind = 1
	KindString   EntryKind = 2
	KindOptions  EntryKind = 3
)

func (k EntryKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindRecord:
		return "record"
	case KindString:
		return "string"
	case KindOptions:
		return "options"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// Entry is one top-level payload object. Exactly one of the payload fields
// is set, selected by Kind.
type Entry struct {
	Kind     EntryKind      `json:"t"`
	Function *Function      `json:"fb,omitempty"`
	Record   *Record        `json:"rb,omitempty"`
	String   *string        `json:"s,omitempty"`
	Options  *ModuleOptions `json:"o,omitempty"`
}

// Program is the assembled unit handed to the emitter.
type Program struct {
	Options   ModuleOptions `json:"options"`
	Functions []Function    `json:"functions"`
	Records   []Record      `json:"records"`
	Strings   []string      `json:"strings"`
}

// ModuleOptions carries per-compilation switches set by the frontend.
type ModuleOptions struct {
	ModuleMode bool `json:"module_mode"`
	DebugMode  bool `json:"debug_mode"`
}

// Function is a compiled function body.
type Function struct {
	Name         string        `json:"name"`
	Params       int           `json:"params"`
	Regs         int           `json:"regs"`
	Instructions []Instruction `json:"ins"`
}

// Instruction is a single bytecode instruction in assembler form.
type Instruction struct {
	Op    string    `json:"op"`
	Regs  []int     `json:"regs,omitempty"`
	IDs   []string  `json:"ids,omitempty"`
	Imms  []float64 `json:"imms,omitempty"`
	Label string    `json:"label,omitempty"`
}

// Record is a named aggregate type.
type Record struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// Field is a typed member of a Record.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Add folds one entry into the program.
func (p *Program) Add(e Entry) error {
	switch e.Kind {
	case KindFunction:
		if e.Function == nil {
			return fmt.Errorf("function entry without body")
		}
		p.Functions = append(p.Functions, *e.Function)
	case KindRecord:
		if e.Record == nil {
			return fmt.Errorf("record entry without body")
		}
		p.Records = append(p.Records, *e.Record)
	case KindString:
		if e.String == nil {
			return fmt.Errorf("string entry without value")
		}
		p.Strings = append(p.Strings, *e.String)
	case KindOptions:
		if e.Options == nil {
			return fmt.Errorf("options entry without body")
		}
		p.Options = *e.Options
	default:
		return fmt.Errorf("unknown entry kind %d", int(e.Kind))
	}
	return nil
}

// Stats summarizes a program for logging.
type Stats struct {
	Functions    int
	Records      int
	Strings      int
	Instructions int
}

// Stats counts the program's contents.
func (p *Program) Stats() Stats {
	s := Stats{
		Functions: len(p.Functions),
		Records:   len(p.Records),
		Strings:   len(p.Strings),
	}
	for _, fn := range p.Functions {
		s.Instructions += len(fn.Instructions)
	}
	return s
}
