package ir

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Normalize rewrites every string in the program to NFC and turns the string
// table into a sorted set. Two payloads that differ only in Unicode
// composition normalize to the same program.
func (p *Program) Normalize() {
	for i := range p.Functions {
		fn := &p.Functions[i]
		fn.Name = norm.NFC.String(fn.Name)
		for j := range fn.Instructions {
			ins := &fn.Instructions[j]
			ins.Op = norm.NFC.String(ins.Op)
			ins.Label = norm.NFC.String(ins.Label)
			for k, id := range ins.IDs {
				ins.IDs[k] = norm.NFC.String(id)
			}
		}
	}

	for i := range p.Records {
		rec := &p.Records[i]
		rec.Name = norm.NFC.String(rec.Name)
		for j := range rec.Fields {
			rec.Fields[j].Name = norm.NFC.String(rec.Fields[j].Name)
			rec.Fields[j].Type = norm.NFC.String(rec.Fields[j].Type)
		}
	}

	for i, s := range p.Strings {
		p.Strings[i] = norm.NFC.String(s)
	}
	slices.Sort(p.Strings)
	p.Strings = slices.Compact(p.Strings)
}
